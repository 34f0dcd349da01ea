package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ytget/splitdesk/internal/desktop"
	"github.com/ytget/splitdesk/internal/layout"
	"github.com/ytget/splitdesk/internal/registry"
)

func main() {
	file := flag.String("file", "config/desktop.json", "layout document (.json, .yaml or .yml)")
	desktopName := flag.String("desktop", "", "desktop to build; all desktops when empty")
	strict := flag.Bool("strict", false, "fail on dangling references")
	flag.Parse()

	os.Exit(run(*file, *desktopName, *strict))
}

func run(file, desktopName string, strict bool) int {
	doc, err := desktop.ParseFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "layoutcheck: %v\n", err)
		return 1
	}

	names := []string{desktopName}
	if desktopName == "" {
		names = doc.DesktopNames()
	}

	var opts []desktop.Option
	if strict {
		opts = append(opts, desktop.WithStrictReferences())
	}

	// Only the tree shape is checked, so no views are registered
	views := registry.New()
	status := 0
	for _, name := range names {
		d, err := desktop.Build(name, doc, views, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			status = 1
			continue
		}

		fmt.Printf("desktop %s\n", d.Name())
		fmt.Print(layout.Describe(d.Root()))
		for _, ref := range d.Dropped() {
			fmt.Printf("  ! %s\n", ref)
		}
	}
	return status
}
