package desktop

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/ytget/splitdesk/internal/model"
)

// Maximum edit distance for a "did you mean" suggestion
const MaxSuggestionDistance = 2

// DropReason explains why a reference was not wired into the tree
type DropReason string

const (
	// ReasonUndeclared means no view or view group with that name exists
	ReasonUndeclared DropReason = "undeclared"

	// ReasonForward means the view group is declared but not processed yet:
	// a forward reference, a self reference or a cycle
	ReasonForward DropReason = "forward reference"

	// ReasonCycle means wiring the view group would make it contain itself
	ReasonCycle DropReason = "cycle"

	// ReasonUnknownType means the child type is neither view nor viewGroup
	ReasonUnknownType DropReason = "unknown type"
)

// DroppedReference is a child reference (or desktop root) the builder skipped.
// Group is empty for a desktop root reference.
type DroppedReference struct {
	Group      string
	Type       model.ChildType
	Name       string
	Reason     DropReason
	Suggestion string
}

// String returns a human readable description of the dropped reference
func (r DroppedReference) String() string {
	owner := fmt.Sprintf("view group %q", r.Group)
	if r.Group == "" {
		owner = "desktop root"
	}

	msg := fmt.Sprintf("%s: %s %q dropped (%s)", owner, r.Type, r.Name, r.Reason)
	if r.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", r.Suggestion)
	}
	return msg
}

// suggestName returns the candidate closest to name, or "" when nothing is
// within MaxSuggestionDistance. Ties keep the earliest candidate.
func suggestName(name string, candidates []string) string {
	best := ""
	bestDist := MaxSuggestionDistance + 1
	for _, candidate := range candidates {
		if candidate == name {
			continue
		}
		dist := levenshtein.ComputeDistance(name, candidate)
		if dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}
