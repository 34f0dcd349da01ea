package registry

// Package registry maps view names to host-built fyne widgets. A Registry is
// created by the host, filled before a desktop region is requested, and passed
// explicitly to the desktop builder.
