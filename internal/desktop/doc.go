package desktop

// Package desktop builds a Desktop from a layout document: it indexes the
// declared views and view groups, wires child references into a layout tree
// rooted at the desktop's view group, and reports references it had to drop.
