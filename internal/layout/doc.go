package layout

// Package layout implements the composite tree a desktop is made of. A Leaf
// wraps a named view resolved at region time; a Group orders child nodes and
// lays them out in a SplitPane. Regions are recomputed on every call.
