package model

// Package model defines the layout document schema shared across the app:
// desktops, views, view groups and their child references. Structures carry
// both json and yaml tags so the same document can be authored in either format.
