package model

import "strings"

// Orientation is the layout direction of a view group
type Orientation string

const (
	// Horizontal places children left to right
	Horizontal Orientation = "horizontal"

	// Vertical places children top to bottom
	Vertical Orientation = "vertical"
)

// ParseOrientation converts a document value to an Orientation.
// Matching is case-insensitive; anything other than "horizontal" is Vertical.
func ParseOrientation(value string) Orientation {
	if strings.EqualFold(strings.TrimSpace(value), string(Horizontal)) {
		return Horizontal
	}
	return Vertical
}

// String returns the string representation of Orientation
func (o Orientation) String() string {
	return string(o)
}

// IsHorizontal returns true if children are laid out left to right
func (o Orientation) IsHorizontal() bool {
	return o == Horizontal
}
