package model

import "testing"

func TestChildType_IsKnown(t *testing.T) {
	tests := []struct {
		childType ChildType
		expected  bool
	}{
		{ChildView, true},
		{ChildViewGroup, true},
		{"View", false},
		{"viewgroup", false},
		{"", false},
	}

	for _, test := range tests {
		result := test.childType.IsKnown()
		if result != test.expected {
			t.Errorf("ChildType(%q).IsKnown() = %v, expected %v", test.childType, result, test.expected)
		}
	}
}

func TestDocument_DesktopNames(t *testing.T) {
	doc := &Document{
		Desktops: []DesktopSpec{
			{Name: "Desktop2", RootViewGroup: "G2"},
			{Name: "Desktop1", RootViewGroup: "G1"},
			{Name: "Desktop2", RootViewGroup: "G3"},
		},
	}

	names := doc.DesktopNames()
	expected := []string{"Desktop2", "Desktop1"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %d: %v", len(expected), len(names), names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Name %d: expected %s, got %s", i, expected[i], names[i])
		}
	}
}

func TestDocument_DesktopNamesNil(t *testing.T) {
	var doc *Document
	if names := doc.DesktopNames(); names != nil {
		t.Errorf("Expected nil names for nil document, got %v", names)
	}
}
