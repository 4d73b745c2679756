package compile

import (
	"testing"
)

func TestMatchDrawingName(t *testing.T) {
	tests := []struct {
		name     string
		basename string
		ok       bool
	}{
		{"05b66.svg", "05b66", true},
		{"04e00.svg", "04e00", true},
		{"20B9F.svg", "20B9F", true},

		{"05b66-Kaisho.svg", "", false},
		{"4e00.svg", "", false},
		{"004e00.svg", "", false},
		{"05b66.xml", "", false},
		{"05b66svg", "", false},
		{"0zzzz.svg", "", false},
		{".svg", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basename, ok := MatchDrawingName(tt.name)
			if ok != tt.ok || basename != tt.basename {
				t.Errorf("MatchDrawingName(%q) = %q, %v, want %q, %v", tt.name, basename, ok, tt.basename, tt.ok)
			}
		})
	}
}
