package core

import "testing"

func TestSideForms(t *testing.T) {
	tests := []struct {
		side     Side
		opposite Side
		long     string
		short    string
	}{
		{White, Black, "white", "w"},
		{Black, White, "black", "b"},
		{Side(7), White, "-", "-"},
	}
	for _, tt := range tests {
		if got := tt.side.Opposite(); got != tt.opposite {
			t.Fatalf("expected %s opposite %s, got %s", tt.long, tt.opposite, got)
		}
		if got := tt.side.String(); got != tt.long {
			t.Fatalf("expected %q, got %q", tt.long, got)
		}
		if got := tt.side.Short(); got != tt.short {
			t.Fatalf("expected %q, got %q", tt.short, got)
		}
	}
}

func TestZeroSideMovesFirst(t *testing.T) {
	var s Side
	if s != White {
		t.Fatalf("expected zero value White, got %s", s)
	}
}
