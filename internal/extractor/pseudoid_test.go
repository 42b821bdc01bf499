package extractor

import (
	"strings"
	"testing"
)

func TestPseudoID_Deterministic(t *testing.T) {
	first := PseudoID(PlatformGFG, "Two Sum")
	second := PseudoID(PlatformGFG, "Two Sum")
	if first != second {
		t.Errorf("PseudoID not deterministic: %q vs %q", first, second)
	}
}

func TestPseudoID_Prefix(t *testing.T) {
	if got := PseudoID(PlatformGFG, "Two Sum"); !strings.HasPrefix(got, "GFG-") {
		t.Errorf("PseudoID = %q, want GFG- prefix", got)
	}
	if got := PseudoID(PlatformInterviewBit, "Two Sum"); !strings.HasPrefix(got, "IB-") {
		t.Errorf("PseudoID = %q, want IB- prefix", got)
	}
}

func TestPseudoID_DigitsLength(t *testing.T) {
	names := []string{"Two Sum", "Maximal Rectangle", "A", "", "Some Very Long Problem Name With Many Words"}
	for _, name := range names {
		id := PseudoID(PlatformGFG, name)
		digits := strings.TrimPrefix(id, "GFG-")
		if len(digits) > 6 {
			t.Errorf("PseudoID(%q) digits = %q, want at most 6", name, digits)
		}
		for _, c := range digits {
			if c < '0' || c > '9' {
				t.Errorf("PseudoID(%q) = %q, want decimal digits only", name, id)
			}
		}
	}
}

func TestPseudoID_DistinctNames(t *testing.T) {
	if PseudoID(PlatformGFG, "Two Sum") == PseudoID(PlatformGFG, "Three Sum") {
		t.Error("different names should normally hash differently")
	}
}
