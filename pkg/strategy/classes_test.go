package strategy

import (
	"testing"

	"github.com/coachlabs/holdem-coach/pkg/cards"
)

func TestParseClass(t *testing.T) {
	tests := []struct {
		input  string
		hi, lo cards.Rank
		suited bool
	}{
		{"AA", cards.Ace, cards.Ace, false},
		{"AKs", cards.Ace, cards.King, true},
		{"AKo", cards.Ace, cards.King, false},
		{"T9s", cards.Ten, cards.Nine, true},
		{"22", cards.Two, cards.Two, false},
		{"KAs", cards.Ace, cards.King, true}, // ranks normalize hi-first
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClass(tt.input)
			if err != nil {
				t.Fatalf("ParseClass(%q) error = %v", tt.input, err)
			}
			want := HandClass{Hi: tt.hi, Lo: tt.lo, Suited: tt.suited}
			if got != want {
				t.Errorf("ParseClass(%q) = %+v, want %+v", tt.input, got, want)
			}
		})
	}
}

func TestParseClass_Invalid(t *testing.T) {
	tests := []string{"", "A", "AK", "AAs", "AKx", "ZKs", "AKss"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseClass(input); err == nil {
				t.Errorf("ParseClass(%q) expected error, got nil", input)
			}
		})
	}
}

func TestParseClassList(t *testing.T) {
	tests := []struct {
		input     string
		wantCount int
	}{
		{"AA", 1},
		{"QQ+", 3},     // QQ, KK, AA
		{"KK-JJ", 3},   // KK, QQ, JJ
		{"A5s-A2s", 4}, // A5s, A4s, A3s, A2s
		{"ATs+", 4},    // ATs, AJs, AQs, AKs
		{"AJo+", 3},    // AJo, AQo, AKo
		{"AA, KK, AKs", 3},
		{"22+, A2s+", 13 + 12},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			classes, err := ParseClassList(tt.input)
			if err != nil {
				t.Fatalf("ParseClassList(%q) error = %v", tt.input, err)
			}
			if len(classes) != tt.wantCount {
				t.Errorf("ParseClassList(%q) returned %d classes, want %d", tt.input, len(classes), tt.wantCount)
			}
		})
	}
}

func TestParseClassList_Invalid(t *testing.T) {
	tests := []string{"", "AKs-QJs", "AA-KKs", "AKs-AKo", "A5s-"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseClassList(input); err == nil {
				t.Errorf("ParseClassList(%q) expected error, got nil", input)
			}
		})
	}
}

func TestAllClasses(t *testing.T) {
	all := AllClasses()
	if len(all) != NumClasses {
		t.Fatalf("AllClasses returned %d classes, want %d", len(all), NumClasses)
	}

	seen := map[HandClass]bool{}
	pairs, suited, offsuit := 0, 0, 0
	for _, c := range all {
		if seen[c] {
			t.Errorf("duplicate class %s", c)
		}
		seen[c] = true
		switch {
		case c.IsPair():
			pairs++
		case c.Suited:
			suited++
		default:
			offsuit++
		}
	}
	if pairs != 13 || suited != 78 || offsuit != 78 {
		t.Errorf("class split = %d pairs, %d suited, %d offsuit; want 13/78/78", pairs, suited, offsuit)
	}
}

func TestGridPosition_RoundTrip(t *testing.T) {
	for _, c := range AllClasses() {
		row, col := c.GridPosition()
		if got := ClassAt(row, col); got != c {
			t.Errorf("ClassAt(GridPosition(%s)) = %s", c, got)
		}
	}

	// Conventional corners
	aa, _ := ParseClass("AA")
	if row, col := aa.GridPosition(); row != 0 || col != 0 {
		t.Errorf("AA at (%d,%d), want (0,0)", row, col)
	}
	aks, _ := ParseClass("AKs")
	if row, col := aks.GridPosition(); row != 0 || col != 1 {
		t.Errorf("AKs at (%d,%d), want (0,1)", row, col)
	}
	ako, _ := ParseClass("AKo")
	if row, col := ako.GridPosition(); row != 1 || col != 0 {
		t.Errorf("AKo at (%d,%d), want (1,0)", row, col)
	}
}
