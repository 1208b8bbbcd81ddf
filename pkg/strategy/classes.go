// Package strategy holds the baseline/adjustment data tables and the merge
// engine that turns them into a labeled 13×13 preflop range grid.
package strategy

import (
	"fmt"
	"strings"

	"github.com/coachlabs/holdem-coach/pkg/cards"
)

// HandClass is one cell of the 13×13 grid: a pair ("AA"), a suited
// combination ("AKs"), or an offsuit combination ("AKo"). Hi is always the
// higher rank; pairs are never suited.
type HandClass struct {
	Hi     cards.Rank
	Lo     cards.Rank
	Suited bool
}

// MakeClass builds a normalized class from two ranks.
func MakeClass(a, b cards.Rank, suited bool) HandClass {
	if a < b {
		a, b = b, a
	}
	if a == b {
		suited = false
	}
	return HandClass{Hi: a, Lo: b, Suited: suited}
}

// IsPair reports whether the class is a pocket pair.
func (h HandClass) IsPair() bool {
	return h.Hi == h.Lo
}

// String returns the class in standard notation ("AA", "AKs", "T9o")
func (h HandClass) String() string {
	if h.IsPair() {
		return h.Hi.String() + h.Lo.String()
	}
	suffix := "o"
	if h.Suited {
		suffix = "s"
	}
	return h.Hi.String() + h.Lo.String() + suffix
}

// GridSize is the side of the hand grid.
const GridSize = 13

// NumClasses is the number of distinct hand classes.
const NumClasses = GridSize * GridSize

// rankIndex orders ranks ace-first, the conventional grid layout.
func rankIndex(r cards.Rank) int {
	return int(cards.Ace - r)
}

// GridPosition returns the (row, col) of a class in the conventional
// layout: pairs on the diagonal, suited above, offsuit below.
func (h HandClass) GridPosition() (row, col int) {
	if h.Suited {
		return rankIndex(h.Hi), rankIndex(h.Lo)
	}
	if h.IsPair() {
		return rankIndex(h.Hi), rankIndex(h.Hi)
	}
	return rankIndex(h.Lo), rankIndex(h.Hi)
}

// ClassAt returns the class occupying (row, col) in the grid.
func ClassAt(row, col int) HandClass {
	hi := cards.Rank(int(cards.Ace) - row)
	lo := cards.Rank(int(cards.Ace) - col)
	switch {
	case row == col:
		return MakeClass(hi, hi, false)
	case row < col:
		return MakeClass(hi, lo, true)
	default:
		return MakeClass(lo, hi, false)
	}
}

// AllClasses returns all 169 classes in grid order (row-major).
func AllClasses() []HandClass {
	all := make([]HandClass, 0, NumClasses)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			all = append(all, ClassAt(row, col))
		}
	}
	return all
}

// ParseClass parses a single class notation ("AA", "AKs", "T9o").
func ParseClass(s string) (HandClass, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 3 {
		return HandClass{}, fmt.Errorf("invalid hand class: %q", s)
	}

	hi, err := cards.ParseRankChar(s[0])
	if err != nil {
		return HandClass{}, err
	}
	lo, err := cards.ParseRankChar(s[1])
	if err != nil {
		return HandClass{}, err
	}

	if len(s) == 2 {
		if hi != lo {
			return HandClass{}, fmt.Errorf("ambiguous hand %q (use 's' for suited or 'o' for offsuit)", s)
		}
		return MakeClass(hi, lo, false), nil
	}

	if hi == lo {
		return HandClass{}, fmt.Errorf("pair %q cannot have a suited/offsuit indicator", s)
	}
	switch s[2] {
	case 's', 'S':
		return MakeClass(hi, lo, true), nil
	case 'o', 'O':
		return MakeClass(hi, lo, false), nil
	default:
		return HandClass{}, fmt.Errorf("invalid suited/offsuit indicator %q in %q", s[2], s)
	}
}

// ParseClassList parses a comma-separated list of classes, dash ranges,
// and plus ranges into the set of classes it covers.
// Examples:
//   - "AA, KK"       → two pairs
//   - "QQ+"          → QQ, KK, AA
//   - "A5s-A2s"      → A5s, A4s, A3s, A2s
//   - "ATs+, AJo+"   → ATs..AKs and AJo..AKo
func ParseClassList(s string) ([]HandClass, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty hand class list")
	}

	var all []HandClass
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var (
			parsed []HandClass
			err    error
		)
		switch {
		case strings.HasSuffix(part, "+"):
			parsed, err = parsePlusRange(strings.TrimSuffix(part, "+"))
		case strings.Contains(part, "-"):
			parsed, err = parseDashRange(part)
		default:
			var one HandClass
			one, err = ParseClass(part)
			parsed = []HandClass{one}
		}
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", part, err)
		}
		all = append(all, parsed...)
	}

	return all, nil
}

// parsePlusRange expands "77+" (pairs up to AA) or "ATs+" (kickers up to
// just below the high card).
func parsePlusRange(s string) ([]HandClass, error) {
	base, err := ParseClass(s)
	if err != nil {
		return nil, err
	}

	var out []HandClass
	if base.IsPair() {
		for r := base.Hi; r <= cards.Ace; r++ {
			out = append(out, MakeClass(r, r, false))
		}
		return out, nil
	}
	for lo := base.Lo; lo < base.Hi; lo++ {
		out = append(out, MakeClass(base.Hi, lo, base.Suited))
	}
	return out, nil
}

// parseDashRange expands "KK-JJ" or "A5s-A2s". Both ends must agree on
// suitedness, and non-pair ranges must share the high card.
func parseDashRange(s string) ([]HandClass, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid range format (expected TOP-BOTTOM)")
	}

	top, err := ParseClass(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	bottom, err := ParseClass(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}

	if top.IsPair() != bottom.IsPair() || top.Suited != bottom.Suited {
		return nil, fmt.Errorf("mismatched hand types in range")
	}

	var out []HandClass
	if top.IsPair() {
		if top.Hi < bottom.Hi {
			top, bottom = bottom, top
		}
		for r := bottom.Hi; r <= top.Hi; r++ {
			out = append(out, MakeClass(r, r, false))
		}
		return out, nil
	}

	if top.Hi != bottom.Hi {
		return nil, fmt.Errorf("non-pair range must share the high card")
	}
	hiEnd, loEnd := top.Lo, bottom.Lo
	if hiEnd < loEnd {
		hiEnd, loEnd = loEnd, hiEnd
	}
	for lo := loEnd; lo <= hiEnd; lo++ {
		out = append(out, MakeClass(top.Hi, lo, top.Suited))
	}
	return out, nil
}
