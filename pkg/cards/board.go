package cards

import (
	"fmt"
	"sort"
)

// Board is a three-card flop. Turn and river cards are not modeled yet.
type Board [3]Card

// Texture is a coarse classification of how coordinated a flop is.
type Texture uint8

const (
	TextureDry Texture = iota
	TextureWet
	TexturePaired
)

// String returns the texture name
func (t Texture) String() string {
	switch t {
	case TextureDry:
		return "dry"
	case TextureWet:
		return "wet"
	case TexturePaired:
		return "paired"
	default:
		return "unknown"
	}
}

// ParseBoard parses a free-text flop string (e.g., "Th9h2c" or "Th 9h 2c")
// into a Board. Exactly three distinct cards are required.
func ParseBoard(s string) (Board, error) {
	parsed, err := ParseCards(s)
	if err != nil {
		return Board{}, fmt.Errorf("error parsing board %q: %w", s, err)
	}
	if len(parsed) != 3 {
		return Board{}, fmt.Errorf("invalid board %q: expected 3 cards, got %d", s, len(parsed))
	}

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if parsed[i] == parsed[j] {
				return Board{}, fmt.Errorf("invalid board %q: duplicate card %s", s, parsed[i])
			}
		}
	}

	return Board{parsed[0], parsed[1], parsed[2]}, nil
}

// String returns the board in concatenated notation (e.g., "Th9h2c")
func (b Board) String() string {
	return b[0].String() + b[1].String() + b[2].String()
}

// Texture classifies the flop as paired, wet, or dry. Paired wins over
// everything; a flop is wet when it is monotone, or two-tone with touching
// high cards, or when all three ranks sit within a five-rank window.
func (b Board) Texture() Texture {
	ranks := []int{int(b[0].Rank), int(b[1].Rank), int(b[2].Rank)}
	sort.Ints(ranks)

	if ranks[0] == ranks[1] || ranks[1] == ranks[2] {
		return TexturePaired
	}

	suits := map[Suit]int{}
	for _, c := range b {
		suits[c.Suit]++
	}
	monotone := len(suits) == 1
	twoTone := len(suits) == 2

	span := ranks[2] - ranks[0]
	connected := span <= 4

	if monotone || connected {
		return TextureWet
	}
	if twoTone && ranks[2]-ranks[1] <= 2 {
		return TextureWet
	}
	return TextureDry
}

// HighCard returns the highest rank on the board.
func (b Board) HighCard() Rank {
	high := b[0].Rank
	for _, c := range b[1:] {
		if c.Rank > high {
			high = c.Rank
		}
	}
	return high
}
