package cards

import (
	"fmt"
	"strings"
)

// Rank represents a card rank (2-A)
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit represents a card suit
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "shdc"
)

// Card represents a single playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// ParseCard parses a card from string notation (e.g., "As", "Kh", "Td")
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q (must be 2 characters)", s)
	}

	rank, err := ParseRankChar(s[0])
	if err != nil {
		return Card{}, err
	}

	suit, err := parseSuit(s[1])
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseRankChar converts a character to a Rank (case-insensitive)
func ParseRankChar(b byte) (Rank, error) {
	idx := strings.IndexByte(rankChars, upper(b))
	if idx < 0 {
		return 0, fmt.Errorf("invalid rank: %c", b)
	}
	return Rank(idx), nil
}

// parseSuit converts a character to a Suit (case-insensitive)
func parseSuit(b byte) (Suit, error) {
	idx := strings.IndexByte(suitChars, lower(b))
	if idx < 0 {
		return 0, fmt.Errorf("invalid suit: %c", b)
	}
	return Suit(idx), nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// String returns the card in standard notation (e.g., "As", "Kh")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// String returns the rank as a single character
func (r Rank) String() string {
	if int(r) >= len(rankChars) {
		return "?"
	}
	return string(rankChars[r])
}

// String returns the suit as a single character
func (s Suit) String() string {
	if int(s) >= len(suitChars) {
		return "?"
	}
	return string(suitChars[s])
}

// ParseCards parses multiple concatenated cards (e.g., "Th9h2c").
// Spaces are ignored, so "Th 9h 2c" parses the same way.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid cards string: %q (must have even length)", s)
	}

	parsed := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("error parsing card at position %d: %w", i, err)
		}
		parsed = append(parsed, card)
	}

	return parsed, nil
}
