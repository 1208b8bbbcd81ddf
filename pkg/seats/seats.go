// Package seats defines table positions and the canonical preflop acting
// order used to validate who can be in front of whom.
package seats

import "fmt"

// Seat represents a player's position at the table
type Seat string

const (
	UTG  Seat = "UTG"  // Under the gun
	UTG1 Seat = "UTG1" // Under the gun +1
	LJ   Seat = "LJ"   // Lojack
	HJ   Seat = "HJ"   // Hijack
	CO   Seat = "CO"   // Cutoff
	BTN  Seat = "BTN"  // Button
	SB   Seat = "SB"   // Small blind
	BB   Seat = "BB"   // Big blind
)

// Order is the canonical preflop acting order.
var Order = []Seat{UTG, UTG1, LJ, HJ, CO, BTN, SB, BB}

var orderIndex = func() map[Seat]int {
	m := make(map[Seat]int, len(Order))
	for i, s := range Order {
		m[s] = i
	}
	return m
}()

// Normalize resolves seat aliases to the canonical spelling. "BU" is a
// common secondary spelling of the button.
func Normalize(s Seat) Seat {
	if s == "BU" {
		return BTN
	}
	return s
}

// Valid reports whether s (after alias resolution) is a known seat.
func Valid(s Seat) bool {
	_, ok := orderIndex[Normalize(s)]
	return ok
}

// IsEarlier reports whether a acts before b in the canonical order.
// Equal seats are not earlier than each other.
func IsEarlier(a, b Seat) bool {
	ia, aok := orderIndex[Normalize(a)]
	ib, bok := orderIndex[Normalize(b)]
	if !aok || !bok {
		return false
	}
	return ia < ib
}

// postflopOrder moves the blinds to the front: they act first once the
// flop is dealt, and the button acts last.
var postflopOrder = func() map[Seat]int {
	m := map[Seat]int{SB: 0, BB: 1}
	for _, s := range Order {
		if s != SB && s != BB {
			m[s] = len(m)
		}
	}
	return m
}()

// IsEarlierPostflop reports whether a acts before b on postflop streets.
func IsEarlierPostflop(a, b Seat) bool {
	ia, aok := postflopOrder[Normalize(a)]
	ib, bok := postflopOrder[Normalize(b)]
	if !aok || !bok {
		return false
	}
	return ia < ib
}

// IsBlind reports whether s is one of the two blind seats.
func IsBlind(s Seat) bool {
	n := Normalize(s)
	return n == SB || n == BB
}

// OtherBlind returns the opposing blind seat for a blind seat.
func OtherBlind(s Seat) (Seat, error) {
	switch Normalize(s) {
	case SB:
		return BB, nil
	case BB:
		return SB, nil
	default:
		return "", fmt.Errorf("seat %q is not a blind", s)
	}
}
