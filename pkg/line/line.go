// Package line models a single street of heads-up postflop action: the
// action vocabulary, the ordered history, and the legality rules that
// decide which actions the next player may take.
package line

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Actor identifies which of the two players an action belongs to.
type Actor uint8

const (
	Hero Actor = iota
	Villain
)

// String returns the actor name
func (a Actor) String() string {
	switch a {
	case Hero:
		return "Hero"
	case Villain:
		return "Villain"
	default:
		return "?"
	}
}

// Opponent returns the other actor.
func (a Actor) Opponent() Actor {
	if a == Hero {
		return Villain
	}
	return Hero
}

// Kind represents a postflop action kind
type Kind uint8

const (
	Check Kind = iota
	Bet
	Call
	Fold
	Raise
	CheckRaise
)

// String returns the action kind as a string
func (k Kind) String() string {
	switch k {
	case Check:
		return "check"
	case Bet:
		return "bet"
	case Call:
		return "call"
	case Fold:
		return "fold"
	case Raise:
		return "raise"
	case CheckRaise:
		return "check_raise"
	default:
		return "unknown"
	}
}

// Aggressive reports whether the kind puts chips in beyond a call.
func (k Kind) Aggressive() bool {
	return k == Bet || k == Raise || k == CheckRaise
}

// Action is an action kind with a pot-fraction size for aggressive kinds
// (e.g., 0.5 for a half-pot bet). Fraction is zero for check/call/fold.
type Action struct {
	Kind     Kind
	Fraction float64
}

// String returns the action in compact notation (e.g., "bet_50", "check")
func (a Action) String() string {
	if a.Kind.Aggressive() {
		return fmt.Sprintf("%s_%d", a.Kind, int(a.Fraction*100+0.5))
	}
	return a.Kind.String()
}

// ParseAction parses compact action notation as produced by
// Action.String: "check", "call", "fold", "bet_50", "raise_75",
// "check_raise_100". Sizes are percentages of the pot.
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "check":
		return Action{Kind: Check}, nil
	case "call":
		return Action{Kind: Call}, nil
	case "fold":
		return Action{Kind: Fold}, nil
	}

	idx := strings.LastIndex(s, "_")
	if idx < 0 {
		return Action{}, fmt.Errorf("action %q: %w", s, ErrUnknownAction)
	}

	var kind Kind
	switch s[:idx] {
	case "bet":
		kind = Bet
	case "raise":
		kind = Raise
	case "check_raise":
		kind = CheckRaise
	default:
		return Action{}, fmt.Errorf("action %q: %w", s, ErrUnknownAction)
	}

	pct, err := strconv.Atoi(s[idx+1:])
	if err != nil || pct <= 0 {
		return Action{}, fmt.Errorf("action %q has no valid size: %w", s, ErrUnknownAction)
	}
	return Action{Kind: kind, Fraction: float64(pct) / 100}, nil
}

// Entry is one step of history: who acted and what they did.
type Entry struct {
	Actor  Actor
	Action Action
}

// History is the ordered action sequence for one street. It is treated as
// immutable: Apply returns a new slice and never mutates its input.
type History []Entry

// DefaultSizeMenu is the pot-fraction bet/raise menu offered when no menu
// is configured. Overbets are deliberately absent.
var DefaultSizeMenu = []float64{0.33, 0.5, 0.75, 1.0}

// Error conditions reported by the state machine, kept distinct so the
// boundary layer can render a specific message for each.
var (
	ErrWrongActor    = errors.New("actor is not next to act")
	ErrIllegalAction = errors.New("action is not legal here")
	ErrStreetClosed  = errors.New("street action is already closed")
	ErrUnknownAction = errors.New("unknown action")
)

// Closed reports whether street action is over: somebody folded, a bet was
// called, or both players checked through.
func Closed(h History) bool {
	n := len(h)
	if n == 0 {
		return false
	}
	for _, e := range h {
		if e.Action.Kind == Fold {
			return true
		}
	}
	last := h[n-1].Action.Kind
	if last == Call && n >= 2 {
		return true
	}
	if n >= 2 && last == Check && h[n-2].Action.Kind == Check {
		return true
	}
	return false
}

// outstandingBet returns the last uncalled aggressive entry, or nil.
func outstandingBet(h History) *Entry {
	if n := len(h); n > 0 && h[n-1].Action.Kind.Aggressive() {
		return &h[n-1]
	}
	return nil
}

// betOccurred reports whether any aggressive action has happened yet.
func betOccurred(h History) bool {
	for _, e := range h {
		if e.Action.Kind.Aggressive() {
			return true
		}
	}
	return false
}

// LegalActions computes the legal action set for toAct given the history
// so far. menu supplies the pot-fraction sizes for bets and raises; nil
// means DefaultSizeMenu. It fails with ErrStreetClosed when no further
// action exists and with ErrWrongActor when toAct acted last.
func LegalActions(h History, toAct Actor, menu []float64) ([]Action, error) {
	if Closed(h) {
		return nil, fmt.Errorf("no action for %s: %w", toAct, ErrStreetClosed)
	}
	if n := len(h); n > 0 && h[n-1].Actor == toAct {
		return nil, fmt.Errorf("%s acted last: %w", toAct, ErrWrongActor)
	}
	if menu == nil {
		menu = DefaultSizeMenu
	}

	var legal []Action

	if facing := outstandingBet(h); facing != nil {
		legal = append(legal, Action{Kind: Fold}, Action{Kind: Call})

		// A raise over the opponent's bet. When toAct checked immediately
		// before the bet, the raise is a check-raise.
		kind := Raise
		if n := len(h); n >= 2 &&
			h[n-2].Actor == toAct && h[n-2].Action.Kind == Check &&
			facing.Action.Kind == Bet {
			kind = CheckRaise
		}
		for _, f := range menu {
			legal = append(legal, Action{Kind: kind, Fraction: f})
		}
		return legal, nil
	}

	// No outstanding bet: check, or open the betting.
	legal = append(legal, Action{Kind: Check})
	if !betOccurred(h) {
		for _, f := range menu {
			legal = append(legal, Action{Kind: Bet, Fraction: f})
		}
	}
	return legal, nil
}

// Apply validates an entry against the current history and returns the
// extended history. The input slice is never modified.
func Apply(h History, toAct Actor, e Entry, menu []float64) (History, error) {
	if e.Actor != toAct {
		return nil, fmt.Errorf("submitted actor %s, next to act is %s: %w", e.Actor, toAct, ErrWrongActor)
	}

	legal, err := LegalActions(h, toAct, menu)
	if err != nil {
		return nil, err
	}

	if e.Action.Kind > CheckRaise {
		return nil, fmt.Errorf("action %q: %w", e.Action, ErrUnknownAction)
	}

	found := false
	for _, a := range legal {
		if a == e.Action {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("action %q for %s: %w", e.Action, e.Actor, ErrIllegalAction)
	}

	next := make(History, len(h), len(h)+1)
	copy(next, h)
	return append(next, e), nil
}

// Validate replays a history from the start and confirms it is a legal
// action sequence. The first entry's actor is taken as the opener.
func Validate(h History, menu []float64) error {
	if len(h) == 0 {
		return nil
	}
	replayed := History{}
	toAct := h[0].Actor
	for i, e := range h {
		next, err := Apply(replayed, toAct, e, menu)
		if err != nil {
			return fmt.Errorf("history entry %d: %w", i, err)
		}
		replayed = next
		toAct = toAct.Opponent()
	}
	return nil
}
