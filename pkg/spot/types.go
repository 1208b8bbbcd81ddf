// Package spot defines the preflop and postflop decision contexts and the
// validation rules that reject situations which cannot occur in real play.
package spot

import (
	"github.com/coachlabs/holdem-coach/pkg/cards"
	"github.com/coachlabs/holdem-coach/pkg/line"
	"github.com/coachlabs/holdem-coach/pkg/seats"
)

// Format is the game format
type Format string

const (
	FormatCash       Format = "cash"
	FormatTournament Format = "tournament"
)

// Stage is the tournament stage. Empty for cash games.
type Stage string

const (
	StageEarly      Stage = "early"
	StageMiddle     Stage = "middle"
	StageBubble     Stage = "bubble"
	StageInMoney    Stage = "in_money"
	StageFTBubble   Stage = "ft_bubble"
	StageFinalTable Stage = "final_table"
)

// Spot is the category of preflop situation
type Spot string

const (
	SpotRFI          Spot = "rfi"
	SpotVsOpen       Spot = "vs_open"
	SpotVs3Bet       Spot = "vs_3bet"
	SpotVs4Bet       Spot = "vs_4bet"
	SpotVsAllIn      Spot = "vs_allin"
	SpotVsLimp       Spot = "vs_limp"
	SpotBlindVsBlind Spot = "blind_vs_blind"
)

// facingSpots are the spots where an earlier opponent has already acted.
var facingSpots = map[Spot]bool{
	SpotVsOpen:  true,
	SpotVs3Bet:  true,
	SpotVs4Bet:  true,
	SpotVsAllIn: true,
	SpotVsLimp:  true,
}

// Tendency is a coarse opponent tendency label
type Tendency string

const (
	TendencyTAG     Tendency = "tag"     // tight-aggressive
	TendencyLAG     Tendency = "lag"     // loose-aggressive
	TendencyNit     Tendency = "nit"     // very tight, passive
	TendencyStation Tendency = "station" // loose-passive, calls wide
	TendencyUnknown Tendency = "unknown"
)

// Stack bounds in big blinds, inclusive.
const (
	MinStackBB = 1
	MaxStackBB = 400
)

// PreflopContext describes one preflop decision point. Stacks are in big
// blinds; a zero stack or empty seat means "not supplied". Contexts are
// values: validation returns a normalized copy, never mutates the input.
type PreflopContext struct {
	Format       Format
	Stage        Stage // required iff Format is tournament
	HeroSeat     seats.Seat
	Spot         Spot
	VillainSeat  seats.Seat // required for facing spots, forbidden for RFI
	HeroStack    float64
	VillainStack float64 // optional
	Tendency     Tendency
}

// EffectiveStack is the smaller of the two stacks, or the hero stack when
// the villain stack is not supplied.
func (c PreflopContext) EffectiveStack() float64 {
	if c.VillainStack > 0 && c.VillainStack < c.HeroStack {
		return c.VillainStack
	}
	return c.HeroStack
}

// PotKind is the preflop raising structure preceding the flop
type PotKind string

const (
	PotSingleRaised PotKind = "srp"
	Pot3Bet         PotKind = "3bet"
	Pot4Bet         PotKind = "4bet"
	PotLimped       PotKind = "limped"
)

// Street is the postflop street. Only the flop is in scope.
type Street string

const (
	StreetFlop Street = "flop"
)

// PostflopContext describes one postflop decision point. The history is a
// legal prefix under the line state machine; contexts are rebuilt, not
// mutated, when an action is added.
type PostflopContext struct {
	PotKind PotKind
	Street  Street
	Board   cards.Board
	ToAct   line.Actor
	PotBB   float64
	SPR     float64 // stack-to-pot ratio
	History line.History
}
