package spot

import (
	"github.com/coachlabs/holdem-coach/pkg/line"
	"github.com/coachlabs/holdem-coach/pkg/seats"
)

var validStages = map[Stage]bool{
	StageEarly:      true,
	StageMiddle:     true,
	StageBubble:     true,
	StageInMoney:    true,
	StageFTBubble:   true,
	StageFinalTable: true,
}

var validSpots = map[Spot]bool{
	SpotRFI:          true,
	SpotVsOpen:       true,
	SpotVs3Bet:       true,
	SpotVs4Bet:       true,
	SpotVsAllIn:      true,
	SpotVsLimp:       true,
	SpotBlindVsBlind: true,
}

var validTendencies = map[Tendency]bool{
	TendencyTAG:     true,
	TendencyLAG:     true,
	TendencyNit:     true,
	TendencyStation: true,
	TendencyUnknown: true,
	"":              true, // unset reads as unknown
}

var validPotKinds = map[PotKind]bool{
	PotSingleRaised: true,
	Pot3Bet:         true,
	Pot4Bet:         true,
	PotLimped:       true,
}

// Validate checks a preflop context against the rules of real play and
// returns a normalized copy: seats resolved to canonical spellings, the
// blind-vs-blind opponent filled in, an unset tendency read as unknown.
// Rejections carry a distinct code per rule.
func Validate(c PreflopContext) (PreflopContext, error) {
	switch c.Format {
	case FormatCash, FormatTournament:
	default:
		return c, Errorf(CodeInvalidContext, "unknown format %q", c.Format)
	}

	// Stage is required for tournaments, forbidden for cash.
	if c.Format == FormatTournament {
		if c.Stage == "" {
			return c, Errorf(CodeInvalidStage, "tournament format requires a stage")
		}
		if !validStages[c.Stage] {
			return c, Errorf(CodeInvalidStage, "unknown tournament stage %q", c.Stage)
		}
	} else if c.Stage != "" {
		return c, Errorf(CodeInvalidStage, "stage %q is only valid for tournaments", c.Stage)
	}

	if !validSpots[c.Spot] {
		return c, Errorf(CodeInvalidContext, "unknown spot %q", c.Spot)
	}
	if !seats.Valid(c.HeroSeat) {
		return c, Errorf(CodeInvalidContext, "unknown hero seat %q", c.HeroSeat)
	}
	if !validTendencies[c.Tendency] {
		return c, Errorf(CodeInvalidContext, "unknown opponent tendency %q", c.Tendency)
	}

	c.HeroSeat = seats.Normalize(c.HeroSeat)
	if c.VillainSeat != "" {
		if !seats.Valid(c.VillainSeat) {
			return c, Errorf(CodeInvalidContext, "unknown opponent seat %q", c.VillainSeat)
		}
		c.VillainSeat = seats.Normalize(c.VillainSeat)
	}
	if c.Tendency == "" {
		c.Tendency = TendencyUnknown
	}

	switch {
	case c.Spot == SpotRFI:
		if c.VillainSeat != "" {
			return c, Errorf(CodeInvalidVsPosition, "raise-first-in takes no opponent seat, got %q", c.VillainSeat)
		}

	case facingSpots[c.Spot]:
		if c.VillainSeat == "" {
			return c, Errorf(CodeInvalidVsPosition, "spot %q requires an opponent seat", c.Spot)
		}
		if !seats.IsEarlier(c.VillainSeat, c.HeroSeat) {
			return c, Errorf(CodeInvalidVsPosition,
				"opponent %s must act before hero %s", c.VillainSeat, c.HeroSeat)
		}

	case c.Spot == SpotBlindVsBlind:
		if !seats.IsBlind(c.HeroSeat) {
			return c, Errorf(CodeInvalidBlindVsBlind, "blind-vs-blind hero seat must be SB or BB, got %q", c.HeroSeat)
		}
		forced, err := seats.OtherBlind(c.HeroSeat)
		if err != nil {
			return c, Errorf(CodeInvalidBlindVsBlind, "%v", err)
		}
		if c.VillainSeat != "" && c.VillainSeat != forced {
			return c, Errorf(CodeInvalidBlindVsBlind,
				"blind-vs-blind opponent for %s is %s, got %q", c.HeroSeat, forced, c.VillainSeat)
		}
		c.VillainSeat = forced
	}

	if err := checkStack("hero", c.HeroStack, true); err != nil {
		return c, err
	}
	if err := checkStack("opponent", c.VillainStack, false); err != nil {
		return c, err
	}

	return c, nil
}

// checkStack enforces the [1,400] big-blind bounds. Optional stacks may be
// zero, meaning not supplied.
func checkStack(who string, bb float64, required bool) error {
	if bb == 0 && !required {
		return nil
	}
	if bb < MinStackBB || bb > MaxStackBB {
		return Errorf(CodeStackOutOfRange,
			"%s stack %.1fbb outside [%d, %d]", who, bb, MinStackBB, MaxStackBB)
	}
	return nil
}

// ValidatePostflop checks a postflop context: known pot category, flop
// street, sane pot and SPR, and a history that is a legal prefix under
// the line state machine.
func ValidatePostflop(c PostflopContext) (PostflopContext, error) {
	if !validPotKinds[c.PotKind] {
		return c, Errorf(CodeInvalidContext, "unknown pot category %q", c.PotKind)
	}
	if c.Street != StreetFlop {
		return c, Errorf(CodeInvalidContext, "street %q not supported, only flop", c.Street)
	}
	if c.PotBB <= 0 {
		return c, Errorf(CodeInvalidContext, "pot must be positive, got %.2fbb", c.PotBB)
	}
	if c.SPR < 0 {
		return c, Errorf(CodeInvalidContext, "stack-to-pot ratio cannot be negative, got %.2f", c.SPR)
	}
	if err := line.Validate(c.History, nil); err != nil {
		return c, Errorf(CodeInvalidContext, "illegal action history: %v", err)
	}
	return c, nil
}
