package solver

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/coachlabs/holdem-coach/pkg/buckets"
	"github.com/coachlabs/holdem-coach/pkg/cards"
	"github.com/coachlabs/holdem-coach/pkg/line"
	"github.com/coachlabs/holdem-coach/pkg/seats"
	"github.com/coachlabs/holdem-coach/pkg/spot"
)

// Alternative is a ranked candidate the decision engine considered.
type Alternative struct {
	Action line.Action
	SizeBB float64 // 0 for check/call/fold
	Score  float64
}

// Decision is the engine's answer for one postflop decision point: the
// best action, its size in big blinds, and the remaining candidates
// sorted descending by synthetic EV. Best is always drawn from the legal
// action set for the supplied history.
type Decision struct {
	Best         line.Action
	SizeBB       float64
	Alternatives []Alternative
}

// rank scores every legal action and returns them best-first. Scores are
// synthetic EV signals, not solved quantities: a weighted sum of board
// texture, position, pot category, SPR, opponent tendency, and tournament
// risk pressure, with a fixed tie-break so identical inputs always rank
// identically.
func (e *Engine) rank(pre spot.PreflopContext, post spot.PostflopContext, legal []line.Action) []Alternative {
	texture := post.Board.Texture()
	tier := buckets.ForStage(pre.Stage)
	heroIP := pre.VillainSeat != "" && seats.IsEarlierPostflop(pre.VillainSeat, pre.HeroSeat)

	ranked := make([]Alternative, 0, len(legal))
	for _, a := range legal {
		ranked = append(ranked, Alternative{
			Action: a,
			SizeBB: e.sizeBB(a, post.PotBB),
			Score:  score(a, texture, tier, heroIP, post.PotKind, post.SPR, pre.Tendency),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return tieRank(ranked[i].Action) > tieRank(ranked[j].Action)
	})
	return ranked
}

// score computes the synthetic EV for one action.
func score(a line.Action, texture cards.Texture, tier buckets.RiskTier, heroIP bool,
	pot spot.PotKind, spr float64, tendency spot.Tendency) float64 {

	aggressive := a.Kind.Aggressive()
	small := aggressive && a.Fraction <= 0.5
	big := aggressive && a.Fraction >= 0.75

	var s float64
	switch a.Kind {
	case line.Check:
		s = 0.34
	case line.Call:
		s = 0.38
	case line.Fold:
		s = 0.12
	case line.Bet:
		s = 0.40
	case line.Raise, line.CheckRaise:
		s = 0.42
	}

	// Board texture: wet boards want big charging sizes, dry and paired
	// boards prefer cheap stabs.
	switch texture {
	case cards.TextureWet:
		if big {
			s += 0.08
		}
		if a.Kind == line.Check {
			s -= 0.04
		}
	case cards.TextureDry:
		if small {
			s += 0.06
		}
		if a.Kind == line.Check {
			s += 0.02
		}
	case cards.TexturePaired:
		if small {
			s += 0.04
		}
		if a.Kind == line.Check {
			s += 0.03
		}
	}

	// In position, aggression and calls both gain.
	if heroIP {
		if aggressive {
			s += 0.05
		}
		if a.Kind == line.Call {
			s += 0.02
		}
	}

	// Reraised pots play with smaller fractions.
	switch pot {
	case spot.Pot3Bet:
		if small {
			s += 0.05
		}
		if big {
			s -= 0.03
		}
	case spot.Pot4Bet:
		if small {
			s += 0.07
		}
		if big {
			s -= 0.05
		}
	case spot.PotLimped:
		if aggressive {
			s += 0.04
		}
	}

	// Low SPR favors commitment, high SPR favors pot control.
	switch {
	case spr < 2:
		if big || a.Kind == line.Raise || a.Kind == line.CheckRaise {
			s += 0.09
		}
		if a.Kind == line.Call {
			s += 0.04
		}
	case spr > 6:
		if a.Kind == line.Check {
			s += 0.05
		}
		if small {
			s += 0.04
		}
		if big {
			s -= 0.04
		}
	}

	// Opponent tendency: tight players fold too much, passive and loose
	// players pay off value.
	switch tendency {
	case spot.TendencyNit, spot.TendencyTAG:
		if small {
			s += 0.06
		}
		if big {
			s -= 0.02
		}
	case spot.TendencyStation:
		if big {
			s += 0.07
		}
		if small {
			s -= 0.06
		}
	case spot.TendencyLAG:
		if big {
			s += 0.04
		}
		if a.Kind == line.Call {
			s += 0.05
		}
	}

	// Survival pressure discounts high-variance lines.
	switch tier {
	case buckets.RiskLow:
		if big {
			s -= 0.08
		} else if aggressive {
			s -= 0.04
		}
		if a.Kind == line.Check {
			s += 0.03
		}
		if a.Kind == line.Fold {
			s += 0.02
		}
	case buckets.RiskElevated:
		if big {
			s -= 0.04
		} else if aggressive {
			s -= 0.02
		}
		if a.Kind == line.Check {
			s += 0.015
		}
	}

	return s
}

// tieRank breaks exact score ties: value lines over bluff lines, standard
// sizes over extremes.
func tieRank(a line.Action) int {
	r := 0
	switch a.Kind {
	case line.Raise, line.CheckRaise:
		r = 70
	case line.Bet:
		r = 60
	case line.Call:
		r = 40
	case line.Check:
		r = 30
	case line.Fold:
		r = 10
	}
	switch a.Fraction {
	case 0.5, 0.75:
		r += 8
	case 0.33:
		r += 4
	case 1.0:
		r += 2
	}
	return r
}

// sizeBB converts a pot-fraction size to big blinds, rounded half-up to
// the configured precision. Zero for non-aggressive actions.
func (e *Engine) sizeBB(a line.Action, potBB float64) float64 {
	if !a.Kind.Aggressive() {
		return 0
	}
	size := decimal.NewFromFloat(a.Fraction).Mul(decimal.NewFromFloat(potBB))
	return size.Round(e.cfg.SizePrecision).InexactFloat64()
}
