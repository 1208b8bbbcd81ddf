package solver

import (
	"testing"

	"github.com/coachlabs/holdem-coach/pkg/line"
	"github.com/coachlabs/holdem-coach/pkg/seats"
	"github.com/coachlabs/holdem-coach/pkg/spot"
	"github.com/coachlabs/holdem-coach/pkg/strategy"
)

func TestSolvePreflop_RejectsBeforeComputing(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name     string
		ctx      spot.PreflopContext
		wantCode spot.Code
	}{
		{
			"cash with stage",
			spot.PreflopContext{
				Format: spot.FormatCash, Stage: spot.StageBubble,
				HeroSeat: seats.BTN, Spot: spot.SpotRFI, HeroStack: 100,
			},
			spot.CodeInvalidStage,
		},
		{
			"villain not earlier",
			spot.PreflopContext{
				Format: spot.FormatCash, HeroSeat: seats.LJ,
				Spot: spot.SpotVsOpen, VillainSeat: seats.BTN, HeroStack: 100,
			},
			spot.CodeInvalidVsPosition,
		},
		{
			"stack out of range",
			spot.PreflopContext{
				Format: spot.FormatCash, HeroSeat: seats.BTN,
				Spot: spot.SpotRFI, HeroStack: 401,
			},
			spot.CodeStackOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.SolvePreflop(tt.ctx)
			if spot.CodeOf(err) != tt.wantCode {
				t.Errorf("code = %q, want %q (err = %v)", spot.CodeOf(err), tt.wantCode, err)
			}
		})
	}
}

func TestSolvePreflop_MissingBaseline(t *testing.T) {
	e := testEngine(t)

	_, err := e.SolvePreflop(spot.PreflopContext{
		Format:      spot.FormatCash,
		HeroSeat:    seats.HJ,
		Spot:        spot.SpotVs4Bet,
		VillainSeat: seats.UTG,
		HeroStack:   100,
	})
	if spot.CodeOf(err) != spot.CodeMissingBaselineData {
		t.Errorf("code = %q, want missing_baseline_data (err = %v)", spot.CodeOf(err), err)
	}
}

func TestSolvePreflop_BlindVsBlindNormalizes(t *testing.T) {
	e := testEngine(t)

	result, err := e.SolvePreflop(spot.PreflopContext{
		Format:    spot.FormatCash,
		HeroSeat:  seats.SB,
		Spot:      spot.SpotBlindVsBlind,
		HeroStack: 60,
	})
	if err != nil {
		t.Fatalf("SolvePreflop error = %v", err)
	}
	if len(result.Legend) == 0 {
		t.Error("result has no legend")
	}
}

func TestSolvePreflop_ShortStackTournamentShoves(t *testing.T) {
	e := testEngine(t)

	result, err := e.SolvePreflop(spot.PreflopContext{
		Format:    spot.FormatTournament,
		Stage:     spot.StageMiddle,
		HeroSeat:  seats.BTN,
		Spot:      spot.SpotRFI,
		HeroStack: 12,
	})
	if err != nil {
		t.Fatalf("SolvePreflop error = %v", err)
	}

	shoves := 0
	for row := 0; row < strategy.GridSize; row++ {
		for col := 0; col < strategy.GridSize; col++ {
			if result.Grid[row][col].Dominant == strategy.CategoryAllIn {
				shoves++
			}
		}
	}
	if shoves == 0 {
		t.Error("12bb button range should contain all-in hands")
	}
}

func TestSolvePostflop_VillainBet(t *testing.T) {
	e := testEngine(t)
	pre, post := rankFixture(t)

	villainBet := line.Action{Kind: line.Bet, Fraction: 0.5}
	decision, err := e.SolvePostflop(pre, post, &villainBet)
	if err != nil {
		t.Fatalf("SolvePostflop error = %v", err)
	}

	// Hero faces a bet: the best action must come from the facing set
	switch decision.Best.Kind {
	case line.Fold, line.Call, line.Raise:
	default:
		t.Errorf("best = %s, not legal facing a bet", decision.Best)
	}

	// Sizes are fraction × pot at the configured precision
	for _, alt := range append(decision.Alternatives, Alternative{Action: decision.Best, SizeBB: decision.SizeBB}) {
		if alt.Action.Kind.Aggressive() {
			want := e.sizeBB(alt.Action, post.PotBB)
			if alt.SizeBB != want {
				t.Errorf("%s size = %.2f, want %.2f", alt.Action, alt.SizeBB, want)
			}
		} else if alt.SizeBB != 0 {
			t.Errorf("%s size = %.2f, want 0", alt.Action, alt.SizeBB)
		}
	}
}

func TestSolvePostflop_FirstToAct(t *testing.T) {
	e := testEngine(t)
	pre, post := rankFixture(t)
	post.ToAct = line.Hero

	decision, err := e.SolvePostflop(pre, post, nil)
	if err != nil {
		t.Fatalf("SolvePostflop error = %v", err)
	}

	switch decision.Best.Kind {
	case line.Check, line.Bet:
	default:
		t.Errorf("best = %s, not legal on an open street", decision.Best)
	}
	if len(decision.Alternatives) == 0 {
		t.Error("expected ranked alternatives")
	}
}

func TestSolvePostflop_Rejections(t *testing.T) {
	e := testEngine(t)
	pre, post := rankFixture(t)

	t.Run("wrong actor", func(t *testing.T) {
		p := post
		p.ToAct = line.Hero
		bet := line.Action{Kind: line.Bet, Fraction: 0.5}
		_, err := e.SolvePostflop(pre, p, &bet)
		if spot.CodeOf(err) != spot.CodeWrongActor {
			t.Errorf("code = %q, want wrong_actor (err = %v)", spot.CodeOf(err), err)
		}
	})

	t.Run("illegal action", func(t *testing.T) {
		call := line.Action{Kind: line.Call}
		_, err := e.SolvePostflop(pre, post, &call) // nothing to call
		if spot.CodeOf(err) != spot.CodeIllegalAction {
			t.Errorf("code = %q, want illegal_action (err = %v)", spot.CodeOf(err), err)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		weird := line.Action{Kind: line.Kind(9)}
		_, err := e.SolvePostflop(pre, post, &weird)
		if spot.CodeOf(err) != spot.CodeUnknownAction {
			t.Errorf("code = %q, want unknown_action (err = %v)", spot.CodeOf(err), err)
		}
	})

	t.Run("invalid preflop context", func(t *testing.T) {
		p := pre
		p.HeroStack = 0
		_, err := e.SolvePostflop(p, post, nil)
		if spot.CodeOf(err) != spot.CodeStackOutOfRange {
			t.Errorf("code = %q, want stack_out_of_range (err = %v)", spot.CodeOf(err), err)
		}
	})

	t.Run("street closed by fold", func(t *testing.T) {
		p := post
		p.History = line.History{
			{Actor: line.Hero, Action: line.Action{Kind: line.Bet, Fraction: 0.5}},
		}
		fold := line.Action{Kind: line.Fold}
		_, err := e.SolvePostflop(pre, p, &fold)
		if spot.CodeOf(err) != spot.CodeInvalidContext {
			t.Errorf("code = %q, want invalid_context (err = %v)", spot.CodeOf(err), err)
		}
	})
}

func TestSolvePostflop_CheckRaiseSpot(t *testing.T) {
	e := testEngine(t)
	pre, post := rankFixture(t)
	post.History = line.History{
		{Actor: line.Hero, Action: line.Action{Kind: line.Check}},
		{Actor: line.Villain, Action: line.Action{Kind: line.Bet, Fraction: 0.5}},
	}
	post.ToAct = line.Hero

	decision, err := e.SolvePostflop(pre, post, nil)
	if err != nil {
		t.Fatalf("SolvePostflop error = %v", err)
	}

	if decision.Best.Kind == line.Check {
		t.Error("check cannot be best while facing a bet")
	}

	sawCheckRaise := false
	all := append([]Alternative{{Action: decision.Best}}, decision.Alternatives...)
	for _, alt := range all {
		if alt.Action.Kind == line.CheckRaise {
			sawCheckRaise = true
		}
		if alt.Action.Kind == line.Check || alt.Action.Kind == line.Bet {
			t.Errorf("%s is not legal facing a bet after checking", alt.Action)
		}
	}
	if !sawCheckRaise {
		t.Error("expected check-raise among the ranked candidates")
	}
}
