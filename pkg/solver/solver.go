// Package solver composes the validator, bucketing, merge engine, and
// legality state machine into the two public operations: SolvePreflop and
// SolvePostflop. The engine is stateless between calls; everything a
// decision needs travels in the contexts.
package solver

import (
	"errors"

	"github.com/coachlabs/holdem-coach/pkg/buckets"
	"github.com/coachlabs/holdem-coach/pkg/line"
	"github.com/coachlabs/holdem-coach/pkg/spot"
	"github.com/coachlabs/holdem-coach/pkg/strategy"
)

// Config carries the tunables of the decision engine.
type Config struct {
	// SizeMenu is the pot-fraction bet/raise menu. Nil means
	// line.DefaultSizeMenu.
	SizeMenu []float64

	// SizePrecision is the number of decimal places for BB size
	// conversion.
	SizePrecision int32
}

// DefaultConfig returns the standard size menu and one-decimal sizing.
func DefaultConfig() Config {
	return Config{SizeMenu: line.DefaultSizeMenu, SizePrecision: 1}
}

// Engine answers preflop range and postflop decision queries against an
// immutable strategy data set. Safe for concurrent use: it holds no
// mutable state.
type Engine struct {
	tables *strategy.Tables
	cfg    Config
}

// New builds an engine over a loaded data set.
func New(tables *strategy.Tables, cfg Config) *Engine {
	if cfg.SizeMenu == nil {
		cfg.SizeMenu = line.DefaultSizeMenu
	}
	return &Engine{tables: tables, cfg: cfg}
}

// SolvePreflop validates the context, buckets the effective stack, and
// merges baseline frequencies with exploit deltas into the 13×13 grid.
func (e *Engine) SolvePreflop(ctx spot.PreflopContext) (*strategy.SolveResult, error) {
	ctx, err := spot.Validate(ctx)
	if err != nil {
		return nil, err
	}

	key := strategy.BaselineKey{
		Format: ctx.Format,
		Stage:  ctx.Stage,
		Seat:   ctx.HeroSeat,
		Spot:   ctx.Spot,
		Bucket: buckets.ForStack(ctx.EffectiveStack()),
	}
	return e.tables.Merge(key, ctx.Tendency)
}

// SolvePostflop validates both contexts, optionally verifies and appends
// a pending villain action, computes the hero's legal action set for the
// resulting history, and returns the best-ranked action. When the pending
// action ends the street (a fold or a closing call) there is nothing left
// to solve and an invalid_context rejection is returned.
func (e *Engine) SolvePostflop(pre spot.PreflopContext, post spot.PostflopContext, villain *line.Action) (*Decision, error) {
	pre, err := spot.Validate(pre)
	if err != nil {
		return nil, err
	}
	post, err = spot.ValidatePostflop(post)
	if err != nil {
		return nil, err
	}

	history := post.History
	if villain != nil {
		entry := line.Entry{Actor: line.Villain, Action: *villain}
		history, err = line.Apply(history, post.ToAct, entry, e.cfg.SizeMenu)
		if err != nil {
			return nil, rejectionFor(err)
		}
	}

	legal, err := line.LegalActions(history, line.Hero, e.cfg.SizeMenu)
	if err != nil {
		return nil, rejectionFor(err)
	}

	ranked := e.rank(pre, post, legal)
	best := ranked[0]
	return &Decision{
		Best:         best.Action,
		SizeBB:       best.SizeBB,
		Alternatives: ranked[1:],
	}, nil
}

// rejectionFor maps state-machine errors onto the engine's coded
// rejections so callers can distinguish wrong actor, illegal action, and
// exhausted streets.
func rejectionFor(err error) error {
	switch {
	case errors.Is(err, line.ErrWrongActor):
		return spot.Errorf(spot.CodeWrongActor, "%v", err)
	case errors.Is(err, line.ErrUnknownAction):
		return spot.Errorf(spot.CodeUnknownAction, "%v", err)
	case errors.Is(err, line.ErrIllegalAction):
		return spot.Errorf(spot.CodeIllegalAction, "%v", err)
	case errors.Is(err, line.ErrStreetClosed):
		return spot.Errorf(spot.CodeInvalidContext, "%v", err)
	default:
		return err
	}
}
