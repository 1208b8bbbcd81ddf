package strategy

import (
	"github.com/coachlabs/holdem-coach/pkg/spot"
)

// RangeCell is one hand of the returned grid: the full post-adjustment
// frequency mix, the single dominant label chosen from it, and that
// label's frequency.
type RangeCell struct {
	Hand      HandClass
	Mix       map[Category]float64
	Dominant  Category
	Frequency float64
}

// SolveResult is a complete 13×13 grid of range cells plus the category
// legend. Grid layout follows GridPosition: pairs on the diagonal, suited
// above, offsuit below.
type SolveResult struct {
	Grid   [GridSize][GridSize]RangeCell
	Legend map[Category]string
}

// CellFor returns the cell for a hand class.
func (r *SolveResult) CellFor(h HandClass) RangeCell {
	row, col := h.GridPosition()
	return r.Grid[row][col]
}

// Merge builds the grid for one baseline row adjusted by every applicable
// exploit delta. Per hand: frequency = clamp(baseline + Σ deltas, 0, 1)
// per category; fold is the complement of the non-fold mass; the dominant
// label is the highest-frequency category, priority order breaking ties.
// A missing baseline row is reported as missing_baseline_data, never
// defaulted: an absent row means the data set is incomplete, not that the
// range is empty.
func (t *Tables) Merge(key BaselineKey, tendency spot.Tendency) (*SolveResult, error) {
	row, ok := t.lookupBaseline(key)
	if !ok {
		return nil, spot.Errorf(spot.CodeMissingBaselineData,
			"no baseline row for %s %s %s %s (stage %q)",
			key.Format, key.Seat, key.Spot, key.Bucket, key.Stage)
	}

	deltas := t.deltasFor(tendency, key.Stage, key.Bucket)

	result := &SolveResult{Legend: Legend()}
	for _, class := range AllClasses() {
		mix := map[Category]float64{}
		for cat, f := range row[class] {
			mix[cat] = f
		}
		for cat, d := range deltas[class] {
			mix[cat] += d
		}

		continuing := 0.0
		for cat, f := range mix {
			f = clamp01(f)
			mix[cat] = f
			continuing += f
		}
		mix[CategoryFold] = clamp01(1 - continuing)

		dominant, freq := dominantOf(mix)
		rowIdx, colIdx := class.GridPosition()
		result.Grid[rowIdx][colIdx] = RangeCell{
			Hand:      class,
			Mix:       mix,
			Dominant:  dominant,
			Frequency: freq,
		}
	}

	return result, nil
}

// dominantOf picks the highest-frequency category, breaking exact ties by
// the fixed category priority so identical inputs always label identically.
func dominantOf(mix map[Category]float64) (Category, float64) {
	best := CategoryFold
	bestFreq := mix[CategoryFold]
	for _, cat := range []Category{CategoryAllIn, CategoryRaiseValue, CategoryRaiseBluff, CategoryCall} {
		f, ok := mix[cat]
		if !ok || f == 0 {
			continue
		}
		if f > bestFreq || (f == bestFreq && cat.Priority() > best.Priority()) {
			best = cat
			bestFreq = f
		}
	}
	return best, bestFreq
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
