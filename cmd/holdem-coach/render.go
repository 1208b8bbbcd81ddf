package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/coachlabs/holdem-coach/pkg/solver"
	"github.com/coachlabs/holdem-coach/pkg/strategy"
)

// legendOrder fixes the display order of categories, strongest first.
var legendOrder = []strategy.Category{
	strategy.CategoryAllIn,
	strategy.CategoryRaiseValue,
	strategy.CategoryRaiseBluff,
	strategy.CategoryCall,
	strategy.CategoryFold,
}

// colorFor maps a category to its terminal color.
func colorFor(c strategy.Category) pterm.Color {
	switch c {
	case strategy.CategoryAllIn:
		return pterm.FgRed
	case strategy.CategoryRaiseValue:
		return pterm.FgYellow
	case strategy.CategoryRaiseBluff:
		return pterm.FgBlue
	case strategy.CategoryCall:
		return pterm.FgGreen
	default:
		return pterm.FgGray
	}
}

// renderGrid prints the 13×13 range chart. Pairs run down the diagonal,
// suited hands above it, offsuit below, each cell colored by its dominant
// category.
func renderGrid(result *strategy.SolveResult) error {
	const ranks = "AKQJT98765432"

	header := make([]string, 0, strategy.GridSize+1)
	header = append(header, "")
	for _, r := range ranks {
		header = append(header, string(r))
	}

	data := pterm.TableData{header}
	for row := 0; row < strategy.GridSize; row++ {
		line := make([]string, 0, strategy.GridSize+1)
		line = append(line, string(ranks[row]))
		for col := 0; col < strategy.GridSize; col++ {
			cell := result.Grid[row][col]
			line = append(line, colorFor(cell.Dominant).Sprintf("%-4s", cell.Hand))
		}
		data = append(data, line)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	pterm.Println()
	for _, cat := range legendOrder {
		pterm.Printfln("  %s  %s", colorFor(cat).Sprintf("%-12s", string(cat)), result.Legend[cat])
	}
	return nil
}

// renderDecision prints the best action and the ranked alternatives.
func renderDecision(d *solver.Decision) {
	best := d.Best.String()
	if d.SizeBB > 0 {
		best = fmt.Sprintf("%s (%.1fbb)", best, d.SizeBB)
	}
	pterm.DefaultBox.WithTitle("BEST ACTION").WithTitleTopCenter().Println(best)

	if len(d.Alternatives) == 0 {
		return
	}
	pterm.Println()
	pterm.Println("Alternatives:")
	for _, alt := range d.Alternatives {
		if alt.SizeBB > 0 {
			pterm.Printfln("  %-14s %.1fbb  (score %.3f)", alt.Action, alt.SizeBB, alt.Score)
		} else {
			pterm.Printfln("  %-14s        (score %.3f)", alt.Action, alt.Score)
		}
	}
}
