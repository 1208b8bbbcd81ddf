package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/coachlabs/holdem-coach/pkg/cards"
	"github.com/coachlabs/holdem-coach/pkg/line"
	"github.com/coachlabs/holdem-coach/pkg/seats"
	"github.com/coachlabs/holdem-coach/pkg/solver"
	"github.com/coachlabs/holdem-coach/pkg/spot"
	"github.com/coachlabs/holdem-coach/pkg/strategy"
)

func main() {
	// Engine flags
	dataFile := flag.String("data", "", "Load strategy data from a JSON file (default: embedded data set)")
	precision := flag.Int("precision", 1, "Decimal places for bet sizes in BB")
	jsonOut := flag.Bool("json", false, "Emit plain JSON instead of a rendered grid")
	verbose := flag.Bool("verbose", false, "Show detailed output")

	// Preflop context flags
	format := flag.String("format", "cash", "Game format: cash or tournament")
	stage := flag.String("stage", "", "Tournament stage: early, middle, bubble, in_money, ft_bubble, final_table")
	hero := flag.String("hero", "", "Hero seat: UTG, UTG1, LJ, HJ, CO, BTN, SB, BB")
	spotName := flag.String("spot", "rfi", "Preflop spot: rfi, vs_open, vs_3bet, vs_4bet, vs_allin, vs_limp, blind_vs_blind")
	villain := flag.String("villain", "", "Opponent seat (facing spots only)")
	heroStack := flag.Float64("stack", 100, "Hero stack in big blinds")
	villainStack := flag.Float64("villain-stack", 0, "Opponent stack in big blinds (optional)")
	tendency := flag.String("tendency", "", "Opponent tendency: tag, lag, nit, station, unknown")

	// Postflop context flags
	potKind := flag.String("pot-kind", "srp", "Pot category: srp, 3bet, 4bet, limped")
	board := flag.String("board", "", "Flop cards, e.g. Th9h2c")
	potBB := flag.Float64("pot", 5.5, "Pot size in big blinds")
	spr := flag.Float64("spr", 0, "Stack-to-pot ratio (0 = derive from stack and pot)")
	toAct := flag.String("to-act", "hero", "Who acts next: hero or villain")
	historyFlag := flag.String("history", "", "Street history so far, e.g. \"hero:check,villain:bet_50\"")
	villainAction := flag.String("villain-action", "", "Pending villain action to apply before solving, e.g. bet_50")

	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	env, err := loadEnvConfig()
	if err != nil {
		logger.Fatal("Error reading environment", "err", err)
	}
	if level, err := log.ParseLevel(env.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	args := flag.Args()
	if len(args) != 1 || (args[0] != "preflop" && args[0] != "postflop") {
		fmt.Fprintf(os.Stderr, "Usage: holdem-coach [flags] preflop|postflop\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Button opening range, 100bb cash\n")
		fmt.Fprintf(os.Stderr, "  holdem-coach --hero=BTN --spot=rfi --stack=100 preflop\n\n")
		fmt.Fprintf(os.Stderr, "  # Big blind defense vs a cutoff open on a bubble\n")
		fmt.Fprintf(os.Stderr, "  holdem-coach --format=tournament --stage=bubble --hero=BB \\\n")
		fmt.Fprintf(os.Stderr, "    --spot=vs_open --villain=CO --stack=35 preflop\n\n")
		fmt.Fprintf(os.Stderr, "  # Flop decision after the villain bets half pot\n")
		fmt.Fprintf(os.Stderr, "  holdem-coach --hero=BTN --spot=vs_open --villain=CO --stack=100 \\\n")
		fmt.Fprintf(os.Stderr, "    --board=Th9h2c --pot=5.5 --to-act=villain --villain-action=bet_50 postflop\n")
		fmt.Fprintf(os.Stderr, "\nFlags:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Data file flag wins over the environment
	path := *dataFile
	if path == "" {
		path = env.DataFile
	}

	var tables *strategy.Tables
	if path != "" {
		logger.Debug("Loading strategy data", "path", path)
		tables, err = strategy.LoadFile(path)
	} else {
		tables, err = strategy.LoadDefault()
	}
	if err != nil {
		logger.Fatal("Error loading strategy data", "err", err)
	}
	logger.Debug("Strategy data loaded", "version", tables.Version())

	engine := solver.New(tables, solver.Config{SizePrecision: int32(*precision)})

	pre := spot.PreflopContext{
		Format:       spot.Format(*format),
		Stage:        spot.Stage(*stage),
		HeroSeat:     seats.Seat(strings.ToUpper(*hero)),
		Spot:         spot.Spot(*spotName),
		VillainSeat:  seats.Seat(strings.ToUpper(*villain)),
		HeroStack:    *heroStack,
		VillainStack: *villainStack,
		Tendency:     spot.Tendency(*tendency),
	}

	switch args[0] {
	case "preflop":
		result, err := engine.SolvePreflop(pre)
		if err != nil {
			fatalRejection(logger, err)
		}
		if *jsonOut {
			printGridJSON(result)
			return
		}
		if err := renderGrid(result); err != nil {
			logger.Fatal("Error rendering grid", "err", err)
		}

	case "postflop":
		flop, err := cards.ParseBoard(*board)
		if err != nil {
			logger.Fatal("Error parsing board", "err", err)
		}
		history, err := parseHistory(*historyFlag)
		if err != nil {
			logger.Fatal("Error parsing history", "err", err)
		}
		actor := line.Hero
		if strings.EqualFold(*toAct, "villain") {
			actor = line.Villain
		}

		ratio := *spr
		if ratio == 0 && *potBB > 0 {
			ratio = pre.EffectiveStack() / *potBB
		}

		post := spot.PostflopContext{
			PotKind: spot.PotKind(*potKind),
			Street:  spot.StreetFlop,
			Board:   flop,
			ToAct:   actor,
			PotBB:   *potBB,
			SPR:     ratio,
			History: history,
		}
		logger.Debug("Postflop context", "board", flop, "texture", flop.Texture(), "spr", ratio)

		var pending *line.Action
		if *villainAction != "" {
			a, err := line.ParseAction(*villainAction)
			if err != nil {
				logger.Fatal("Error parsing villain action", "err", err)
			}
			pending = &a
		}

		decision, err := engine.SolvePostflop(pre, post, pending)
		if err != nil {
			fatalRejection(logger, err)
		}
		if *jsonOut {
			printDecisionJSON(decision)
			return
		}
		renderDecision(decision)
	}
}

// fatalRejection reports an engine rejection with its machine-readable
// code when one is attached.
func fatalRejection(logger *log.Logger, err error) {
	if code := spot.CodeOf(err); code != "" {
		logger.Fatal("Rejected", "code", code, "err", err)
	}
	logger.Fatal("Error", "err", err)
}

// parseHistory parses "hero:check,villain:bet_50" into a history slice.
func parseHistory(s string) (line.History, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var h line.History
	for _, part := range strings.Split(s, ",") {
		actorName, actionName, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid history entry %q (expected actor:action)", part)
		}

		var actor line.Actor
		switch strings.ToLower(actorName) {
		case "hero":
			actor = line.Hero
		case "villain":
			actor = line.Villain
		default:
			return nil, fmt.Errorf("unknown actor %q in history entry %q", actorName, part)
		}

		action, err := line.ParseAction(actionName)
		if err != nil {
			return nil, err
		}
		h = append(h, line.Entry{Actor: actor, Action: action})
	}
	return h, nil
}

// JSON output shapes, kept flat for piping into other tools.

type gridCellJSON struct {
	Hand      string             `json:"hand"`
	Dominant  string             `json:"dominant"`
	Frequency float64            `json:"freq"`
	Mix       map[string]float64 `json:"mix"`
}

func printGridJSON(result *strategy.SolveResult) {
	cells := make([]gridCellJSON, 0, strategy.NumClasses)
	for row := 0; row < strategy.GridSize; row++ {
		for col := 0; col < strategy.GridSize; col++ {
			cell := result.Grid[row][col]
			mix := make(map[string]float64, len(cell.Mix))
			for cat, f := range cell.Mix {
				mix[string(cat)] = f
			}
			cells = append(cells, gridCellJSON{
				Hand:      cell.Hand.String(),
				Dominant:  string(cell.Dominant),
				Frequency: cell.Frequency,
				Mix:       mix,
			})
		}
	}
	out, _ := json.MarshalIndent(cells, "", "  ")
	fmt.Println(string(out))
}

type altJSON struct {
	Action string  `json:"action"`
	SizeBB float64 `json:"size_bb,omitempty"`
	Score  float64 `json:"score"`
}

type decisionJSON struct {
	Best         string    `json:"best"`
	SizeBB       float64   `json:"size_bb,omitempty"`
	Alternatives []altJSON `json:"alternatives,omitempty"`
}

func printDecisionJSON(d *solver.Decision) {
	out := decisionJSON{Best: d.Best.String(), SizeBB: d.SizeBB}
	for _, alt := range d.Alternatives {
		out.Alternatives = append(out.Alternatives, altJSON{
			Action: alt.Action.String(),
			SizeBB: alt.SizeBB,
			Score:  alt.Score,
		})
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(data))
}
