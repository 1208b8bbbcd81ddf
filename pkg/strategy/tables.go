package strategy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/coachlabs/holdem-coach/pkg/buckets"
	"github.com/coachlabs/holdem-coach/pkg/seats"
	"github.com/coachlabs/holdem-coach/pkg/spot"
)

// Category is the action class a hand's frequency belongs to.
type Category string

const (
	CategoryAllIn      Category = "allin"
	CategoryRaiseValue Category = "raise_value"
	CategoryRaiseBluff Category = "raise_bluff"
	CategoryCall       Category = "call"
	CategoryFold       Category = "fold"
)

// Priority is the fixed tie-break order for equal frequencies: value over
// bluff, aggression over calls, calls over folds. Higher wins.
func (c Category) Priority() int {
	switch c {
	case CategoryAllIn:
		return 4
	case CategoryRaiseValue:
		return 3
	case CategoryRaiseBluff:
		return 2
	case CategoryCall:
		return 1
	default:
		return 0
	}
}

// Color returns the display color associated with the category.
func (c Category) Color() string {
	switch c {
	case CategoryAllIn:
		return "red"
	case CategoryRaiseValue:
		return "orange"
	case CategoryRaiseBluff:
		return "blue"
	case CategoryCall:
		return "green"
	default:
		return "gray"
	}
}

// Legend maps each category to the description shown next to the grid.
func Legend() map[Category]string {
	return map[Category]string{
		CategoryAllIn:      "all-in (red)",
		CategoryRaiseValue: "raise for value (orange)",
		CategoryRaiseBluff: "raise as a bluff (blue)",
		CategoryCall:       "call (green)",
		CategoryFold:       "fold (gray)",
	}
}

// Wildcard matches any stage, bucket, or tendency in a data row.
const Wildcard = "any"

// On-disk schema. Hand lists use class range notation ("QQ+, A5s-A2s");
// fold is never authored, it is the implied complement.
type tablesFile struct {
	Version     string          `json:"version"`
	Baseline    []baselineRow   `json:"baseline"`
	Adjustments []adjustmentRow `json:"adjustments"`
}

type baselineRow struct {
	Format      string      `json:"format"`
	Stage       string      `json:"stage"`
	Seat        string      `json:"seat"`
	Spot        string      `json:"spot"`
	Bucket      string      `json:"bucket"`
	Frequencies []freqEntry `json:"frequencies"`
}

type freqEntry struct {
	Category string  `json:"category"`
	Hands    string  `json:"hands"`
	Freq     float64 `json:"freq"`
}

type adjustmentRow struct {
	Tendency string       `json:"tendency"`
	Stage    string       `json:"stage"`
	Bucket   string       `json:"bucket"`
	Deltas   []deltaEntry `json:"deltas"`
}

type deltaEntry struct {
	Category string  `json:"category"`
	Hands    string  `json:"hands"`
	Delta    float64 `json:"delta"`
}

// BaselineKey addresses one baseline row. Stage is empty for cash games.
type BaselineKey struct {
	Format spot.Format
	Stage  spot.Stage
	Seat   seats.Seat
	Spot   spot.Spot
	Bucket buckets.StackBucket
}

type rowKey struct {
	format, stage, seat, spotName, bucket string
}

// classFreqs maps a hand class to its per-category frequency (or delta).
type classFreqs map[HandClass]map[Category]float64

type adjustment struct {
	tendency string
	stage    string
	bucket   string
	deltas   classFreqs
}

// Tables is the immutable strategy data set: baseline rows and exploit
// adjustment deltas, loaded once at process start.
type Tables struct {
	version     string
	baseline    map[rowKey]classFreqs
	adjustments []adjustment
}

// Version returns the data set version string.
func (t *Tables) Version() string {
	return t.version
}

// Load parses and schema-validates a strategy data set. Any violation —
// unknown enum, frequency outside [0,1], unparseable hand list, duplicate
// row — fails here with a descriptive diagnostic rather than surfacing as
// a runtime decision error.
func Load(data []byte) (*Tables, error) {
	var file tablesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error decoding strategy data: %w", err)
	}
	if file.Version == "" {
		return nil, fmt.Errorf("strategy data has no version")
	}
	if len(file.Baseline) == 0 {
		return nil, fmt.Errorf("strategy data has no baseline rows")
	}

	t := &Tables{
		version:  file.Version,
		baseline: make(map[rowKey]classFreqs, len(file.Baseline)),
	}

	for i, row := range file.Baseline {
		key, err := validateBaselineKey(row)
		if err != nil {
			return nil, fmt.Errorf("baseline row %d: %w", i, err)
		}
		if _, dup := t.baseline[key]; dup {
			return nil, fmt.Errorf("baseline row %d: duplicate key %+v", i, key)
		}

		freqs := classFreqs{}
		for j, entry := range row.Frequencies {
			if err := addEntry(freqs, entry.Category, entry.Hands, entry.Freq, 0, 1); err != nil {
				return nil, fmt.Errorf("baseline row %d, entry %d: %w", i, j, err)
			}
		}
		t.baseline[key] = freqs
	}

	for i, row := range file.Adjustments {
		if err := validateMatcher("tendency", row.Tendency, validTendencyName); err != nil {
			return nil, fmt.Errorf("adjustment row %d: %w", i, err)
		}
		if err := validateMatcher("stage", row.Stage, validStageName); err != nil {
			return nil, fmt.Errorf("adjustment row %d: %w", i, err)
		}
		if err := validateMatcher("bucket", row.Bucket, validBucketName); err != nil {
			return nil, fmt.Errorf("adjustment row %d: %w", i, err)
		}

		deltas := classFreqs{}
		for j, entry := range row.Deltas {
			if err := addEntry(deltas, entry.Category, entry.Hands, entry.Delta, -1, 1); err != nil {
				return nil, fmt.Errorf("adjustment row %d, delta %d: %w", i, j, err)
			}
		}
		t.adjustments = append(t.adjustments, adjustment{
			tendency: row.Tendency,
			stage:    row.Stage,
			bucket:   row.Bucket,
			deltas:   deltas,
		})
	}

	return t, nil
}

// LoadFile loads a strategy data set from disk.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading strategy data %q: %w", path, err)
	}
	return Load(data)
}

// addEntry expands a hand list and accumulates its value per class. Values
// for the same (class, category) across entries are summed, which keeps
// the merge order-independent.
func addEntry(dst classFreqs, category, hands string, value, lo, hi float64) error {
	cat := Category(category)
	switch cat {
	case CategoryAllIn, CategoryRaiseValue, CategoryRaiseBluff, CategoryCall:
	case CategoryFold:
		return fmt.Errorf("category %q cannot be authored, fold is the implied complement", category)
	default:
		return fmt.Errorf("unknown category %q", category)
	}
	if value < lo || value > hi {
		return fmt.Errorf("value %.3f for %q outside [%.0f, %.0f]", value, category, lo, hi)
	}

	classes, err := ParseClassList(hands)
	if err != nil {
		return err
	}
	for _, class := range classes {
		if dst[class] == nil {
			dst[class] = map[Category]float64{}
		}
		dst[class][cat] += value
	}
	return nil
}

func validBucketName(s string) bool {
	switch buckets.StackBucket(s) {
	case buckets.BucketShort, buckets.BucketMid, buckets.BucketDeep, buckets.BucketVeryDeep:
		return true
	}
	return false
}

func validStageName(s string) bool {
	switch spot.Stage(s) {
	case spot.StageEarly, spot.StageMiddle, spot.StageBubble,
		spot.StageInMoney, spot.StageFTBubble, spot.StageFinalTable:
		return true
	}
	return false
}

func validTendencyName(s string) bool {
	switch spot.Tendency(s) {
	case spot.TendencyTAG, spot.TendencyLAG, spot.TendencyNit,
		spot.TendencyStation, spot.TendencyUnknown:
		return true
	}
	return false
}

func validateMatcher(field, value string, valid func(string) bool) error {
	if value == Wildcard || valid(value) {
		return nil
	}
	return fmt.Errorf("invalid %s %q", field, value)
}

func validateBaselineKey(row baselineRow) (rowKey, error) {
	switch spot.Format(row.Format) {
	case spot.FormatCash, spot.FormatTournament:
	default:
		return rowKey{}, fmt.Errorf("invalid format %q", row.Format)
	}
	if err := validateMatcher("stage", row.Stage, validStageName); err != nil {
		return rowKey{}, err
	}
	if !seats.Valid(seats.Seat(row.Seat)) {
		return rowKey{}, fmt.Errorf("invalid seat %q", row.Seat)
	}
	switch spot.Spot(row.Spot) {
	case spot.SpotRFI, spot.SpotVsOpen, spot.SpotVs3Bet, spot.SpotVs4Bet,
		spot.SpotVsAllIn, spot.SpotVsLimp, spot.SpotBlindVsBlind:
	default:
		return rowKey{}, fmt.Errorf("invalid spot %q", row.Spot)
	}
	if err := validateMatcher("bucket", row.Bucket, validBucketName); err != nil {
		return rowKey{}, err
	}

	return rowKey{
		format:   row.Format,
		stage:    row.Stage,
		seat:     string(seats.Normalize(seats.Seat(row.Seat))),
		spotName: row.Spot,
		bucket:   row.Bucket,
	}, nil
}

// lookupBaseline resolves a key most-specific-first: exact stage and
// bucket, then wildcard bucket, wildcard stage, and finally both. A miss
// after fallback is a data error the caller reports.
func (t *Tables) lookupBaseline(key BaselineKey) (classFreqs, bool) {
	stage := string(key.Stage)
	if stage == "" {
		stage = Wildcard
	}
	base := rowKey{
		format:   string(key.Format),
		stage:    stage,
		seat:     string(seats.Normalize(key.Seat)),
		spotName: string(key.Spot),
		bucket:   string(key.Bucket),
	}

	candidates := []rowKey{base}
	if base.bucket != Wildcard {
		k := base
		k.bucket = Wildcard
		candidates = append(candidates, k)
	}
	if base.stage != Wildcard {
		k := base
		k.stage = Wildcard
		candidates = append(candidates, k)
		if base.bucket != Wildcard {
			k.bucket = Wildcard
			candidates = append(candidates, k)
		}
	}

	for _, k := range candidates {
		if row, ok := t.baseline[k]; ok {
			return row, true
		}
	}
	return nil, false
}

// deltasFor sums every adjustment row matching the tendency, stage, and
// bucket (exactly or by wildcard). Summation, not sequential application,
// keeps the result independent of row order.
func (t *Tables) deltasFor(tendency spot.Tendency, stage spot.Stage, bucket buckets.StackBucket) classFreqs {
	stageName := string(stage)
	if stageName == "" {
		stageName = Wildcard
	}

	sum := classFreqs{}
	for _, adj := range t.adjustments {
		if adj.tendency != Wildcard && adj.tendency != string(tendency) {
			continue
		}
		if adj.stage != Wildcard && adj.stage != stageName {
			continue
		}
		if adj.bucket != Wildcard && adj.bucket != string(bucket) {
			continue
		}
		for class, byCat := range adj.deltas {
			if sum[class] == nil {
				sum[class] = map[Category]float64{}
			}
			for cat, d := range byCat {
				sum[class][cat] += d
			}
		}
	}
	return sum
}
