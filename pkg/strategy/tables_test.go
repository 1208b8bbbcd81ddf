package strategy

import (
	"strings"
	"testing"

	"github.com/coachlabs/holdem-coach/pkg/buckets"
	"github.com/coachlabs/holdem-coach/pkg/seats"
	"github.com/coachlabs/holdem-coach/pkg/spot"
)

func TestLoadDefault(t *testing.T) {
	tables, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault error = %v", err)
	}
	if tables.Version() == "" {
		t.Error("loaded tables have no version")
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantIn  string
	}{
		{
			"not json", "{", "decoding",
		},
		{
			"no version",
			`{"baseline": [{"format":"cash","stage":"any","seat":"BTN","spot":"rfi","bucket":"any","frequencies":[{"category":"raise_value","hands":"AA","freq":1}]}]}`,
			"version",
		},
		{
			"no baseline rows",
			`{"version":"1.0","baseline":[]}`,
			"no baseline",
		},
		{
			"frequency above one",
			`{"version":"1.0","baseline":[{"format":"cash","stage":"any","seat":"BTN","spot":"rfi","bucket":"any","frequencies":[{"category":"raise_value","hands":"AA","freq":1.5}]}]}`,
			"outside",
		},
		{
			"unknown category",
			`{"version":"1.0","baseline":[{"format":"cash","stage":"any","seat":"BTN","spot":"rfi","bucket":"any","frequencies":[{"category":"shove_hard","hands":"AA","freq":1}]}]}`,
			"unknown category",
		},
		{
			"authored fold",
			`{"version":"1.0","baseline":[{"format":"cash","stage":"any","seat":"BTN","spot":"rfi","bucket":"any","frequencies":[{"category":"fold","hands":"72o","freq":1}]}]}`,
			"implied complement",
		},
		{
			"bad hand list",
			`{"version":"1.0","baseline":[{"format":"cash","stage":"any","seat":"BTN","spot":"rfi","bucket":"any","frequencies":[{"category":"raise_value","hands":"ZZ","freq":1}]}]}`,
			"error parsing",
		},
		{
			"unknown seat",
			`{"version":"1.0","baseline":[{"format":"cash","stage":"any","seat":"MP","spot":"rfi","bucket":"any","frequencies":[{"category":"raise_value","hands":"AA","freq":1}]}]}`,
			"invalid seat",
		},
		{
			"unknown bucket",
			`{"version":"1.0","baseline":[{"format":"cash","stage":"any","seat":"BTN","spot":"rfi","bucket":"medium","frequencies":[{"category":"raise_value","hands":"AA","freq":1}]}]}`,
			"invalid bucket",
		},
		{
			"duplicate row",
			`{"version":"1.0","baseline":[
				{"format":"cash","stage":"any","seat":"BTN","spot":"rfi","bucket":"any","frequencies":[{"category":"raise_value","hands":"AA","freq":1}]},
				{"format":"cash","stage":"any","seat":"BTN","spot":"rfi","bucket":"any","frequencies":[{"category":"raise_value","hands":"KK","freq":1}]}
			]}`,
			"duplicate",
		},
		{
			"delta out of range",
			`{"version":"1.0","baseline":[{"format":"cash","stage":"any","seat":"BTN","spot":"rfi","bucket":"any","frequencies":[{"category":"raise_value","hands":"AA","freq":1}]}],
			  "adjustments":[{"tendency":"nit","stage":"any","bucket":"any","deltas":[{"category":"call","hands":"AA","delta":1.5}]}]}`,
			"outside",
		},
		{
			"unknown tendency",
			`{"version":"1.0","baseline":[{"format":"cash","stage":"any","seat":"BTN","spot":"rfi","bucket":"any","frequencies":[{"category":"raise_value","hands":"AA","freq":1}]}],
			  "adjustments":[{"tendency":"maniac","stage":"any","bucket":"any","deltas":[]}]}`,
			"invalid tendency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.payload))
			if err == nil {
				t.Fatal("Load expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q does not mention %q", err, tt.wantIn)
			}
		})
	}
}

func TestLookupBaseline_WildcardFallback(t *testing.T) {
	tables, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault error = %v", err)
	}

	// Exact bucket row exists for tournament BTN rfi le20
	if _, ok := tables.lookupBaseline(BaselineKey{
		Format: spot.FormatTournament,
		Stage:  spot.StageBubble,
		Seat:   seats.BTN,
		Spot:   spot.SpotRFI,
		Bucket: buckets.BucketShort,
	}); !ok {
		t.Error("expected wildcard-stage fallback to find the le20 BTN rfi row")
	}

	// Deep tournament BTN rfi falls back to the bucket wildcard
	if _, ok := tables.lookupBaseline(BaselineKey{
		Format: spot.FormatTournament,
		Stage:  spot.StageEarly,
		Seat:   seats.BTN,
		Spot:   spot.SpotRFI,
		Bucket: buckets.BucketVeryDeep,
	}); !ok {
		t.Error("expected bucket wildcard fallback to find the BTN rfi row")
	}

	// Cash UTG vs_4bet has no row at all
	if _, ok := tables.lookupBaseline(BaselineKey{
		Format: spot.FormatCash,
		Seat:   seats.UTG,
		Spot:   spot.SpotVs4Bet,
		Bucket: buckets.BucketVeryDeep,
	}); ok {
		t.Error("expected a miss for cash UTG vs_4bet")
	}
}
