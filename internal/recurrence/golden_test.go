package recurrence

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/agbru/ckptcalc/pkg/models"
)

// TestGolden compares every policy against reference values produced by
// cmd/generate-golden with exact IEEE-754 double rounding emulation.
func TestGolden(t *testing.T) {
	t.Parallel()
	path := filepath.Join("testdata", "trajectory_golden.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden file: %v", err)
	}

	var cases []models.TrajectoryCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("Failed to parse golden file: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("golden file contains no cases")
	}

	factory := NewFactory(nopLogger())
	ctx := context.Background()

	for _, tc := range cases {
		want, err := strconv.ParseFloat(tc.Final, 64)
		if err != nil {
			t.Fatalf("invalid golden value %q: %v", tc.Final, err)
		}

		if got := Advance(tc.X, tc.Depth); math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("Advance(%v, %d) = %v, want %v", tc.X, tc.Depth, got, want)
		}

		for _, name := range factory.List() {
			p, err := factory.Create(name, Params{Interval: 3})
			if err != nil {
				t.Fatalf("Create(%s): %v", name, err)
			}
			out, err := p.Run(ctx, tc.X, tc.Depth)
			if err != nil {
				t.Fatalf("%s.Run(%v, %d): %v", name, tc.X, tc.Depth, err)
			}
			if math.Float64bits(out.Final) != math.Float64bits(want) {
				t.Errorf("%s.Run(%v, %d) = %v, want %v", name, tc.X, tc.Depth, out.Final, want)
			}
		}
	}
}
