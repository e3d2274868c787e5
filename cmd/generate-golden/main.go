package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"strconv"

	"github.com/agbru/ckptcalc/pkg/models"
)

// precision matches float64: every intermediate value is rounded to 53 bits
// exactly as the hardware does, so the oracle is independent of the
// package under test.
const precision = 53

// targets are the (x, depth) pairs written to the golden file.
var targets = []struct {
	x     float64
	depth int
}{
	{2, 0}, {2, 1}, {2, 3}, {2, 5},
	{0.5, 1}, {0.5, 5},
	{0, 6}, {1, 8}, {-1.5, 4},
	{0.001, 1}, {0.001, 2}, {0.001, 10}, {0.001, 12},
	{0.001, 100}, {0.001, 1000}, {0.001, 100000},
	{-0.25, 7}, {1e-8, 3}, {3, 9}, {1.1, 11},
}

func main() {
	outputDir := flag.String("out", "internal/recurrence/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "trajectory_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	data := make([]models.TrajectoryCase, 0, len(targets))

	fmt.Println("Generating golden data...")

	for _, tc := range targets {
		final := advanceBig(tc.x, tc.depth)
		data = append(data, models.TrajectoryCase{
			X:     tc.x,
			Depth: tc.depth,
			Final: strconv.FormatFloat(final, 'g', -1, 64),
		})
		fmt.Printf("Generated x=%g depth=%d\n", tc.x, tc.depth)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// advanceBig applies v*v + 1 depth times with math/big at float64 precision,
// rounding after the product and after the sum. Once the value no longer
// fits in a float64 the result is +Inf.
func advanceBig(x float64, depth int) float64 {
	v := new(big.Float).SetPrec(precision).SetMode(big.ToNearestEven).SetFloat64(x)
	one := big.NewFloat(1)
	sq := new(big.Float).SetPrec(precision).SetMode(big.ToNearestEven)

	for i := 0; i < depth; i++ {
		sq.Mul(v, v)
		if f, _ := sq.Float64(); math.IsInf(f, 0) {
			return math.Inf(1)
		}
		v.Add(sq, one)
		if f, _ := v.Float64(); math.IsInf(f, 0) {
			return math.Inf(1)
		}
	}
	f, _ := v.Float64()
	return f
}
