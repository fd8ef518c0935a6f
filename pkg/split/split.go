package split

import (
	"log/slog"
	"math"

	"github.com/berquerant/polylist/pkg/list"
)

const Tolerance = 1e-9

// IsInteger reports whether v is an integer within Tolerance.
func IsInteger(v float64) bool {
	return math.Abs(v-math.Round(v)) < Tolerance
}

// WholePart rounds v toward negative infinity.
func WholePart(v float64) float64 { return math.Floor(v) }

// FractionalPart is never negative, e.g. -1.5 yields 0.5.
func FractionalPart(v float64) float64 { return v - math.Floor(v) }

type Result struct {
	Whole    *list.List
	Fraction *list.List
	// Processed is the number of non-integer values.
	Processed int
	// Skipped is the number of integer values.
	Skipped int
}

// Split decomposes the non-integer values of src into fresh whole and fraction lists.
func Split(src *list.List) Result {
	return Into(src, list.New(), list.New())
}

// Into appends the whole and fractional parts of every non-integer value of src
// to whole and fraction in source order. Integer values are skipped.
func Into(src, whole, fraction *list.List) Result {
	r := Result{
		Whole:    whole,
		Fraction: fraction,
	}
	for v := range src.All() {
		if IsInteger(v) {
			slog.Debug("split skip", slog.Float64("value", v))
			r.Skipped++
			continue
		}
		whole.Append(WholePart(v))
		fraction.Append(FractionalPart(v))
		r.Processed++
	}
	return r
}
