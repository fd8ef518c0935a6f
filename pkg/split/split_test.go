package split_test

import (
	"testing"

	"github.com/berquerant/polylist/pkg/list"
	"github.com/berquerant/polylist/pkg/split"
	"github.com/stretchr/testify/assert"
)

func TestIsInteger(t *testing.T) {
	for _, tc := range []struct {
		v    float64
		want bool
	}{
		{v: 0, want: true},
		{v: 7, want: true},
		{v: -3, want: true},
		{v: 7 + 1e-12, want: true},
		{v: 7 - 1e-12, want: true},
		{v: 7 + 1e-6, want: false},
		{v: 3.14, want: false},
		{v: -1.5, want: false},
	} {
		assert.Equal(t, tc.want, split.IsInteger(tc.v), "%v", tc.v)
	}
}

func TestParts(t *testing.T) {
	for _, tc := range []struct {
		v        float64
		whole    float64
		fraction float64
	}{
		{v: 3.14, whole: 3, fraction: 0.14},
		{v: -1.5, whole: -2, fraction: 0.5},
		{v: -0.25, whole: -1, fraction: 0.75},
		{v: 8.91, whole: 8, fraction: 0.91},
	} {
		assert.Equal(t, tc.whole, split.WholePart(tc.v), "%v", tc.v)
		assert.InDelta(t, tc.fraction, split.FractionalPart(tc.v), split.Tolerance, "%v", tc.v)
	}
}

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		title     string
		src       []float64
		whole     []float64
		fraction  []float64
		processed int
		skipped   int
	}{
		{
			title:    "empty",
			src:      nil,
			whole:    []float64{},
			fraction: []float64{},
		},
		{
			title:     "mixed",
			src:       []float64{3.14, 5.67, 7.0, -1.5},
			whole:     []float64{3, 5, -2},
			fraction:  []float64{0.14, 0.67, 0.5},
			processed: 3,
			skipped:   1,
		},
		{
			title:    "integers only",
			src:      []float64{1, -2, 0},
			whole:    []float64{},
			fraction: []float64{},
			skipped:  3,
		},
		{
			title:     "demo",
			src:       []float64{3.14, 5.67, 2.89, 7.0, 4.25, 8.91},
			whole:     []float64{3, 5, 2, 4, 8},
			fraction:  []float64{0.14, 0.67, 0.89, 0.25, 0.91},
			processed: 5,
			skipped:   1,
		},
	} {
		t.Run(tc.title, func(t *testing.T) {
			src := list.New(tc.src...)
			got := split.Split(src)
			assert.Equal(t, tc.whole, got.Whole.Values())
			assert.InDeltaSlice(t, tc.fraction, got.Fraction.Values(), split.Tolerance)
			assert.Equal(t, len(tc.fraction), got.Fraction.Len())
			assert.Equal(t, tc.processed, got.Processed)
			assert.Equal(t, tc.skipped, got.Skipped)
			assert.Equal(t, src.Len()-got.Whole.Len(), got.Skipped)
			assert.Equal(t, len(tc.src), src.Len(), "source is untouched")
		})
	}
}

func TestInto(t *testing.T) {
	var (
		whole    = list.New(100)
		fraction = list.New(0.5)
	)
	got := split.Into(list.New(1.25, 2), whole, fraction)
	assert.Equal(t, 1, got.Processed)
	assert.Equal(t, 1, got.Skipped)
	assert.Same(t, whole, got.Whole)
	assert.Same(t, fraction, got.Fraction)
	assert.Equal(t, []float64{100, 1}, whole.Values())
	assert.Equal(t, []float64{0.5, 0.25}, fraction.Values())
}
