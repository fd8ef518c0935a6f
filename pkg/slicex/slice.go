package slicex

import (
	"fmt"
	"slices"
)

// Split splits s at the first occurrence of v, returning copies of the parts before and after it.
// When v is absent, s itself and nil are returned.
func Split[S ~[]E, E comparable](s S, v E) (S, S) {
	i := slices.Index(s, v)
	if i < 0 {
		return s, nil
	}
	return slices.Clone(s[:i]), slices.Clone(s[i+1:])
}

// TryMap applies f to every element of s and stops at the first error,
// which is annotated with the index of the failing element.
func TryMap[S ~[]E, E, T any](s S, f func(E) (T, error)) ([]T, error) {
	r := make([]T, len(s))
	for i, x := range s {
		y, err := f(x)
		if err != nil {
			return nil, fmt.Errorf("%w: [%d]", err, i)
		}
		r[i] = y
	}
	return r, nil
}
