package model

import "gonum.org/v1/gonum/floats"

// Series is a per-year cost sequence over the facility lifetime, in $/yr.
// The model is a steady-state annual average, so every section produces a
// constant-valued series; the type still carries one entry per year so
// that composition can check period counts and downstream consumers can
// index by year.
type Series []float64

// Constant returns a series holding the same value for every year.
func Constant(value float64, years int) Series {
	s := make(Series, years)
	for i := range s {
		s[i] = value
	}
	return s
}

// Years returns the number of periods in the series.
func (s Series) Years() int { return len(s) }

// Sum returns the undiscounted total across all years.
func (s Series) Sum() float64 { return floats.Sum(s) }

// Add returns the element-wise sum of s and other.
func (s Series) Add(other Series) (Series, error) {
	if len(s) != len(other) {
		return nil, &DimensionMismatchError{Want: len(s), Got: len(other)}
	}
	out := make(Series, len(s))
	copy(out, s)
	floats.Add(out, other)
	return out, nil
}
