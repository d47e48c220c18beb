package points

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScore is returned by New when value < 0, value > max, or either
// component is NaN. It almost always means a Compare implementation is wrong.
var ErrInvalidScore = errors.New("points: invalid score")

// Points is the immutable outcome of one comparison.
// The zero value is 0/0 and is valid.
type Points struct {
	value float64
	max   float64
}

// New returns value/max points.
// Complexity: O(1).
func New(value, max float64) (Points, error) {
	if math.IsNaN(value) || math.IsNaN(max) {
		return Points{}, fmt.Errorf("%w: NaN component (%v/%v)", ErrInvalidScore, value, max)
	}
	if value < 0 {
		return Points{}, fmt.Errorf("%w: value %v must be >= 0", ErrInvalidScore, value)
	}
	if value > max {
		return Points{}, fmt.Errorf("%w: value %v exceeds maximum %v", ErrInvalidScore, value, max)
	}

	return Points{value: value, max: max}, nil
}

// Zero returns 0/0, the neutral element of Plus.
func Zero() Points { return Points{} }

// Perfect returns 1/1, the default outcome of a label-less comparison.
func Perfect() Points { return Points{value: 1, max: 1} }

// Value returns the points reached.
func (p Points) Value() float64 { return p.value }

// Max returns the maximum reachable points.
func (p Points) Max() float64 { return p.max }

// Score returns value/max, or 0 if max is 0.
func (p Points) Score() float64 {
	if p.max == 0 {
		return 0
	}

	return p.value / p.max
}

// Plus returns the component-wise sum of p and other.
func (p Points) Plus(other Points) Points {
	return Points{value: p.value + other.value, max: p.max + other.max}
}

// IsZero reports whether both components are 0.
func (p Points) IsZero() bool { return p.value == 0 && p.max == 0 }

// String implements fmt.Stringer.
func (p Points) String() string {
	return fmt.Sprintf("Points:%v/%v=%v", p.value, p.max, p.Score())
}

// Sum folds ps with Plus starting from Zero.
// Complexity: O(len(ps)).
func Sum(ps ...Points) Points {
	acc := Zero()
	for _, p := range ps {
		acc = acc.Plus(p)
	}

	return acc
}
