package neuro

import (
	"math/rand"
)

// Initializer dictates how the weight of each new edge is chosen.
type Initializer interface {
	Gen() float64
}

type uniform struct {
	lower, upper float64
	src          *rand.Rand
}

// Uniform returns an Initializer that draws from a uniform random sample within a range, which
// can be set by Bounds. The defaults ("init-lower" and "init-upper") can be set by SetDefault,
// and are -1 and 1.
//
// Uniform is the default Initializer.
func Uniform() *uniform {
	return &uniform{lower: defaultValue["init-lower"], upper: defaultValue["init-upper"]}
}

// Bounds sets the range of a Uniform Initializer, returning it
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Source sets the random source the Initializer draws from. If never set (or set to nil), the
// global source from math/rand is used.
func (u *uniform) Source(src *rand.Rand) *uniform {
	u.src = src
	return u
}

// Seed is shorthand for Source(rand.New(rand.NewSource(seed)))
func (u *uniform) Seed(seed int64) *uniform {
	return u.Source(rand.New(rand.NewSource(seed)))
}

// Gen is the implementation of Initializer for Uniform. It returns a random number in
// [lower, upper).
func (u *uniform) Gen() float64 {
	var f float64
	if u.src != nil {
		f = u.src.Float64()
	} else {
		f = rand.Float64()
	}

	return f*(u.upper-u.lower) + u.lower
}

type constant float64

// Constant returns an Initializer that always gives the same value. It exists mostly for testing.
func Constant(value float64) Initializer {
	return constant(value)
}

func (c constant) Gen() float64 {
	return float64(c)
}
