// Package prng is a small counter-based generator used for aesthetic
// variety. Identical seeds always produce identical draw sequences.
package prng

import "math"

// Rand is owned by a single generation call. Copying it forks the stream.
type Rand struct {
	state int64
}

// New seeds the generator from a string.
func New(seed string) Rand {
	return Rand{state: int64(HashString(seed))}
}

// FromNumber seeds the generator from a numeric seed.
func FromNumber(n int64) Rand {
	return Rand{state: n}
}

// HashString folds the character codes of s with shift mixing into a
// non-negative 32-bit value.
func HashString(s string) int32 {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}
	if h < 0 {
		if h == math.MinInt32 {
			return math.MaxInt32
		}
		h = -h
	}
	return h
}

// State returns the counter, for callers that thread it explicitly.
func (r Rand) State() int64 { return r.state }

// Next returns the next value in [0, 1).
func (r *Rand) Next() float64 {
	x := math.Sin(float64(r.state)) * 10000
	r.state++
	v := x - math.Floor(x)
	if v >= 1 {
		v = 0
	}
	return v
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(r.Next() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Range returns a value in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Next()
}

// Bool is a fair coin.
func (r *Rand) Bool() bool {
	return r.Next() < 0.5
}
