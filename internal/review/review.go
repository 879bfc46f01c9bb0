// Package review implements the adaptive review engine: priority scoring, review set
// selection, multiple-choice question construction, answer recording and progress
// aggregation over a user's saved words.
//
// Every function in this package is pure. Randomness is taken from an explicit Rand so
// that selection and quiz construction are reproducible with a seeded generator.
package review

// Rand is a source of uniformly distributed numbers in [0, 1)
//
// *math/rand/v2.Rand and *math/rand.Rand both satisfy it.
type Rand interface {
	Float64() float64
}

// RandFunc adapts a plain function, such as math/rand/v2.Float64, to Rand
type RandFunc func() float64

// Float64 calls f
func (f RandFunc) Float64() float64 {
	return f()
}

// shuffle performs an in-place Fisher-Yates shuffle driven by rng
func shuffle[T any](s []T, rng Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		if j > i {
			j = i
		}
		s[i], s[j] = s[j], s[i]
	}
}
