package sensor

import (
	"math/rand"
)

// RandomSource is the only randomness the engine consumes. *rand.Rand satisfies it.
type RandomSource interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Intn returns a uniform value in [0,n). n must be positive.
	Intn(n int) int
}

// NewSeededSource returns a math/rand backed source for a fixed seed.
func NewSeededSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ScriptedSource replays fixed values. It is used for predictable testing.
// Once a script runs out it wraps around to the start.
type ScriptedSource struct {
	Floats []float64
	Ints   []int
	fi, ii int
}

func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

func (s *ScriptedSource) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}
