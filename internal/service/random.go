package service

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Random is the source of every randomized simulator decision.
type Random interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// IntN returns a number in [0, n).
	IntN(n int) int
}

// NewRandom returns the process random source. A zero seed uses the
// runtime-seeded global generator; any other seed gives a reproducible sequence.
func NewRandom(seed int64) Random {
	if seed == 0 {
		return globalRandom{}
	}
	return &seededRandom{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }
func (globalRandom) IntN(n int) int   { return rand.IntN(n) }

// seededRandom serializes access because *rand.Rand is not safe for concurrent use.
type seededRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *seededRandom) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *seededRandom) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Clock abstracts time.Now so tests can pin the simulated instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }
