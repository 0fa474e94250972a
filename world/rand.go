package world

import (
	"math/rand"
	"time"
)

// Rand is a uniform [0,1) source.
type Rand interface {
	Float64() float64
}

// NewRand returns a math/rand source. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
