package game

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

var (
	sharedOnce sync.Once
	sharedRand *rand.Rand
)

// SharedRand returns the process-wide generator. It is seeded from the clock
// on first use and never reseeded. The source is locked, so boards driven from
// different goroutines may share it.
func SharedRand() *rand.Rand {
	sharedOnce.Do(func() {
		src := &rand.LockedSource{}
		src.Seed(uint64(time.Now().UnixNano()))
		sharedRand = rand.New(src)
	})
	return sharedRand
}

// NewRand returns a private deterministic generator.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
