// Package util provides random helpers for the intake wizard: display-only
// patient identifiers and placeholder names.
package util

import (
	"math/rand/v2"
	"time"
)

// Package-level default RNG to avoid allocations when rng is nil
var defaultRNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

// Patient identifiers are drawn uniformly from [MinPatientID, MaxPatientID).
const (
	MinPatientID = 4715
	MaxPatientID = 6900
)

// GeneratePatientID draws a display identifier for the identification step.
// It carries no identity and callers draw a new one per render.
// If rng is nil, uses shared default RNG.
func GeneratePatientID(rng *rand.Rand) int {
	if rng == nil {
		rng = defaultRNG
	}
	return MinPatientID + rng.IntN(MaxPatientID-MinPatientID)
}

// NewRNG returns a PCG-backed source. A zero seed uses the current time.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
