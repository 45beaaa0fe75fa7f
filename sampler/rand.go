// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

var globalRNG = newRNG()

func newRNG() *rng {
	// We don't use a cryptographically secure source of randomness here, as
	// there's no need for the drawn ids to be unpredictable.
	source := prng.NewMT19937()
	source.Seed(uint64(time.Now().UnixNano()))
	return &rng{source: source}
}

// Source produces the 64-bit entropy values consumed by a draw.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// NewSource returns a Source whose stream of values is fully determined by
// [seed].
func NewSource(seed int64) Source {
	source := prng.NewMT19937()
	source.Seed(uint64(seed))
	return &rng{source: source}
}

type rng struct {
	lock   sync.Mutex
	source *prng.MT19937
}

func (r *rng) Seed(seed int64) {
	r.lock.Lock()
	r.source.Seed(uint64(seed))
	r.lock.Unlock()
}

func (r *rng) Uint64() uint64 {
	// Note: We must grab a write lock here because the source internally
	// modifies state.
	r.lock.Lock()
	n := r.source.Uint64()
	r.lock.Unlock()
	return n
}
