// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// uniformRangePool allows for sampling over a uniform distribution without
// replacement.
//
// Sampling is performed by tracking the not-yet-drawn portion of the domain as
// a pool of disjoint ranges and consuming one id per draw.
//
// Initialization takes O(1) time.
//
// Sampling is performed in O(count) time and the pool never holds more than
// ⌈length/2⌉ ranges, so memory stays bounded even for huge domains.
type uniformRangePool struct {
	rng       *rng
	seededRNG *rng
	length    uint64
	pool      *RangePool
}

func (s *uniformRangePool) Initialize(length uint64) error {
	pool, err := NewRangePool(length)
	if err != nil {
		return err
	}
	s.rng = globalRNG
	s.seededRNG = newRNG()
	s.length = length
	s.pool = pool
	return nil
}

func (s *uniformRangePool) Sample(count int) ([]uint64, error) {
	s.Reset()

	results := make([]uint64, count)
	for i := 0; i < count; i++ {
		ret, err := s.Next()
		if err != nil {
			return nil, err
		}
		results[i] = ret
	}
	return results, nil
}

func (s *uniformRangePool) Seed(seed int64) {
	s.rng = s.seededRNG
	s.rng.Seed(seed)
}

func (s *uniformRangePool) ClearSeed() {
	s.rng = globalRNG
}

func (s *uniformRangePool) Reset() {
	// Initialize already validated the length, so the rebuild cannot fail.
	s.pool, _ = NewRangePool(s.length)
}

func (s *uniformRangePool) Next() (uint64, error) {
	return s.pool.Draw(s.rng.Uint64())
}
