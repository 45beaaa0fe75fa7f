// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

var (
	ErrInvalidDomain = errors.New("domain size must be positive")
	ErrExhausted     = errors.New("sampler exhausted")
)

// Range is the half-open interval [Start, Start+Size) of ids that have not
// been drawn yet. A stored range always has Size >= 1.
type Range struct {
	Start uint64
	Size  uint64
}

// RangePool partitions the undrawn portion of the domain [0, length) into
// disjoint ranges. It never materializes the domain: draws are O(1) amortized
// and the pool holds at most ⌈length/2⌉ ranges.
//
// The order of the stored ranges carries no meaning. No code outside the pool
// holds a range index across calls, so removal can reorder freely.
//
// A RangePool is not safe for concurrent use.
type RangePool struct {
	ranges    []Range
	remaining uint64
}

// NewRangePool returns a pool covering the full domain [0, length).
//
// The domain size is unsigned, so zero is the only representable non-positive
// size and the only one rejected.
func NewRangePool(length uint64) (*RangePool, error) {
	if length == 0 {
		return nil, ErrInvalidDomain
	}
	return &RangePool{
		ranges:    []Range{{Start: 0, Size: length}},
		remaining: length,
	}, nil
}

// Draw removes one undrawn id from the pool and returns it. The caller
// supplies the entropy; Draw itself is deterministic.
//
// The same entropy value is reduced twice, once to pick the range and once to
// pick the offset within it. Reusing one sample correlates the two choices, so
// a draw is not a strictly uniform pick over the remaining domain when ranges
// have unequal sizes. It remains a valid permutation generator: every id is
// returned exactly once over the domain's lifetime regardless of entropy
// quality.
//
// Returns ErrExhausted, without modifying the pool, once every id has been
// drawn.
func (p *RangePool) Draw(entropy uint64) (uint64, error) {
	k := uint64(len(p.ranges))
	if k == 0 {
		return 0, ErrExhausted
	}

	index := entropy % k
	r := p.ranges[index]
	offset := entropy % r.Size
	id := r.Start + offset

	switch {
	case offset == 0:
		if r.Size == 1 {
			// Swap-remove keeps deletion O(1).
			newLen := len(p.ranges) - 1
			p.ranges[index] = p.ranges[newLen]
			p.ranges = p.ranges[:newLen]
		} else {
			p.ranges[index] = Range{Start: r.Start + 1, Size: r.Size - 1}
		}
	case offset == r.Size-1:
		p.ranges[index] = Range{Start: r.Start, Size: r.Size - 1}
	default:
		// An interior draw splits the range: the left remainder keeps the
		// slot and the right remainder is appended. This is the only case
		// that grows the pool.
		p.ranges[index] = Range{Start: r.Start, Size: offset}
		p.ranges = append(p.ranges, Range{
			Start: id + 1,
			Size:  r.Size - offset - 1,
		})
	}

	p.remaining--
	return id, nil
}

// Len returns the number of ranges currently held.
func (p *RangePool) Len() int {
	return len(p.ranges)
}

// Remaining returns the number of ids that have not been drawn yet.
func (p *RangePool) Remaining() uint64 {
	return p.remaining
}
