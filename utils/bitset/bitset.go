// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package bitset

import "math/bits"

// Set is a fixed-capacity bit set over [0, length). All operations other than
// Len are O(1). This implementation is NOT thread-safe.
type Set struct {
	words []uint64
}

// New returns a set able to hold values in [0, length).
func New(length uint64) Set {
	return Set{words: make([]uint64, (length+63)/64)}
}

// Add sets the [i]'th bit to 1
func (s Set) Add(i uint64) {
	s.words[i>>6] |= 1 << (i & 63)
}

// Remove sets the [i]'th bit to 0
func (s Set) Remove(i uint64) {
	s.words[i>>6] &^= 1 << (i & 63)
}

// Contains returns true if the [i]'th bit is 1, and false otherwise
func (s Set) Contains(i uint64) bool {
	return s.words[i>>6]&(1<<(i&63)) != 0
}

// Len returns the number of elements in this set
func (s Set) Len() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}
	return total
}
