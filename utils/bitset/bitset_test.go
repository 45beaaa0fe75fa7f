// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	require := require.New(t)

	s := New(200)
	require.Zero(s.Len())
	require.False(s.Contains(0))
	require.False(s.Contains(199))

	s.Add(0)
	s.Add(63)
	s.Add(64)
	s.Add(199)
	require.Equal(4, s.Len())
	require.True(s.Contains(0))
	require.True(s.Contains(63))
	require.True(s.Contains(64))
	require.True(s.Contains(199))
	require.False(s.Contains(1))
	require.False(s.Contains(128))

	// Adding an element twice is a no-op.
	s.Add(64)
	require.Equal(4, s.Len())

	s.Remove(63)
	require.False(s.Contains(63))
	require.Equal(3, s.Len())
}
