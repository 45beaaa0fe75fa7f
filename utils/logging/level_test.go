// Copyright (C) 2024-2026, Modrange Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelRoundTrip(t *testing.T) {
	levels := []Level{Debug, Info, Warn, Error, Fatal, Off}
	for _, level := range levels {
		t.Run(level.String(), func(t *testing.T) {
			parsed, err := ToLevel(level.String())
			require.NoError(t, err)
			require.Equal(t, level, parsed)
		})
	}
}

func TestToLevelCaseInsensitive(t *testing.T) {
	parsed, err := ToLevel("info")
	require.NoError(t, err)
	require.Equal(t, Info, parsed)
}

func TestToLevelUnknown(t *testing.T) {
	_, err := ToLevel("loud")
	require.Error(t, err)
}
