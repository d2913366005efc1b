// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

var levels = []Level{Verbo, Debug, Trace, Info, Warn, Error, Fatal, Off}

func TestLevelOrder(t *testing.T) {
	require := require.New(t)

	for i := 1; i < len(levels); i++ {
		require.Less(levels[i-1], levels[i])
	}
}

func TestToLevelRoundTrip(t *testing.T) {
	for _, level := range levels {
		t.Run(level.String(), func(t *testing.T) {
			require := require.New(t)

			parsed, err := ToLevel(level.String())
			require.NoError(err)
			require.Equal(level, parsed)
		})
	}
}

func TestToLevelLowercase(t *testing.T) {
	require := require.New(t)

	level, err := ToLevel("verbo")
	require.NoError(err)
	require.Equal(Verbo, level)
}

func TestToLevelUnknown(t *testing.T) {
	require := require.New(t)

	_, err := ToLevel("loud")
	require.ErrorIs(err, ErrUnknownLevel)
}

func TestLevelJSON(t *testing.T) {
	for _, level := range levels {
		t.Run(level.String(), func(t *testing.T) {
			require := require.New(t)

			b, err := json.Marshal(level)
			require.NoError(err)
			require.Equal(`"`+level.String()+`"`, string(b))

			var parsed Level
			require.NoError(json.Unmarshal(b, &parsed))
			require.Equal(level, parsed)
		})
	}
}

func TestLevelJSONInvalid(t *testing.T) {
	require := require.New(t)

	var level Level
	require.ErrorIs(json.Unmarshal([]byte(`"loud"`), &level), ErrUnknownLevel)
	require.Error(json.Unmarshal([]byte(`7`), &level))
}
