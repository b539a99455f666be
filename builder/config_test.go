// SPDX-License-Identifier: MIT
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, defaultDensity, cfg.density)
	assert.Equal(t, []byte(`/\-|`), cfg.symbols)
}

func TestNewConfig_LastWins(t *testing.T) {
	cfg := newConfig(WithDensity(0.1), WithDensity(0.9), WithSymbols('-'))
	assert.Equal(t, 0.9, cfg.density)
	assert.Equal(t, []byte{'-'}, cfg.symbols)
}

func TestWithRand_UsesGivenSource(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	cfg := newConfig(WithRand(r))
	require.NotNil(t, cfg.rng)
	assert.Same(t, r, cfg.rng)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithDensity(-0.01) })
	assert.Panics(t, func() { WithDensity(1.01) })
	assert.Panics(t, func() { WithSymbols() })
	assert.NotPanics(t, func() { WithDensity(0) })
	assert.NotPanics(t, func() { WithDensity(1) })
}
