package shred

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillDeterministicPatterns(t *testing.T) {
	buf := make([]byte, 64)

	require.NoError(t, PatternZero.Fill(buf))
	assert.Equal(t, bytes.Repeat([]byte{0x00}, 64), buf)

	require.NoError(t, PatternOnes.Fill(buf))
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, 64), buf)
}

func TestFillRandomPattern(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)

	require.NoError(t, PatternRandom.Fill(a))
	require.NoError(t, PatternRandom.Fill(b))

	assert.NotEqual(t, bytes.Repeat([]byte{0x00}, 64), a)
	// Two independent draws colliding on 64 bytes would mean a broken source.
	assert.NotEqual(t, a, b)
}

func TestStandardSchemePassSequence(t *testing.T) {
	s := SchemeStandard

	assert.Equal(t, PatternZero, s.PassPattern(1, 3))
	assert.Equal(t, PatternOnes, s.PassPattern(2, 3))
	assert.Equal(t, PatternRandom, s.PassPattern(3, 3))

	// More passes than scheme entries: early entries cycle, last pass stays random.
	assert.Equal(t, PatternZero, s.PassPattern(1, 5))
	assert.Equal(t, PatternOnes, s.PassPattern(2, 5))
	assert.Equal(t, PatternZero, s.PassPattern(3, 5))
	assert.Equal(t, PatternOnes, s.PassPattern(4, 5))
	assert.Equal(t, PatternRandom, s.PassPattern(5, 5))

	// Single pass collapses to the final (random) pattern.
	assert.Equal(t, PatternRandom, s.PassPattern(1, 1))
}

func TestSinglePatternSchemes(t *testing.T) {
	assert.Equal(t, PatternZero, SchemeZero.PassPattern(1, 3))
	assert.Equal(t, PatternZero, SchemeZero.PassPattern(3, 3))
	assert.Equal(t, PatternRandom, SchemeRandom.PassPattern(2, 4))
}

func TestValidateScheme(t *testing.T) {
	for _, name := range []string{"standard", "random", "zero", "dod5220"} {
		s, err := ValidateScheme(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name)
		assert.NotEmpty(t, s.Passes)
	}

	_, err := ValidateScheme("gutmann35")
	assert.Error(t, err)
}
