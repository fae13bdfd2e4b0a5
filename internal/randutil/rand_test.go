package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(99), New(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(6), b.IntN(6))
	}
}

func TestNewDiffersAcrossSeeds(t *testing.T) {
	t.Parallel()

	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 64; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 64)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	seed := int64(1234)
	got, err := Resolve(&seed)
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	_, err = Resolve(nil)
	require.NoError(t, err)
}
