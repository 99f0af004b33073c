package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewDiffersAcrossSeeds(t *testing.T) {
	t.Parallel()
	a := New(1)
	b := New(2)
	assert.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestDeriveIsDeterministicAndDistinct(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Derive(7, 3), Derive(7, 3))
	assert.NotEqual(t, Derive(7, 3), Derive(7, 4))
	assert.NotEqual(t, Derive(7, 3), Derive(8, 3))
}
