package store_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eulerfn/partitionfn/partition/store"
)

// insertIfAbsentContract checks the one rule every backend must obey:
// an existing entry is never replaced.
func insertIfAbsentContract(t *testing.T, st store.Store) {
	t.Helper()

	_, ok, err := st.Load(7)
	require.NoError(t, err)
	assert.False(t, ok)

	inserted, err := st.InsertIfAbsent(7, big.NewInt(15))
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = st.InsertIfAbsent(7, big.NewInt(999))
	require.NoError(t, err)
	assert.False(t, inserted)

	v, ok, err := st.Load(7)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, big.NewInt(15), v)
}

func TestInMemoryInsertIfAbsent(t *testing.T) {
	st := store.NewInMemory()
	insertIfAbsentContract(t, st)
	assert.Equal(t, 1, st.Len())
}

func TestShardedInsertIfAbsent(t *testing.T) {
	st := store.NewSharded(4)
	insertIfAbsentContract(t, st)
	assert.Equal(t, 1, st.Len())
}

func TestShardedSpreadsKeys(t *testing.T) {
	st := store.NewSharded(8)
	for n := 0; n < 100; n++ {
		inserted, err := st.InsertIfAbsent(n, big.NewInt(int64(n)))
		require.NoError(t, err)
		assert.True(t, inserted)
	}
	assert.Equal(t, 100, st.Len())
	for n := 0; n < 100; n++ {
		v, ok, err := st.Load(n)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, big.NewInt(int64(n)), v)
	}
}

func TestShardedPanicsOnZeroShards(t *testing.T) {
	assert.Panics(t, func() { store.NewSharded(0) })
}
