package store_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eulerfn/partitionfn/partition/store"
)

func TestMemDBInsertIfAbsent(t *testing.T) {
	st, err := store.NewMemDB()
	require.NoError(t, err)
	insertIfAbsentContract(t, st)
	assert.Equal(t, 1, st.Len())
}

func TestMemDBSnapshot(t *testing.T) {
	st, err := store.NewMemDB()
	require.NoError(t, err)

	want := map[int]*big.Int{
		0: big.NewInt(1),
		4: big.NewInt(5),
		9: big.NewInt(30),
	}
	for n, v := range want {
		inserted, err := st.InsertIfAbsent(n, v)
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	snap, err := st.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, want, snap)
}
