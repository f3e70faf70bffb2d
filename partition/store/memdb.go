package store

import (
	"math/big"

	memdb "github.com/hashicorp/go-memdb"
)

const (
	memdbTable = "partition"
	memdbIndex = "id"
)

type memdbRow struct {
	N int
	P *big.Int
}

// MemDB is an unbounded store backed by a go-memdb table. Its transactional
// snapshots make the cache inspectable while queries are in flight, which is
// what the conformance checks use to verify cache consistency.
type MemDB struct {
	db *memdb.MemDB
}

// NewMemDB returns an empty memdb-backed store.
func NewMemDB() (*MemDB, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memdbTable: {
				Name: memdbTable,
				Indexes: map[string]*memdb.IndexSchema{
					memdbIndex: {
						Name:    memdbIndex,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "N"},
					},
				},
			},
		},
	}
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, err
	}
	return &MemDB{db: db}, nil
}

func (m *MemDB) Load(n int) (*big.Int, bool, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memdbTable, memdbIndex, n)
	if err != nil || raw == nil {
		return nil, false, err
	}
	return raw.(*memdbRow).P, true, nil
}

func (m *MemDB) InsertIfAbsent(n int, v *big.Int) (bool, error) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	old, err := txn.First(memdbTable, memdbIndex, n)
	if err != nil {
		return false, err
	} else if old != nil {
		return false, nil
	}

	if err := txn.Insert(memdbTable, &memdbRow{N: n, P: v}); err != nil {
		return false, err
	}
	txn.Commit()
	return true, nil
}

// Snapshot returns a point-in-time copy of every cached entry.
func (m *MemDB) Snapshot() (map[int]*big.Int, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(memdbTable, memdbIndex)
	if err != nil {
		return nil, err
	}
	out := make(map[int]*big.Int)
	for raw := it.Next(); raw != nil; raw = it.Next() {
		row := raw.(*memdbRow)
		out[row.N] = row.P
	}
	return out, nil
}

// Len returns the number of cached entries.
func (m *MemDB) Len() int {
	snap, err := m.Snapshot()
	if err != nil {
		return 0
	}
	return len(snap)
}
