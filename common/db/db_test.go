// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDBs(t *testing.T) (dbs []DB, clean func()) {
	dir, err := os.MkdirTemp("", "hotdb")
	require.Nil(t, err)
	level, err := NewDB("test", GoLevelDBBackendStr, dir, 16)
	require.Nil(t, err)
	mem, err := NewDB("test", MemDBBackendStr, "", 0)
	require.Nil(t, err)
	return []DB{level, mem}, func() {
		level.Close()
		os.RemoveAll(dir)
	}
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "nosuchdb", "", 0)
	assert.NotNil(t, err)
}

func TestGetSetDelete(t *testing.T) {
	dbs, clean := testDBs(t)
	defer clean()
	for _, db := range dbs {
		_, err := db.Get([]byte("a"))
		assert.Equal(t, ErrNotFoundInDb, err)

		require.Nil(t, db.Set([]byte("a"), []byte("1")))
		v, err := db.Get([]byte("a"))
		require.Nil(t, err)
		assert.Equal(t, []byte("1"), v)

		require.Nil(t, db.Delete([]byte("a")))
		_, err = db.Get([]byte("a"))
		assert.Equal(t, ErrNotFoundInDb, err)
		assert.NotNil(t, db.Stats())
	}
}

func TestBatch(t *testing.T) {
	dbs, clean := testDBs(t)
	defer clean()
	for _, db := range dbs {
		require.Nil(t, db.Set([]byte("del"), []byte("x")))
		batch := db.NewBatch(true)
		batch.Set([]byte("k1"), []byte("v1"))
		batch.Set([]byte("k2"), []byte("v2"))
		batch.Delete([]byte("del"))
		assert.True(t, batch.ValueSize() > 0)
		require.Nil(t, batch.Write())

		v, err := db.Get([]byte("k2"))
		require.Nil(t, err)
		assert.Equal(t, []byte("v2"), v)
		_, err = db.Get([]byte("del"))
		assert.Equal(t, ErrNotFoundInDb, err)

		batch.Reset()
		assert.Equal(t, 0, batch.ValueSize())
	}
}

func TestListHelper(t *testing.T) {
	dbs, clean := testDBs(t)
	defer clean()
	for _, db := range dbs {
		for i := 0; i < 5; i++ {
			require.Nil(t, db.Set([]byte(fmt.Sprintf("round:%03d", i)), []byte(fmt.Sprint(i))))
		}
		require.Nil(t, db.Set([]byte("other:001"), []byte("x")))

		list := NewListHelper(db)
		assert.Equal(t, [][]byte{[]byte("0"), []byte("1")}, list.List([]byte("round:"), nil, 2, ListASC))
		assert.Equal(t, [][]byte{[]byte("4"), []byte("3")}, list.List([]byte("round:"), nil, 2, ListDESC))
		assert.Equal(t, [][]byte{[]byte("3"), []byte("4")}, list.List([]byte("round:"), []byte("round:002"), 10, ListASC))
		assert.Equal(t, [][]byte{[]byte("1"), []byte("0")}, list.List([]byte("round:"), []byte("round:002"), 10, ListDESC))
		assert.Equal(t, 5, len(list.PrefixScan([]byte("round:"))))
		assert.Equal(t, int64(5), list.PrefixCount([]byte("round:")))
		assert.Nil(t, list.List([]byte("none:"), nil, 10, ListASC))
	}
}
