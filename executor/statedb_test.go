// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor_test

import (
	"testing"

	dbm "github.com/33cn/hot/common/db"
	"github.com/33cn/hot/executor"
	"github.com/33cn/hot/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemDB(t *testing.T) dbm.DB {
	db, err := dbm.NewDB("test", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	return db
}

func TestStateDBGet(t *testing.T) {
	db := executor.NewStateDB(newMemDB(t))
	err := db.Set([]byte("k1"), []byte("v1"))
	assert.Nil(t, err)
	v, err := db.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, v, []byte("v1"))

	err = db.Set([]byte("k1"), []byte("v11"))
	assert.Nil(t, err)
	v, err = db.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, v, []byte("v11"))

	_, err = db.Get([]byte("k2"))
	assert.Equal(t, types.ErrNotFound, err)
}

func TestStateDBTxRollback(t *testing.T) {
	db := executor.NewStateDB(newMemDB(t))
	db.Begin()
	db.Set([]byte("k1"), []byte("v1"))
	v, err := db.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v1"), v)
	assert.Equal(t, []string{"k1"}, db.GetSetKeys())
	db.Rollback()
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, types.ErrNotFound, err)

	db.Begin()
	db.Set([]byte("k1"), []byte("v1"))
	assert.Nil(t, db.Commit())
	v, err = db.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v1"), v)
}

func TestStateDBFlush(t *testing.T) {
	maindb := newMemDB(t)
	maindb.Set([]byte("old"), []byte("v0"))
	db := executor.NewStateDB(maindb)
	db.Set([]byte("k1"), []byte("v1"))
	db.Set([]byte("old"), nil)
	_, err := db.Get([]byte("old"))
	assert.Equal(t, types.ErrNotFound, err)

	_, err = maindb.Get([]byte("k1"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	require.Nil(t, db.Flush())
	v, err := maindb.Get([]byte("k1"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v1"), v)
	_, err = maindb.Get([]byte("old"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
}

func TestLocalDB(t *testing.T) {
	maindb := newMemDB(t)
	db := executor.NewLocalDB(maindb, false)
	db.Begin()
	db.Set([]byte("LODB-a-1"), []byte("1"))
	db.Rollback()
	_, err := db.Get([]byte("LODB-a-1"))
	assert.Equal(t, types.ErrNotFound, err)

	db.Begin()
	db.Set([]byte("LODB-a-1"), []byte("1"))
	db.Set([]byte("LODB-a-2"), []byte("2"))
	db.Set([]byte("LODB-a-3"), []byte("3"))
	require.Nil(t, db.Commit())
	//list 只读取已经写入磁盘的数据
	_, err = db.List([]byte("LODB-a-"), nil, 0, dbm.ListASC)
	assert.Equal(t, types.ErrNotFound, err)
	require.Nil(t, db.Flush())

	values, err := db.List([]byte("LODB-a-"), nil, 0, dbm.ListASC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("1"), []byte("2"), []byte("3")}, values)
	values, err = db.List([]byte("LODB-a-"), []byte("LODB-a-3"), 1, dbm.ListDESC)
	require.Nil(t, err)
	assert.Equal(t, [][]byte{[]byte("2")}, values)
	assert.Equal(t, int64(3), db.PrefixCount([]byte("LODB-a-")))

	ro := executor.NewLocalDB(maindb, true)
	assert.Panics(t, func() { ro.Set([]byte("x"), []byte("y")) })
}
