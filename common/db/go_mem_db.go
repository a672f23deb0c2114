// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"strconv"
	"sync"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
)

var mlog = log.New("module", "db.memdb")

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	RegisterDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB db
type GoMemDB struct {
	mu sync.RWMutex
	db *memdb.DB
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{
		db: memdb.New(comparer.DefaultComparer, 0),
	}, nil
}

//Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	v, err := db.db.Get(key)
	if err != nil {
		return nil, ErrNotFoundInDb
	}
	return CloneByte(v), nil
}

//Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	err := db.db.Put(key, value)
	if err != nil {
		mlog.Error("Set", "error", err)
		return err
	}
	return nil
}

//SetSync 设置同步
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	err := db.db.Delete(key)
	if err != nil && err != memdb.ErrNotFound {
		mlog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//DeleteSync 删除同步
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close 关闭
func (db *GoMemDB) Close() {
}

//Stats ...
func (db *GoMemDB) Stats() map[string]string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return map[string]string{"memdb.len": strconv.Itoa(db.db.Len())}
}

//Iterator 迭代器
func (db *GoMemDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	return newGoLevelDBIt(db.db.NewIterator(bytesRange(start, end)), reverse)
}

//NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type kv struct{ k, v []byte }

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{CloneByte(key), CloneByte(value)})
	b.size += len(value) + len(key)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{CloneByte(key), nil})
	b.size += len(key)
}

func (b *memBatch) Write() error {
	b.db.mu.Lock()
	defer b.db.mu.Unlock()
	for _, kv := range b.writes {
		if kv.v == nil {
			err := b.db.db.Delete(kv.k)
			if err != nil && err != memdb.ErrNotFound {
				return err
			}
			continue
		}
		if err := b.db.db.Put(kv.k, kv.v); err != nil {
			return err
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
