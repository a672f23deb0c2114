// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"

	dbm "github.com/33cn/hot/common/db"
	"github.com/33cn/hot/types"
)

// LocalDB local db for store key value in local
type LocalDB struct {
	txcache  map[string][]byte
	cache    map[string][]byte
	maindb   dbm.DB
	intx     bool
	mu       sync.RWMutex
	readOnly bool
}

// NewLocalDB new local db
func NewLocalDB(maindb dbm.DB, readOnly bool) *LocalDB {
	return &LocalDB{
		cache:    make(map[string][]byte),
		maindb:   maindb,
		readOnly: readOnly,
	}
}

// Get get value from local db
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	skey := string(key)
	if l.intx && l.txcache != nil {
		if value, ok := l.txcache[skey]; ok {
			return found(value)
		}
	}
	if value, ok := l.cache[skey]; ok {
		return found(value)
	}
	value, err := l.maindb.Get(key)
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set set key value to local db
func (l *LocalDB) Set(key []byte, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.readOnly {
		panic("set local db in read only mode")
	}
	if l.intx {
		if l.txcache == nil {
			l.txcache = make(map[string][]byte)
		}
		l.txcache[string(key)] = value
	} else {
		l.cache[string(key)] = value
	}
	return nil
}

// List 从数据库中查询数据列表，set 中的cache 更新不会影响这个list
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	values := dbm.NewListHelper(l.maindb).List(prefix, key, count, direction)
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}

// PrefixCount 从数据库中查询指定前缀的key的数量
func (l *LocalDB) PrefixCount(prefix []byte) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return dbm.NewListHelper(l.maindb).PrefixCount(prefix)
}

//Begin 开启内存事务处理
func (l *LocalDB) Begin() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intx = true
	l.txcache = nil
}

// Rollback reset tx
func (l *LocalDB) Rollback() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetTx()
}

// Commit canche tx
func (l *LocalDB) Commit() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for k, v := range l.txcache {
		l.cache[k] = v
	}
	l.resetTx()
	return nil
}

func (l *LocalDB) resetTx() {
	l.intx = false
	l.txcache = nil
}

// Flush 写入磁盘
func (l *LocalDB) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetTx()
	batch := l.maindb.NewBatch(true)
	for k, v := range l.cache {
		if len(v) == 0 {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	l.cache = make(map[string][]byte)
	return nil
}

// Discard 丢弃没有写入磁盘的数据
func (l *LocalDB) Discard() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetTx()
	l.cache = make(map[string][]byte)
}
