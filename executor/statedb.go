// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	dbm "github.com/33cn/hot/common/db"
	"github.com/33cn/hot/types"
)

// StateDB 区块执行过程中的状态数据库
// txcache 保存当前交易的修改, 交易成功后合并到 cache, 区块结束时 Flush 到磁盘
type StateDB struct {
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
	db      dbm.DB
}

// NewStateDB new state db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{
		cache: make(map[string][]byte),
		db:    db,
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit canche tx
func (s *StateDB) Commit() error {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
	return nil
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return found(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return found(value)
	}
	value, err := s.db.Get(key)
	if err != nil {
		if err == dbm.ErrNotFoundInDb {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// 长度为0的值表示已经删除
func found(value []byte) ([]byte, error) {
	if len(value) == 0 {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// GetSetKeys  get state db set keys
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// Set set key value to state db, value 为空表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// Flush 写入磁盘
func (s *StateDB) Flush() error {
	if s.intx {
		s.resetTx()
	}
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	batch := s.db.NewBatch(true)
	for _, k := range keys {
		v := s.cache[k]
		if len(v) == 0 {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	s.cache = make(map[string][]byte)
	return nil
}

// Discard 丢弃没有写入磁盘的数据
func (s *StateDB) Discard() {
	s.resetTx()
	s.cache = make(map[string][]byte)
}
