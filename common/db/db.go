// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 存储层接口以及 goleveldb / memdb 实现
package db

import (
	"errors"
	"fmt"
)

//ErrNotFoundInDb error
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV kv
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
	Begin()
	Rollback()
	Commit() error
}

//KVDB kvdb
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

//DB db
type DB interface {
	IteratorDB
	Get([]byte) ([]byte, error)
	Set([]byte, []byte) error
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	// For debugging
	Stats() map[string]string
}

//IteratorDB 迭代
type IteratorDB interface {
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

//Batch batch
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 迭代器
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//-----------------------------------------------------------------------------

//const
const (
	GoLevelDBBackendStr = "leveldb"
	MemDBBackendStr     = "memdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

//RegisterDBCreator 注册
func RegisterDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB new
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown db backend %s", backend)
	}
	return creator(name, dir, int(cache))
}

//CloneByte 拷贝
func CloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}
