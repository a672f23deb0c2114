// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"

	log "github.com/inconshreveable/log15"
)

//ListHelper ...
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//PrefixScan 前缀
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte) {
	return db.IteratorScanFromFirst(prefix, -1)
}

//List 列表, key 为游标(不包含), 为空时从头或者尾开始
func (db *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte) {
	if len(key) == 0 {
		if direction == ListASC {
			return db.IteratorScanFromFirst(prefix, count)
		}
		return db.IteratorScanFromLast(prefix, count)
	}
	return db.IteratorScan(prefix, key, count, direction)
}

//IteratorScan 迭代
func (db *ListHelper) IteratorScan(prefix []byte, key []byte, count int32, direction int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, direction == ListDESC)
	defer it.Close()

	var i int32
	ok := it.Seek(key)
	if ok && bytes.Equal(it.Key(), key) {
		ok = it.Next()
	}
	for ; ok && it.Valid(); ok = it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("IteratorScan it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return
}

//IteratorScanFromFirst 从头迭代
func (db *ListHelper) IteratorScanFromFirst(prefix []byte, count int32) (values [][]byte) {
	return db.scan(prefix, count, false)
}

//IteratorScanFromLast 从尾迭代
func (db *ListHelper) IteratorScanFromLast(prefix []byte, count int32) (values [][]byte) {
	return db.scan(prefix, count, true)
}

func (db *ListHelper) scan(prefix []byte, count int32, reverse bool) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, reverse)
	defer it.Close()
	var i int32
	for ok := it.Rewind(); ok && it.Valid(); ok = it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("scan it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return
}

//PrefixCount 前缀数量
func (db *ListHelper) PrefixCount(prefix []byte) (count int64) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()
	for ok := it.Rewind(); ok && it.Valid(); ok = it.Next() {
		count++
	}
	return
}
