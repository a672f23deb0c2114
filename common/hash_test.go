// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	b, err := FromHex("0x0102")
	assert.Nil(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	assert.Equal(t, "0x0102", ToHex(b))

	b, err = FromHex("0x102")
	assert.Nil(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	assert.Equal(t, "", ToHex(nil))
	b, err = FromHex("")
	assert.Nil(t, err)
	assert.Equal(t, 0, len(b))
}

func TestSha3(t *testing.T) {
	//keccak256("")
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", ToHex(Sha3(nil)))
	assert.Equal(t, Sha3([]byte("ab")), Sha3([]byte("a"), []byte("b")))
}

func TestInt64ToBytes(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 0}, Int64ToBytes(256))
}
