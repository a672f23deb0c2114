// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto 签名算法的接口以及注册
package crypto

import (
	"crypto/rand"
	"errors"
	"sync"
)

//ErrNotSupport 不支持的签名算法
var ErrNotSupport = errors.New("ErrNotSupport")

//ErrSign 签名校验失败
var ErrSign = errors.New("error signature")

//PrivKey 私钥
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
	Equals(PrivKey) bool
}

//Signature 签名
type Signature interface {
	Bytes() []byte
	IsZero() bool
	String() string
	Equals(Signature) bool
}

//PubKey 公钥
type PubKey interface {
	Bytes() []byte
	KeyString() string
	VerifyBytes(msg []byte, sig Signature) bool
	Equals(PubKey) bool
}

//Crypto 加密
type Crypto interface {
	GenKey() (PrivKey, error)
	SignatureFromBytes([]byte) (Signature, error)
	PrivKeyFromBytes([]byte) (PrivKey, error)
	PubKeyFromBytes([]byte) (PubKey, error)
	Validate(msg, pub, sig []byte) error
}

var (
	drivers     = make(map[string]Crypto)
	driversType = make(map[string]int32)
	driverMutex sync.Mutex
)

//Register 注册
func Register(name string, driver Crypto, typeID int32) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	if _, dup := drivers[name]; dup {
		panic("crypto: Register called twice for driver " + name)
	}
	drivers[name] = driver
	driversType[name] = typeID
}

//New new
func New(name string) (c Crypto, err error) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	c, ok := drivers[name]
	if !ok {
		return nil, ErrNotSupport
	}
	return c, nil
}

//GetType 获取签名类型
func GetType(name string) int32 {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	return driversType[name]
}

//CRandBytes 随机字节
func CRandBytes(numBytes int) []byte {
	b := make([]byte, numBytes)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

//BasicValidation 公共的签名检查
func BasicValidation(c Crypto, msg, pub, sig []byte) error {
	pubKey, err := c.PubKeyFromBytes(pub)
	if err != nil {
		return err
	}
	s, err := c.SignatureFromBytes(sig)
	if err != nil {
		return err
	}
	if !pubKey.VerifyBytes(msg, s) {
		return ErrSign
	}
	return nil
}
