// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package secp256k1eth 以太坊兼容的 secp256k1 签名, 消息先做 keccak256
package secp256k1eth

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/33cn/hot/common"
	"github.com/33cn/hot/common/crypto"
	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

//const
const (
	Name = "secp256k1eth"
	ID   = 9

	privKeyBytesLen = 32
	pubkeyBytesLen  = 64 + 1
)

func init() {
	crypto.Register(Name, &Driver{}, ID)
}

// PrivKeySecp256k1Eth PrivKey
type PrivKeySecp256k1Eth [32]byte

// Driver 驱动
type Driver struct{}

// SignatureFromBytes  对字节数组签名
func (d Driver) SignatureFromBytes(b []byte) (crypto.Signature, error) {
	if len(b) != 65 {
		return nil, errors.New("invalid signature length")
	}
	return SignatureSecp256k1Eth(b), nil
}

// PrivKeyFromBytes 字节转为私钥
func (d Driver) PrivKeyFromBytes(b []byte) (crypto.PrivKey, error) {
	if len(b) != privKeyBytesLen {
		return nil, errors.New("invalid priv key byte")
	}
	privKeyBytes := new([privKeyBytesLen]byte)
	copy(privKeyBytes[:], b[:privKeyBytesLen])
	return PrivKeySecp256k1Eth(*privKeyBytes), nil
}

// PubKeyFromBytes 65 bytes uncompress key, 33 bytes 会被解压
func (d Driver) PubKeyFromBytes(b []byte) (crypto.PubKey, error) {
	if len(b) != pubkeyBytesLen && len(b) != 33 {
		return nil, errors.New("invalid pub key byte,must be 65 bytes")
	}
	if len(b) == 33 {
		p, err := ethcrypto.DecompressPubkey(b)
		if err != nil {
			return nil, err
		}
		b = ethcrypto.FromECDSAPub(p)
	}
	var pubKeyBytes [pubkeyBytesLen]byte
	copy(pubKeyBytes[:], b[:])
	return PubKeySecp256k1Eth(pubKeyBytes), nil
}

// Validate check signature
func (d Driver) Validate(msg, pub, sig []byte) error {
	return crypto.BasicValidation(d, msg, pub, sig)
}

// GenKey 生成私钥
func (d Driver) GenKey() (crypto.PrivKey, error) {
	privKeyBytes := [32]byte{}
	copy(privKeyBytes[:], crypto.CRandBytes(32))
	priv, _ := secp256k1.PrivKeyFromBytes(privKeyBytes[:])
	copy(privKeyBytes[:], priv.Serialize())
	return PrivKeySecp256k1Eth(privKeyBytes), nil
}

// Bytes 字节格式
func (privKey PrivKeySecp256k1Eth) Bytes() []byte {
	s := make([]byte, 32)
	copy(s, privKey[:])
	return s
}

// Sign 签名 The produced signature is in the [R || S || V] format where V is 0 or 1.
func (privKey PrivKeySecp256k1Eth) Sign(msg []byte) crypto.Signature {
	priv, err := ethcrypto.ToECDSA(privKey[:])
	if err != nil {
		return nil
	}
	sig, err := ethcrypto.Sign(common.Sha3(msg), priv)
	if err != nil {
		panic("Error Sign calculates an ECDSA signature." + err.Error())
	}
	return SignatureSecp256k1Eth(sig)
}

// PubKey 私钥生成公钥 非压缩 65 bytes 0x04+pub.X+pub.Y
func (privKey PrivKeySecp256k1Eth) PubKey() crypto.PubKey {
	priv, err := ethcrypto.ToECDSA(privKey[:])
	if nil != err {
		return nil
	}
	var pubSecp256k1 PubKeySecp256k1Eth
	copy(pubSecp256k1[:], ethcrypto.FromECDSAPub(&priv.PublicKey))
	return pubSecp256k1
}

// Equals 私钥是否相等
func (privKey PrivKeySecp256k1Eth) Equals(other crypto.PrivKey) bool {
	if otherSecp, ok := other.(PrivKeySecp256k1Eth); ok {
		return bytes.Equal(privKey[:], otherSecp[:])
	}
	return false
}

func (privKey PrivKeySecp256k1Eth) String() string {
	return "PrivKeySecp256k1Eth{*****}"
}

// SignatureSecp256k1Eth Signature
type SignatureSecp256k1Eth []byte

// Bytes 字节格式
func (sig SignatureSecp256k1Eth) Bytes() []byte {
	s := make([]byte, len(sig))
	copy(s, sig[:])
	return s
}

// IsZero 是否是0
func (sig SignatureSecp256k1Eth) IsZero() bool { return len(sig) == 0 }

func (sig SignatureSecp256k1Eth) String() string {
	return fmt.Sprintf("/%X.../", sig.Bytes())
}

// Equals 相等
func (sig SignatureSecp256k1Eth) Equals(other crypto.Signature) bool {
	if otherEd, ok := other.(SignatureSecp256k1Eth); ok {
		return bytes.Equal(sig[:], otherEd[:])
	}
	return false
}

// PubKeySecp256k1Eth uncompressed pubkey prefixed with 0x04
type PubKeySecp256k1Eth [65]byte

// Bytes 字节格式
func (pubKey PubKeySecp256k1Eth) Bytes() []byte {
	s := make([]byte, 65)
	copy(s, pubKey[:])
	return s
}

// VerifyBytes 验证字节, 恢复出的公钥需要和自身一致
func (pubKey PubKeySecp256k1Eth) VerifyBytes(msg []byte, sig crypto.Signature) bool {
	sigBytes := sig.Bytes()
	if len(sigBytes) != 65 {
		return false
	}
	recovered, err := ethcrypto.Ecrecover(common.Sha3(msg), sigBytes)
	if err != nil {
		return false
	}
	if !bytes.Equal(recovered, pubKey[:]) {
		return false
	}
	return ethcrypto.VerifySignature(pubKey[:], common.Sha3(msg), sigBytes[:64])
}

// KeyString 公钥的 hex 格式
func (pubKey PubKeySecp256k1Eth) KeyString() string {
	return common.ToHex(pubKey[:])
}

// Equals 公钥相等
func (pubKey PubKeySecp256k1Eth) Equals(other crypto.PubKey) bool {
	if otherSecp, ok := other.(PubKeySecp256k1Eth); ok {
		return bytes.Equal(pubKey[:], otherSecp[:])
	}
	return false
}
