// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package p256 implements a verifiable random function using curve p256.
package p256

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"math/big"

	vrfp "github.com/33cn/hot/common/vrf"
)

var (
	curve  = elliptic.P256()
	params = curve.Params()
	// ErrInvalidVRF err
	ErrInvalidVRF = errors.New("invalid VRF proof")
	// ErrInvalidKey err
	ErrInvalidKey = errors.New("invalid VRF key")
)

// ProofLen s(32) + t(32) + uncompressed vrf point(65)
const ProofLen = 64 + 65

// PublicKey holds a public VRF key.
type PublicKey struct {
	*ecdsa.PublicKey
}

// PrivateKey holds a private VRF key.
type PrivateKey struct {
	*ecdsa.PrivateKey
}

// GenerateKey generates a fresh keypair for this VRF
func GenerateKey() (vrfp.PrivateKey, vrfp.PublicKey) {
	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		return nil, nil
	}
	return &PrivateKey{PrivateKey: key}, &PublicKey{PublicKey: &key.PublicKey}
}

// NewVrfPrivateKey 由 32 字节的标量恢复私钥
func NewVrfPrivateKey(d []byte) (*PrivateKey, error) {
	k := new(big.Int).SetBytes(d)
	if len(d) != 32 || k.Sign() == 0 || k.Cmp(params.N) >= 0 {
		return nil, ErrInvalidKey
	}
	priv := new(ecdsa.PrivateKey)
	priv.PublicKey.Curve = curve
	priv.D = k
	priv.PublicKey.X, priv.PublicKey.Y = curve.ScalarBaseMult(d)
	return &PrivateKey{PrivateKey: priv}, nil
}

// Bytes 私钥标量, 左补零到 32 字节
func (k PrivateKey) Bytes() []byte {
	return k.D.FillBytes(make([]byte, 32))
}

// PublicBytes 压缩格式的公钥
func (k PrivateKey) PublicBytes() []byte {
	return elliptic.MarshalCompressed(curve, k.X, k.Y)
}

// ParseVrfPubKey 解析压缩或者非压缩格式的公钥
func ParseVrfPubKey(pubKey []byte) (*PublicKey, error) {
	var x, y *big.Int
	if len(pubKey) == 33 {
		x, y = elliptic.UnmarshalCompressed(curve, pubKey)
	} else {
		x, y = elliptic.Unmarshal(curve, pubKey)
	}
	if x == nil {
		return nil, ErrInvalidKey
	}
	return &PublicKey{PublicKey: &ecdsa.PublicKey{Curve: curve, X: x, Y: y}}, nil
}

// H1 hashes m to a curve point
func H1(m []byte) (x, y *big.Int) {
	h := sha512.New()
	var i uint32
	byteLen := (params.BitSize + 7) >> 3
	for x == nil && i < 100 {
		h.Reset()
		if err := binary.Write(h, binary.BigEndian, i); err != nil {
			panic(err)
		}
		if _, err := h.Write(m); err != nil {
			panic(err)
		}
		r := []byte{2} // Set point encoding to "compressed", y=0.
		r = h.Sum(r)
		x, y = elliptic.UnmarshalCompressed(curve, r[:byteLen+1])
		i++
	}
	return
}

var one = big.NewInt(1)

// H2 hashes to an integer [1,N-1]
func H2(m []byte) *big.Int {
	// NIST SP 800-90A § A.5.1: Simple discard method.
	byteLen := (params.BitSize + 7) >> 3
	h := sha512.New()
	for i := uint32(0); ; i++ {
		h.Reset()
		if err := binary.Write(h, binary.BigEndian, i); err != nil {
			panic(err)
		}
		if _, err := h.Write(m); err != nil {
			panic(err)
		}
		b := h.Sum(nil)
		k := new(big.Int).SetBytes(b[:byteLen])
		if k.Cmp(new(big.Int).Sub(params.N, one)) == -1 {
			return k.Add(k, one)
		}
	}
}

// challenge = H2(G, H, [k]G, VRF, [r]G, [r]H)
func challenge(hx, hy, pkx, pky *big.Int, vrf []byte, rgx, rgy, rhx, rhy *big.Int) *big.Int {
	var b bytes.Buffer
	b.Write(elliptic.Marshal(curve, params.Gx, params.Gy))
	b.Write(elliptic.Marshal(curve, hx, hy))
	b.Write(elliptic.Marshal(curve, pkx, pky))
	b.Write(vrf)
	b.Write(elliptic.Marshal(curve, rgx, rgy))
	b.Write(elliptic.Marshal(curve, rhx, rhy))
	return H2(b.Bytes())
}

// Evaluate returns the verifiable unpredictable function evaluated at m
func (k PrivateKey) Evaluate(m []byte) (index [32]byte, proof []byte) {
	nilIndex := [32]byte{}
	// Prover chooses r <-- [1,N-1]
	r, _, _, err := elliptic.GenerateKey(curve, rand.Reader)
	if err != nil {
		return nilIndex, nil
	}
	ri := new(big.Int).SetBytes(r)

	// H = H1(m)
	Hx, Hy := H1(m)

	// VRF_k(m) = [k]H
	sHx, sHy := params.ScalarMult(Hx, Hy, k.D.Bytes())
	vrf := elliptic.Marshal(curve, sHx, sHy) // 65 bytes.

	rGx, rGy := params.ScalarBaseMult(r)
	rHx, rHy := params.ScalarMult(Hx, Hy, r)
	s := challenge(Hx, Hy, k.PublicKey.X, k.PublicKey.Y, vrf, rGx, rGy, rHx, rHy)

	// t = r−s*k mod N
	t := new(big.Int).Sub(ri, new(big.Int).Mul(s, k.D))
	t.Mod(t, params.N)

	// Index = H(vrf)
	index = sha256.Sum256(vrf)

	buf := make([]byte, 0, ProofLen)
	buf = append(buf, s.FillBytes(make([]byte, 32))...)
	buf = append(buf, t.FillBytes(make([]byte, 32))...)
	buf = append(buf, vrf...)
	return index, buf
}

// ProofToHash asserts that proof is correct for m and outputs index.
func (pk *PublicKey) ProofToHash(m, proof []byte) (index [32]byte, err error) {
	nilIndex := [32]byte{}
	// verifier checks that s == H2(m, [t]G + [s]([k]G), [t]H1(m) + [s]VRF_k(m))
	if len(proof) != ProofLen {
		return nilIndex, ErrInvalidVRF
	}

	// Parse proof into s, t, and vrf.
	s := proof[0:32]
	t := proof[32:64]
	vrf := proof[64:ProofLen]

	uHx, uHy := elliptic.Unmarshal(curve, vrf)
	if uHx == nil {
		return nilIndex, ErrInvalidVRF
	}

	// [t]G + [s]([k]G) = [t+ks]G
	tGx, tGy := params.ScalarBaseMult(t)
	ksGx, ksGy := params.ScalarMult(pk.X, pk.Y, s)
	tksGx, tksGy := params.Add(tGx, tGy, ksGx, ksGy)

	// [t]H + [s]VRF = [t+ks]H
	Hx, Hy := H1(m)
	tHx, tHy := params.ScalarMult(Hx, Hy, t)
	sHx, sHy := params.ScalarMult(uHx, uHy, s)
	tksHx, tksHy := params.Add(tHx, tHy, sHx, sHy)

	h2 := challenge(Hx, Hy, pk.X, pk.Y, vrf, tksGx, tksGy, tksHx, tksHy)
	if !hmac.Equal(s, h2.FillBytes(make([]byte, 32))) {
		return nilIndex, ErrInvalidVRF
	}
	return sha256.Sum256(vrf), nil
}

// Public returns the corresponding public key.
func (k PrivateKey) Public() crypto.PublicKey {
	return &PublicKey{PublicKey: &k.PublicKey}
}
