// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package p256

import (
	"testing"

	"github.com/33cn/hot/common/vrf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GenerateKey(t *testing.T) {
	k, pk := GenerateKey()
	testVRF(t, k, pk)
}

func Test_KeyBytes(t *testing.T) {
	k, _ := GenerateKey()
	priv := k.(*PrivateKey)

	restored, err := NewVrfPrivateKey(priv.Bytes())
	require.NoError(t, err)
	pub, err := ParseVrfPubKey(restored.PublicBytes())
	require.NoError(t, err)
	testVRF(t, restored, pub)

	// 公钥和 Public() 一致
	assert.Equal(t, pub.X, restored.Public().(*PublicKey).X)

	_, err = NewVrfPrivateKey(make([]byte, 32))
	assert.Equal(t, ErrInvalidKey, err)
	_, err = ParseVrfPubKey([]byte{2, 1})
	assert.Equal(t, ErrInvalidKey, err)
}

func testVRF(t *testing.T, priv vrf.PrivateKey, pub vrf.PublicKey) {
	m1 := []byte("data1")
	m2 := []byte("data2")
	m3 := []byte("data2")
	hash1, proof1 := priv.Evaluate(m1)
	hash2, proof2 := priv.Evaluate(m2)
	hash3, proof3 := priv.Evaluate(m3)
	for _, tc := range []struct {
		m     []byte
		hash  [32]byte
		proof []byte
		err   error
	}{
		{m1, hash1, proof1, nil},
		{m2, hash2, proof2, nil},
		{m3, hash3, proof3, nil},
		{m3, hash3, proof2, nil},
		{m3, hash3, proof1, ErrInvalidVRF},
		{m3, hash3, proof1[:10], ErrInvalidVRF},
	} {
		hash, err := pub.ProofToHash(tc.m, tc.proof)
		if got, want := err, tc.err; got != want {
			t.Errorf("ProofToHash(%s, %x): %v, want %v", tc.m, tc.proof, got, want)
		}
		if err != nil {
			continue
		}
		if got, want := hash, tc.hash; got != want {
			t.Errorf("ProofToHash(%s, %x): %x, want %x", tc.m, tc.proof, got, want)
		}
	}
}
