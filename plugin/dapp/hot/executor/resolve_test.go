// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math/big"
	"testing"

	hty "github.com/33cn/hot/plugin/dapp/hot/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(n int64) []byte {
	return big.NewInt(n).Bytes()
}

func entry(addr string, outcome int32, amount int64) *hty.HotEntry {
	return &hty.HotEntry{Participant: addr, Outcome: outcome, Amount: amount}
}

func TestResolveOutcome(t *testing.T) {
	assert.Equal(t, int32(hty.HotHeads), resolveOutcome(word(4)))
	assert.Equal(t, int32(hty.HotTails), resolveOutcome(word(3)))
	assert.Equal(t, int32(hty.HotHeads), resolveOutcome(nil))
	//只看最低位
	w := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe}
	assert.Equal(t, int32(hty.HotHeads), resolveOutcome(w))
	w[len(w)-1] = 0x01
	assert.Equal(t, int32(hty.HotTails), resolveOutcome(w))
}

func TestWeightedStakes(t *testing.T) {
	entries := []*hty.HotEntry{
		entry("a", hty.HotHeads, 100),
		entry("b", hty.HotTails, 100),
		entry("c", hty.HotHeads, 300),
		entry("a", hty.HotHeads, 50),
	}
	addrs, stakes := weightedStakes(entries, hty.HotHeads)
	assert.Equal(t, []string{"a", "c"}, addrs)
	assert.Equal(t, []int64{150, 300}, stakes)
	addrs, stakes = weightedStakes(entries, hty.HotTails)
	assert.Equal(t, []string{"b"}, addrs)
	assert.Equal(t, []int64{100}, stakes)
	assert.Equal(t, int64(550), sumStakes(entries))
}

func TestResolve(t *testing.T) {
	entries := []*hty.HotEntry{
		entry("a", hty.HotHeads, 100),
		entry("b", hty.HotTails, 100),
		entry("c", hty.HotTails, 100),
	}
	res := resolve(entries, 300, word(3))
	assert.Equal(t, int32(hty.HotTails), res.outcome)
	assert.Equal(t, []string{"b", "c"}, res.winners)
	assert.Equal(t, []int64{150, 150}, res.payouts)
	assert.Equal(t, int64(200), res.winningStake)

	res = resolve(entries[:1], 100, word(4))
	assert.Equal(t, []string{"a"}, res.winners)
	assert.Equal(t, []int64{100}, res.payouts)
}

func TestResolveDust(t *testing.T) {
	entries := []*hty.HotEntry{
		entry("a", hty.HotHeads, 100),
		entry("b", hty.HotHeads, 100),
		entry("c", hty.HotHeads, 100),
		entry("d", hty.HotTails, 101),
	}
	res := resolve(entries, 401, word(2))
	require.Len(t, res.payouts, 3)
	assert.Equal(t, []int64{135, 133, 133}, res.payouts)
	var paid int64
	for _, p := range res.payouts {
		paid += p
	}
	assert.Equal(t, int64(401), paid)
}

func TestResolveNoWinner(t *testing.T) {
	entries := []*hty.HotEntry{
		entry("a", hty.HotHeads, 100),
		entry("b", hty.HotHeads, 200),
	}
	res := resolve(entries, 300, word(1))
	assert.Equal(t, int32(hty.HotTails), res.outcome)
	assert.Empty(t, res.winners)
	assert.Empty(t, res.payouts)
	assert.Equal(t, int64(300), res.pool)
}

func TestMulDiv(t *testing.T) {
	//a * b 超过 int64
	assert.Equal(t, int64(4e16), mulDiv(4e16, 9e16, 9e16))
	assert.Equal(t, int64(0), mulDiv(1, 2, 0))
	assert.Equal(t, int64(133), winnerShare(100, 400, 300))
}

func TestCheckUpkeep(t *testing.T) {
	game := &hty.HotGame{GameId: "g", Interval: 30, LastTimeStamp: 1000, State: hty.HotStateOpen}
	ok, reply := checkUpkeep(game, 0, 1030)
	assert.False(t, ok)
	assert.True(t, reply.TimePassed)
	assert.False(t, reply.HasPlayers)

	game.Entries = []*hty.HotEntry{entry("a", hty.HotHeads, 100)}
	ok, _ = checkUpkeep(game, 100, 1029)
	assert.False(t, ok)
	ok, reply = checkUpkeep(game, 100, 1030)
	assert.True(t, ok)
	assert.True(t, reply.UpkeepNeeded)
	assert.Equal(t, []byte("g"), reply.PerformData)

	ok, reply = checkUpkeep(game, 0, 1030)
	assert.False(t, ok)
	assert.False(t, reply.HasBalance)

	game.State = hty.HotStateDrawing
	ok, reply = checkUpkeep(game, 100, 2000)
	assert.False(t, ok)
	assert.False(t, reply.IsOpen)
}

func TestExternalRequestID(t *testing.T) {
	id1 := externalRequestID("g", 1)
	id2 := externalRequestID("g", 2)
	assert.True(t, id1 > 0)
	assert.True(t, id2 > 0)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, id1, externalRequestID("g", 1))
}
