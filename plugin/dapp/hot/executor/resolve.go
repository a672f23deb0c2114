// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math/big"

	hty "github.com/33cn/hot/plugin/dapp/hot/types"
)

//resolution 一轮开奖的结果
type resolution struct {
	outcome      int32
	pool         int64
	winningStake int64
	winners      []string
	payouts      []int64
}

//resolveOutcome 随机数按大端整数取模 2, 0 为正面 1 为反面
func resolveOutcome(word []byte) int32 {
	return int32(new(big.Int).SetBytes(word).Bit(0))
}

func sumStakes(entries []*hty.HotEntry) int64 {
	var sum int64
	for _, e := range entries {
		sum += e.Amount
	}
	return sum
}

func gamePool(game *hty.HotGame) int64 {
	return game.Rollover + sumStakes(game.Entries)
}

//weightedStakes 选择 outcome 的玩家以及各自的下注总额, 按第一次下注的顺序
func weightedStakes(entries []*hty.HotEntry, outcome int32) (addrs []string, stakes []int64) {
	pos := make(map[string]int)
	for _, e := range entries {
		if e.Outcome != outcome {
			continue
		}
		if i, ok := pos[e.Participant]; ok {
			stakes[i] += e.Amount
			continue
		}
		pos[e.Participant] = len(addrs)
		addrs = append(addrs, e.Participant)
		stakes = append(stakes, e.Amount)
	}
	return addrs, stakes
}

//mulDiv a * b / c, 中间结果用 big.Int
func mulDiv(a, b, c int64) int64 {
	if c == 0 {
		return 0
	}
	x := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	return x.Quo(x, big.NewInt(c)).Int64()
}

//resolve 计算输赢以及每个赢家的奖金, 除法的余数给第一个赢家
func resolve(entries []*hty.HotEntry, pool int64, word []byte) *resolution {
	res := &resolution{outcome: resolveOutcome(word), pool: pool}
	addrs, stakes := weightedStakes(entries, res.outcome)
	if len(addrs) == 0 {
		return res
	}
	for _, s := range stakes {
		res.winningStake += s
	}
	var paid int64
	res.winners = addrs
	res.payouts = make([]int64, len(addrs))
	for i, s := range stakes {
		res.payouts[i] = mulDiv(s, pool, res.winningStake)
		paid += res.payouts[i]
	}
	res.payouts[0] += pool - paid
	return res
}

//winnerShare 下注 amount 能够分到的奖金
func winnerShare(amount, pool, winningStake int64) int64 {
	return mulDiv(amount, pool, winningStake)
}
