// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/hot/common/address"
	dbm "github.com/33cn/hot/common/db"
	hty "github.com/33cn/hot/plugin/dapp/hot/types"
	"github.com/33cn/hot/types"
	"github.com/pkg/errors"
)

func (h *Hot) game(gameID string) (*hty.HotGame, error) {
	return getGame(h.GetStateDB(), gameID)
}

//Query_GetGameInfo 游戏的全部状态
func (h *Hot) Query_GetGameInfo(in *hty.ReqHotGame) (types.Message, error) {
	return h.game(in.GameId)
}

//Query_GetHotState 0 open, 1 drawing
func (h *Hot) Query_GetHotState(in *hty.ReqHotGame) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: int64(game.State)}, nil
}

//Query_GetEntranceFee 最小下注
func (h *Hot) Query_GetEntranceFee(in *hty.ReqHotGame) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: game.EntranceFee}, nil
}

//Query_GetInterval 开奖间隔(秒)
func (h *Hot) Query_GetInterval(in *hty.ReqHotGame) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: game.Interval}, nil
}

//Query_GetLatestTimeStamp 本轮开放的时间
func (h *Hot) Query_GetLatestTimeStamp(in *hty.ReqHotGame) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: game.LastTimeStamp}, nil
}

//Query_GetNumberOfPlayers 本轮的下注次数
func (h *Hot) Query_GetNumberOfPlayers(in *hty.ReqHotGame) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: int64(len(game.Entries))}, nil
}

func playerReply(e *hty.HotEntry) *hty.ReplyHotPlayer {
	return &hty.ReplyHotPlayer{Participant: e.Participant, Outcome: e.Outcome, Amount: e.Amount}
}

//Query_GetPlayer 第 index 次下注
func (h *Hot) Query_GetPlayer(in *hty.ReqHotIndex) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	if in.Index < 0 || in.Index >= int64(len(game.Entries)) {
		return nil, errors.Wrapf(hty.ErrHotParam, "index %d players %d", in.Index, len(game.Entries))
	}
	return playerReply(game.Entries[in.Index]), nil
}

//nthEntry 选择 outcome 的第 index 次下注
func nthEntry(game *hty.HotGame, outcome int32, index int64) (*hty.HotEntry, error) {
	if index >= 0 {
		var i int64
		for _, e := range game.Entries {
			if e.Outcome != outcome {
				continue
			}
			if i == index {
				return e, nil
			}
			i++
		}
	}
	return nil, errors.Wrapf(hty.ErrHotParam, "no %s entry at %d", hty.OutcomeName(outcome), index)
}

//Query_GetHeader 第 index 个选择正面的下注
func (h *Hot) Query_GetHeader(in *hty.ReqHotIndex) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	e, err := nthEntry(game, hty.HotHeads, in.Index)
	if err != nil {
		return nil, err
	}
	return playerReply(e), nil
}

//Query_GetTailer 第 index 个选择反面的下注
func (h *Hot) Query_GetTailer(in *hty.ReqHotIndex) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	e, err := nthEntry(game, hty.HotTails, in.Index)
	if err != nil {
		return nil, err
	}
	return playerReply(e), nil
}

//Query_GetRecentWinner 上一轮的赢家, 没有人赢时为空
func (h *Hot) Query_GetRecentWinner(in *hty.ReqHotGame) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	return &types.ReplyString{Data: game.RecentWinner}, nil
}

//Query_GetRecentFlip 上一轮的结果和随机数
func (h *Hot) Query_GetRecentFlip(in *hty.ReqHotGame) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	return &hty.ReplyHotRecentFlip{
		HasResult:  game.HasResult,
		Outcome:    game.RecentOutcome,
		RandomWord: game.RecentRandomWord,
	}, nil
}

//Query_GetWinnerShare 当前这一轮再下注 amount 选择 outcome, 赢了以后的奖金
//amount 为 0 时查询上一轮一个 entranceFee 的奖金
func (h *Hot) Query_GetWinnerShare(in *hty.ReqHotWinnerShare) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	if in.Amount == 0 {
		return &types.Int64{Data: game.RecentWinnerShare}, nil
	}
	if !types.CheckAmount(in.Amount) {
		return nil, errors.Wrapf(hty.ErrHotParam, "amount %d", in.Amount)
	}
	if in.Outcome != hty.HotHeads && in.Outcome != hty.HotTails {
		return nil, errors.Wrapf(hty.ErrHotOutcome, "outcome %d", in.Outcome)
	}
	_, stakes := weightedStakes(game.Entries, in.Outcome)
	stake := in.Amount
	for _, s := range stakes {
		stake += s
	}
	return &types.Int64{Data: winnerShare(in.Amount, gamePool(game)+in.Amount, stake)}, nil
}

//Query_CheckUpkeep 和 PerformUpkeep 使用同样的判断, 时间为下一个区块的时间
func (h *Hot) Query_CheckUpkeep(in *hty.ReqHotGame) (types.Message, error) {
	game, err := h.game(in.GameId)
	if err != nil {
		return nil, err
	}
	balance := h.GetCoinsAccount().LoadAccount(game.Address).GetBalance()
	_, reply := checkUpkeep(game, balance, h.GetBlockTime())
	return reply, nil
}

//Query_GetRoundHistory 开奖历史, round 为游标
func (h *Hot) Query_GetRoundHistory(in *hty.ReqHotRoundHistory) (types.Message, error) {
	if in.GameId == "" {
		return nil, errors.Wrap(hty.ErrHotParam, "gameId")
	}
	count := in.Count
	if count <= 0 {
		count = hty.DefaultRoundCount
	}
	if count > hty.MaxRoundCount {
		count = hty.MaxRoundCount
	}
	var key []byte
	if in.Round > 0 {
		key = calcRoundKey(in.GameId, in.Round)
	}
	direction := dbm.ListDESC
	if in.Direction != 0 {
		direction = dbm.ListASC
	}
	reply := &hty.ReplyHotRounds{}
	values, err := h.GetLocalDB().List(calcRoundPrefix(in.GameId), key, count, direction)
	if err == types.ErrNotFound {
		return reply, nil
	}
	if err != nil {
		return nil, err
	}
	for _, value := range values {
		var r hty.ReceiptHotResult
		if err := types.Decode(value, &r); err != nil {
			return nil, err
		}
		reply.Rounds = append(reply.Rounds, &r)
	}
	return reply, nil
}

//Query_GetGamesByCreator 地址创建的游戏
func (h *Hot) Query_GetGamesByCreator(in *types.ReqAddr) (types.Message, error) {
	if err := address.CheckAddress(in.Addr); err != nil {
		return nil, err
	}
	reply := &hty.ReplyHotGameIds{}
	values, err := h.GetLocalDB().List(calcCreatorPrefix(address.FormatAddr(in.Addr)), nil, 0, dbm.ListASC)
	if err == types.ErrNotFound {
		return reply, nil
	}
	if err != nil {
		return nil, err
	}
	for _, value := range values {
		var id types.ReqString
		if err := types.Decode(value, &id); err != nil {
			return nil, err
		}
		reply.GameIds = append(reply.GameIds, id.Data)
	}
	return reply, nil
}
