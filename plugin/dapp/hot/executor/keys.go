// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import "fmt"

func calcGameKey(gameID string) []byte {
	return []byte("mavl-hot-game-" + gameID)
}

//资金地址 -> 游戏 id
func calcGameAddrKey(addr string) []byte {
	return []byte("mavl-hot-addr-" + addr)
}

func calcRoundKey(gameID string, round int64) []byte {
	return []byte(fmt.Sprintf("LODB-hot-round:%s:%018d", gameID, round))
}

func calcRoundPrefix(gameID string) []byte {
	return []byte(fmt.Sprintf("LODB-hot-round:%s:", gameID))
}

func calcCreatorKey(creator, gameID string) []byte {
	return []byte(fmt.Sprintf("LODB-hot-creator:%s:%s", creator, gameID))
}

func calcCreatorPrefix(creator string) []byte {
	return []byte(fmt.Sprintf("LODB-hot-creator:%s:", creator))
}
