// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hot 猜正反的奖池游戏插件
package hot

import (
	"github.com/33cn/hot/plugin/dapp/hot/commands"
	"github.com/33cn/hot/plugin/dapp/hot/executor"
	_ "github.com/33cn/hot/plugin/dapp/hot/types" //register hot type
	"github.com/33cn/hot/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "hot",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.HotCmd,
	})
}
