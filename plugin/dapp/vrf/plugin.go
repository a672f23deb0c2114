// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vrf vrf coordinator 插件
package vrf

import (
	"github.com/33cn/hot/plugin/dapp/vrf/commands"
	"github.com/33cn/hot/plugin/dapp/vrf/executor"
	_ "github.com/33cn/hot/plugin/dapp/vrf/types" //register vrf type
	"github.com/33cn/hot/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     "vrf",
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.VrfCmd,
	})
}
