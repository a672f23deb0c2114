// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 执行器插件的注册, 统一初始化执行器和命令行
package pluginmgr

import (
	"github.com/33cn/hot/types"
	"github.com/spf13/cobra"
)

//Plugin 插件
type Plugin interface {
	// 获取整个插件的包名，用以计算唯一值、做前缀等
	GetName() string
	// 获取插件中执行器名
	GetExecutorName() string
	// 初始化执行器时会调用该接口
	InitExec(cfg *types.Config)
	AddCmd(rootCmd *cobra.Command)
}

//PluginBase 插件的基础实现
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string, cfg *types.Config)
	Cmd      func() *cobra.Command
}

//GetName 插件名
func (p *PluginBase) GetName() string {
	return p.Name
}

//GetExecutorName 执行器名
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

//InitExec 注册执行器
func (p *PluginBase) InitExec(cfg *types.Config) {
	p.Exec(p.ExecName, cfg)
}

//AddCmd 添加命令行
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}
