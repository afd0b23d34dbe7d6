// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package main

import "github.com/urfave/cli/v2"

// DefaultDataDir and DefaultHTTPAddr are MetabaseNet's own defaults,
// generalized from N42's cmd/n42 constant block.
const (
	DefaultDataDir  = "./metabasenetdata"
	DefaultHTTPAddr = "127.0.0.1:8645"
)

var (
	dataDirFlag = &cli.StringFlag{
		Name:    "datadir",
		Aliases: []string{"data.dir"},
		Usage:   "节点数据目录",
		Value:   DefaultDataDir,
	}
	purgeFlag = &cli.BoolFlag{
		Name:  "purge",
		Usage: "以 PURGE 模式运行：清空数据目录后退出",
	}
	testnetFlag = &cli.BoolFlag{
		Name:  "testnet",
		Usage: "使用测试网默认配置",
	}
	daemonFlag = &cli.BoolFlag{
		Name:  "daemon",
		Usage: "接受此选项但不改变进程的运行方式（不会转入后台）",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "启用 debug 级别日志",
	}
	minerFlag = &cli.BoolFlag{
		Name:  "miner",
		Usage: "以 MINER 模式运行",
	}
	clientFlag = &cli.BoolFlag{
		Name:  "client",
		Usage: "以 CLIENT 模式运行",
	}
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML 配置文件路径",
	}
	httpAddrFlag = &cli.StringFlag{
		Name:  "http.addr",
		Usage: "HTTPSERVER 监听地址",
		Value: DefaultHTTPAddr,
	}
	jwtSecretFlag = &cli.StringFlag{
		Name:  "rpc.jwtsecret",
		Usage: "RPCMODE 鉴权共享密钥 (十六进制)",
	}
)

// AllFlags returns the full flag set, the shape cmd/n42's AllFlags
// aggregates its category slices into.
func AllFlags() []cli.Flag {
	return []cli.Flag{
		dataDirFlag,
		purgeFlag,
		testnetFlag,
		daemonFlag,
		debugFlag,
		minerFlag,
		clientFlag,
		configFlag,
		httpAddrFlag,
		jwtSecretFlag,
	}
}
