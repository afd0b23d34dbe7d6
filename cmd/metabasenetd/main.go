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

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/metabasenet/metabasenet/params"
)

const usageText = `metabasenetd [options]

快速启动：
  metabasenetd                              启动 SERVER 模式全节点
  metabasenetd --miner                      启动 MINER 模式节点
  metabasenetd --client                     启动 CLIENT 模式节点
  metabasenetd --purge                      清空数据目录后退出
  metabasenetd --datadir /data/metabasenet  指定数据目录

详细帮助：
  metabasenetd --help                       查看所有选项`

func main() {
	app := &cli.App{
		Name:                   "metabasenetd",
		Usage:                  "MetabaseNet 节点",
		UsageText:              usageText,
		Version:                params.VersionWithCommit(params.GitCommit, ""),
		Flags:                  AllFlags(),
		UseShortOptionHandling: true,
		Action:                 appRun,
		Copyright:              "Copyright 2022-2026 The N42 Authors",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if se, ok := err.(*sequencerError); ok {
			os.Exit(int(se.code))
		}
		os.Exit(int(exitConfigError))
	}
}
