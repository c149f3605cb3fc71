// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avltree-demo"
	app.Usage = "exercise the intrusive AVL tree library"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log each tree operation",
		},
		cli.BoolFlag{
			Name:  "tree, t",
			Usage: " dump an ASCII graphic of the tree",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "demo",
			Usage:     "run the canned insert/erase scenario",
			ArgsUsage: "\n   (no arguments)",
			Flags:     []cli.Flag{},
			Action:    runDemo,
		},
		{
			Name:      "index",
			Usage:     "build a sorted word count index from files or stdin",
			ArgsUsage: "[FILE...]",
			Flags:     []cli.Flag{},
			Action:    runIndex,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("Error: %s", err)
	}
}

// set up the logging system, console output only when verbose
func setupLogger(verbose bool) *logger.L {
	level := "error"
	if verbose {
		level = "debug"
	}
	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "avltree-demo.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("Error: logger setup failed: %s", err)
	}
	return logger.New("demo")
}
