// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/wordindex"
)

// build a sorted word count index from the arguments or stdin
func runIndex(c *cli.Context) error {

	log := setupLogger(c.GlobalBool("verbose"))
	defer logger.Finalise()

	index := wordindex.New()

	if 0 == c.NArg() {
		scanWords(index, os.Stdin)
	} else {
		for _, name := range c.Args() {
			f, err := os.Open(name)
			if nil != err {
				exitwithstatus.Message("Error: cannot open: %q: %s", name, err)
			}
			scanWords(index, f)
			f.Close()
		}
	}
	log.Debugf("indexed: %d distinct words  %d total", index.Words(), index.Total())

	if err := index.CheckConsistency(); nil != err {
		exitwithstatus.Message("Error: inconsistent index: %s", err)
	}

	index.Range(func(word string, count uint64) bool {
		fmt.Printf("%8d  %s\n", count, word)
		return true
	})

	if c.GlobalBool("tree") {
		index.Dump(os.Stdout)
	}

	return nil
}

func scanWords(index *wordindex.Index, r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		index.Add(scanner.Text())
	}
	if err := scanner.Err(); nil != err {
		exitwithstatus.Message("Error: read failed: %s", err)
	}
}
