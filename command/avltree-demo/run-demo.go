// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"unsafe"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

// demo record embedding the intrusive header
type demoNode struct {
	key  int
	node avl.Node
}

// map an embedded header back to its record
func demoKey(n *avl.Node) int {
	p := (*demoNode)(unsafe.Pointer(uintptr(unsafe.Pointer(n)) - unsafe.Offsetof(demoNode{}.node)))
	return p.key
}

// comparison descent then link, equal keys go right
func demoInsert(root *avl.Root, record *demoNode) {
	var parent *avl.Node
	left := false
	for n := root.Node(); nil != n; {
		parent = n
		if record.key < demoKey(n) {
			left = true
			n = n.Left()
		} else {
			left = false
			n = n.Right()
		}
	}
	avl.Link(&record.node, root, parent, left)
	avl.InsertColor(&record.node, root)
}

// comparison descent to a linked node
func demoFind(root *avl.Root, key int) *avl.Node {
	n := root.Node()
	for nil != n {
		k := demoKey(n)
		if key == k {
			return n
		}
		if key < k {
			n = n.Left()
		} else {
			n = n.Right()
		}
	}
	return nil
}

func printInorder(prefix string, root *avl.Root) {
	fmt.Printf("%s:", prefix)
	for n := avl.First(root); nil != n; n = n.Next() {
		fmt.Printf(" %d", demoKey(n))
	}
	fmt.Printf("\n")
}

func dumpTree(root *avl.Root) {
	avl.Fprint(os.Stdout, root, func(n *avl.Node) string {
		return strconv.Itoa(demoKey(n))
	})
}

// the canned scenario: insert nine keys, erase three through the
// two-children path, drain the remainder
func runDemo(c *cli.Context) error {

	log := setupLogger(c.GlobalBool("verbose"))
	defer logger.Finalise()
	showTree := c.GlobalBool("tree")

	root := &avl.Root{}

	insertKeys := []int{50, 20, 70, 10, 30, 60, 80, 25, 35}
	for _, k := range insertKeys {
		log.Debugf("insert: %d", k)
		demoInsert(root, &demoNode{key: k})
		checkOrExit(root)
	}
	printInorder("in-order after inserts", root)
	if showTree {
		dumpTree(root)
	}

	eraseKeys := []int{20, 70, 25}
	for _, k := range eraseKeys {
		log.Debugf("erase: %d", k)
		n := demoFind(root, k)
		if nil == n {
			exitwithstatus.Message("Error: key: %d is not linked", k)
		}
		avl.Erase(n, root)
		checkOrExit(root)
	}
	printInorder("in-order after erases", root)
	if showTree {
		dumpTree(root)
	}

	// drain through First + Erase
	count := 0
	for n := avl.First(root); nil != n; n = avl.First(root) {
		avl.Erase(n, root)
		checkOrExit(root)
		count += 1
	}
	if !root.IsEmpty() {
		exitwithstatus.Message("Error: tree not empty after drain")
	}
	fmt.Printf("drained: %d nodes\n", count)

	return nil
}

func checkOrExit(root *avl.Root) {
	if err := avl.Check(root); nil != err {
		exitwithstatus.Message("Error: inconsistent tree: %s", err)
	}
}
