// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	atRoot branch = iota
	atLeft
	atRight
)

// Fprint - write an ASCII graphic representation of the tree to w
//
// The tree stores no keys so the caller supplies the per-node label;
// the cached height is appended to each line.  Returns the maximum
// depth of the tree.
func Fprint(w io.Writer, root *Root, label func(*Node) string) int {
	return printTree(w, root.node, "", atRoot, label)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch, label func(*Node) string) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if atLeft == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, atRight, label)
	}
	switch br {
	case atRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case atLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case atRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%s ^%d\n", label(tree), tree.height)
	if nil != tree.left {
		t := "       "
		if atRight == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, atLeft, label)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
