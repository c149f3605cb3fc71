// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Link - attach an unlinked node at an empty slot
//
// The caller has already descended the tree with its own comparator
// and resolved the attachment point: parent and which side.  A nil
// parent makes the node the new root of an empty tree.  No
// rebalancing happens here; call InsertColor afterwards.
func Link(node *Node, root *Root, parent *Node, left bool) {
	node.Init()
	node.up = parent
	if nil == parent {
		root.node = node
	} else if left {
		parent.left = node
	} else {
		parent.right = node
	}
}

// InsertColor - restore balance after Link
//
// The name parallels the red-black tree interface this package
// replaces.  The freshly linked node is a leaf and already balanced,
// only its ancestors can have grown, so the walk starts one level up.
func InsertColor(node *Node, root *Root) {
	rebalance(root, node.up)
}
