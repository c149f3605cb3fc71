// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Erase - unlink a node from the tree
//
// The node must currently be linked under this root.  Only structure
// moves: when the node has two children its in-order successor is
// physically transplanted into the vacated slot, record and all, so
// no caller-owned key or payload data is copied.  On return the node
// is back in the unlinked state and may be freed or reused.
func Erase(node *Node, root *Root) {
	if nil != node.left && nil != node.right {
		eraseTwoChildren(node, root)
	} else {
		parent := node.up
		splice(node, root)
		rebalance(root, parent)
	}
	node.Init()
}

// internal: reconnect node's parent directly to node's sole child
//
// the child may be nil; node itself is left dangling for the caller
// to reset
func splice(node *Node, root *Root) {
	child := node.left
	if nil == child {
		child = node.right
	}
	if nil != child {
		child.up = node.up
	}
	if nil == node.up {
		root.node = child
	} else if node == node.up.left {
		node.up.left = child
	} else {
		node.up.right = child
	}
}

// internal: erase a node that has both children
//
// the in-order successor, the minimum of the right sub-tree, has no
// left child by construction.  It is detached from its own location
// first and only then transplanted into node's slot.  The rebalance
// walk starts at the successor's original parent, not at node's
// parent: that is where the structure actually changed.  The two
// coincide only when the successor is node's direct right child, in
// which case it keeps its own right sub-tree and simply assumes
// node's position, so the walk starts at the successor itself.
func eraseTwoChildren(node *Node, root *Root) {
	succ := node.right.first()
	start := succ.up

	if succ == node.right {
		start = succ
	} else {
		// splice succ out of its own location; it is always the
		// left child of its parent here
		if nil != succ.right {
			succ.right.up = succ.up
		}
		succ.up.left = succ.right

		// take over node's right sub-tree
		succ.right = node.right
		node.right.up = succ
	}

	// take over node's left sub-tree and slot
	succ.left = node.left
	node.left.up = succ
	succ.up = node.up
	if nil == node.up {
		root.node = succ
	} else if node == node.up.left {
		node.up.left = succ
	} else {
		node.up.right = succ
	}

	rebalance(root, start)
}
