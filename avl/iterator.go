// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - the node in the lowest position, nil for an empty tree
func First(root *Root) *Node {
	return root.node.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if nil == tree {
		return nil
	}
	for nil != tree.left {
		tree = tree.left
	}
	return tree
}

// Next - given a node, return the node in the next position or nil
// if no more nodes
//
// A node with a right sub-tree succeeds to that sub-tree's minimum;
// otherwise climb while still a right child and stop at the first
// ancestor entered from the left.  The tree must not be modified
// between traversal steps.
func (node *Node) Next() *Node {
	if nil != node.right {
		return node.right.first()
	}
	for nil != node.up && node == node.up.right {
		node = node.up
	}
	return node.up
}
