// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - the intrusive tree header
//
// Embed one instance by value inside the record to be indexed.  All
// fields are maintained by Link, InsertColor and Erase; a node never
// owns its neighbours, it only takes part in the shared structural
// graph.
type Node struct {
	up     *Node // parent node, nil at the root
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	height int8  // cached sub-tree height, a leaf is 1
}

// Root - holds the single handle to a whole tree
//
// The zero value is an empty tree; there is no separate allocation.
type Root struct {
	node *Node
}

// Init - reset a node to the unlinked state
//
// A node must be in this state before it is passed to Link; Erase
// leaves the node in this state so it can be freed or reused.
func (node *Node) Init() {
	node.up = nil
	node.left = nil
	node.right = nil
	node.height = 1
}

// IsEmpty - true if the tree holds no nodes
func (root *Root) IsEmpty() bool {
	return nil == root.node
}

// Node - the current root node, nil for an empty tree
//
// This is the start point for the caller's comparison descent.
func (root *Root) Node() *Node {
	return root.node
}

// Left - left child of a node or nil
func (node *Node) Left() *Node {
	return node.left
}

// Right - right child of a node or nil
func (node *Node) Right() *Node {
	return node.right
}

// Parent - parent of a node, nil at the root
func (node *Node) Parent() *Node {
	return node.up
}

// Height - cached height of the sub-tree rooted at this node
func (node *Node) Height() int8 {
	return node.height
}

// internal: height of a possibly nil sub-tree
func height(node *Node) int8 {
	if nil == node {
		return 0
	}
	return node.height
}

// internal: recompute the cached height from the children
func (node *Node) updateHeight() {
	hl := height(node.left)
	hr := height(node.right)
	if hl > hr {
		node.height = hl + 1
	} else {
		node.height = hr + 1
	}
}
