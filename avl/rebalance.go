// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: walk from n up to the root restoring the AVL condition
//
// at each step the cached height is recomputed and a node whose
// sub-tree heights differ by more than one is rotated back into
// range; a left-right or right-left shape needs the extra rotation
// on the child first
//
// this single walk serves both insert and erase, only the starting
// node differs
func rebalance(root *Root, n *Node) {
	for nil != n {
		n.updateHeight()
		balance := height(n.left) - height(n.right)
		if balance > 1 {
			// left heavy
			if height(n.left.left) < height(n.left.right) {
				rotateLeft(root, n.left)
			}
			rotateRight(root, n)
		} else if balance < -1 {
			// right heavy
			if height(n.right.right) < height(n.right.left) {
				rotateRight(root, n.right)
			}
			rotateLeft(root, n)
		}
		// after a rotation n.up is the node just promoted over n
		n = n.up
	}
}
