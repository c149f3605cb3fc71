// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotation primitives
//
// each touches a constant number of links and recomputes the two
// affected heights, demoted node before promoted node since the
// promoted node's height depends on the new height below it

// internal: single right rotation, promotes y.left above y
func rotateRight(root *Root, y *Node) {
	x := y.left

	y.left = x.right
	if nil != x.right {
		x.right.up = y
	}

	x.up = y.up
	if nil == y.up {
		root.node = x
	} else if y == y.up.left {
		y.up.left = x
	} else {
		y.up.right = x
	}

	x.right = y
	y.up = x

	y.updateHeight()
	x.updateHeight()
}

// internal: single left rotation, promotes x.right above x
func rotateLeft(root *Root, x *Node) {
	y := x.right

	x.right = y.left
	if nil != y.left {
		y.left.up = x
	}

	y.up = x.up
	if nil == x.up {
		root.node = y
	} else if x == x.up.left {
		x.up.left = y
	} else {
		x.up.right = y
	}

	y.left = x
	x.up = y

	x.updateHeight()
	y.updateHeight()
}
