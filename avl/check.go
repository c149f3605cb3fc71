// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Check - validate the structural invariants of a whole tree
//
// For every node: the parent back link matches the down link that
// reaches it, the cached height is one more than the taller child
// and the two sub-tree heights differ by at most one.  Returns the
// first violation found or nil when the tree is sound.  Intended for
// tests and diagnostics; a correct caller never needs it.
func Check(root *Root) error {
	return check(root.node, nil)
}

// internal: consistency checker
func check(p *Node, up *Node) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return ErrBadParentLink
	}
	hl := height(p.left)
	hr := height(p.right)
	h := hl
	if hr > h {
		h = hr
	}
	if p.height != h+1 {
		return ErrBadHeightCache
	}
	if d := hl - hr; d < -1 || d > 1 {
		return ErrUnbalancedNode
	}
	if err := check(p.left, p); nil != err {
		return err
	}
	return check(p.right, p)
}
