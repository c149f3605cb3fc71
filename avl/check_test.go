// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// hand-built trees to prove the checker reports each defect class
// with its own comparable instance

func threeNodes() (*Root, *Node, *Node, *Node) {
	a := &Node{height: 1}
	b := &Node{height: 2}
	c := &Node{height: 1}
	b.left = a
	b.right = c
	a.up = b
	c.up = b
	return &Root{node: b}, a, b, c
}

func TestCheckSound(t *testing.T) {
	root, _, _, _ := threeNodes()
	assert.Nil(t, Check(root))
}

func TestCheckBadParentLink(t *testing.T) {
	root, a, _, c := threeNodes()
	a.up = c // back link disagrees with the down link
	assert.Equal(t, ErrBadParentLink, Check(root))
}

func TestCheckBadHeightCache(t *testing.T) {
	root, _, b, _ := threeNodes()
	b.height = 3 // stale cache
	assert.Equal(t, ErrBadHeightCache, Check(root))
}

func TestCheckUnbalanced(t *testing.T) {
	// a left spine with honest heights but no rotations
	a := &Node{height: 1}
	b := &Node{height: 2}
	c := &Node{height: 3}
	b.left = a
	a.up = b
	c.left = b
	b.up = c
	root := &Root{node: c}
	assert.Equal(t, ErrUnbalancedNode, Check(root))
}
