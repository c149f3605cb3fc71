// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an intrusive AVL balanced tree with parent pointers
//
// Unlike a keyed container the tree stores nothing: the caller embeds
// one Node header inside its own record, performs its own comparison
// descent to choose an attachment point and hands the resolved
// (parent, side) pair to Link.  The package only maintains structure:
// linking, height-based rebalancing, unlinking and in-order
// traversal.  It never compares keys, never allocates and never frees
// a record; mapping a *Node back to its enclosing record is the
// caller's business (an embedding offset or equivalent).
//
// The operation names parallel the red-black tree interface this
// package is a drop-in replacement for: Link then InsertColor to
// insert, Erase to remove, First and Next to iterate in ascending
// order.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  A traversal must not overlap any Link or Erase on
//       the same tree as rotations can relocate the node a traversal
//       is currently visiting.
package avl
