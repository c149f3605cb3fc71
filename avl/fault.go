// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// InvariantError - a structural defect reported by Check
//
// Single instances to allow easy comparison without resorting to
// partial string matches.
type InvariantError string

// Error - the error interface
func (e InvariantError) Error() string {
	return string(e)
}

// checker errors - keep in alphabetic order
var (
	ErrBadHeightCache = InvariantError("cached height does not match children")
	ErrBadParentLink  = InvariantError("parent link does not match child link")
	ErrUnbalancedNode = InvariantError("sub-tree heights differ by more than one")
)
