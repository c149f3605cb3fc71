// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wordindex - a sorted word occurrence index
//
// Reference container for the avl package: each distinct word is one
// record embedding an avl.Node header, the index owns comparison and
// record allocation while the tree only maintains structure.  The
// header to record mapping uses the embedding offset, the usual
// pattern for intrusive structures.
//
// Note: an index is not thread safe, serialise access externally.
package wordindex
