// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordindex

import (
	"io"
	"unsafe"

	"github.com/bitmark-inc/avltree/avl"
)

// one indexed word and its occurrence count
type entry struct {
	word  string
	count uint64
	node  avl.Node // intrusive header
}

// internal: map an embedded header back to its record
func entryOf(n *avl.Node) *entry {
	return (*entry)(unsafe.Pointer(uintptr(unsafe.Pointer(n)) - unsafe.Offsetof(entry{}.node)))
}

// Index - a word count index ordered by word
type Index struct {
	root  avl.Root
	words int
	total uint64
}

// New - create an empty index
func New() *Index {
	return &Index{}
}

// Add - record one occurrence of a word
// returns the updated occurrence count
func (index *Index) Add(word string) uint64 {

	// comparison descent is owned here, the tree never sees the words
	var parent *avl.Node
	left := false
	for n := index.root.Node(); nil != n; {
		e := entryOf(n)
		if word == e.word {
			e.count += 1
			index.total += 1
			return e.count
		}
		parent = n
		if word < e.word {
			left = true
			n = n.Left()
		} else {
			left = false
			n = n.Right()
		}
	}

	e := &entry{
		word:  word,
		count: 1,
	}
	avl.Link(&e.node, &index.root, parent, left)
	avl.InsertColor(&e.node, &index.root)
	index.words += 1
	index.total += 1
	return 1
}

// internal: descend to the record for a word
func (index *Index) find(word string) *entry {
	n := index.root.Node()
	for nil != n {
		e := entryOf(n)
		if word == e.word {
			return e
		}
		if word < e.word {
			n = n.Left()
		} else {
			n = n.Right()
		}
	}
	return nil
}

// Count - occurrence count of a word, zero if absent
func (index *Index) Count(word string) uint64 {
	e := index.find(word)
	if nil == e {
		return 0
	}
	return e.count
}

// Remove - drop a word and its count entirely
// returns false if the word was not present
func (index *Index) Remove(word string) bool {
	e := index.find(word)
	if nil == e {
		return false
	}
	avl.Erase(&e.node, &index.root)
	index.words -= 1
	index.total -= e.count
	return true
}

// Words - number of distinct words
func (index *Index) Words() int {
	return index.words
}

// Total - number of occurrences recorded over all words
func (index *Index) Total() uint64 {
	return index.total
}

// IsEmpty - true if no words are indexed
func (index *Index) IsEmpty() bool {
	return index.root.IsEmpty()
}

// Range - visit words in ascending order
// the callback returns false to stop early; the index must not be
// modified during the walk
func (index *Index) Range(fn func(word string, count uint64) bool) {
	for n := avl.First(&index.root); nil != n; n = n.Next() {
		e := entryOf(n)
		if !fn(e.word, e.count) {
			return
		}
	}
}

// List - all words in ascending order
func (index *Index) List() []string {
	list := make([]string, 0, index.words)
	index.Range(func(word string, count uint64) bool {
		list = append(list, word)
		return true
	})
	return list
}

// Dump - write an ASCII graphic of the underlying tree
// returns the tree depth
func (index *Index) Dump(w io.Writer) int {
	return avl.Fprint(w, &index.root, func(n *avl.Node) string {
		return entryOf(n).word
	})
}

// CheckConsistency - validate the underlying structure
func (index *Index) CheckConsistency() error {
	return avl.Check(&index.root)
}
