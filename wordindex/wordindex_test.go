// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wordindex_test

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/wordindex"
)

func TestAddAndCount(t *testing.T) {
	index := wordindex.New()
	text := "the quick brown fox jumps over the lazy dog the end"
	for _, w := range strings.Fields(text) {
		index.Add(w)
	}
	assert.Nil(t, index.CheckConsistency())

	assert.Equal(t, uint64(3), index.Count("the"))
	assert.Equal(t, uint64(1), index.Count("fox"))
	assert.Equal(t, uint64(0), index.Count("cat"))
	assert.Equal(t, 9, index.Words())
	assert.Equal(t, uint64(11), index.Total())
}

func TestOrdering(t *testing.T) {
	words := []string{
		"mango", "apple", "pear", "banana", "cherry",
		"quince", "fig", "date", "kiwi", "lime",
	}
	index := wordindex.New()
	for _, w := range words {
		index.Add(w)
	}
	assert.Nil(t, index.CheckConsistency())

	expected := append([]string{}, words...)
	sort.Strings(expected)
	assert.Equal(t, expected, index.List())
}

func TestRemove(t *testing.T) {
	index := wordindex.New()
	for _, w := range []string{"delta", "alpha", "echo", "bravo", "charlie"} {
		index.Add(w)
		index.Add(w)
	}

	assert.True(t, index.Remove("bravo"))
	assert.False(t, index.Remove("bravo"), "second removal of the same word")
	assert.False(t, index.Remove("foxtrot"), "removal of an absent word")
	assert.Nil(t, index.CheckConsistency())

	assert.Equal(t, []string{"alpha", "charlie", "delta", "echo"}, index.List())
	assert.Equal(t, 4, index.Words())
	assert.Equal(t, uint64(8), index.Total())
}

func TestRemoveAll(t *testing.T) {
	index := wordindex.New()
	words := []string{"one", "two", "three", "four", "five", "six"}
	for _, w := range words {
		index.Add(w)
	}
	for _, w := range words {
		assert.True(t, index.Remove(w))
		assert.Nil(t, index.CheckConsistency())
	}
	assert.True(t, index.IsEmpty())
	assert.Equal(t, 0, index.Words())
	assert.Equal(t, uint64(0), index.Total())
}

func TestRangeEarlyStop(t *testing.T) {
	index := wordindex.New()
	for _, w := range []string{"a", "b", "c", "d", "e"} {
		index.Add(w)
	}

	visited := []string{}
	index.Range(func(word string, count uint64) bool {
		visited = append(visited, word)
		return len(visited) < 3
	})
	assert.Equal(t, []string{"a", "b", "c"}, visited)
}

func TestDump(t *testing.T) {
	index := wordindex.New()
	for _, w := range []string{"m", "f", "s", "c", "j", "p", "x"} {
		index.Add(w)
	}

	buffer := &bytes.Buffer{}
	depth := index.Dump(buffer)
	assert.Equal(t, 3, depth)
	assert.Equal(t, 7, strings.Count(buffer.String(), "\n"))
}
