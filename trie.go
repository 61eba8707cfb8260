// Package trie implements a character trie: an in-memory prefix tree
// indexing string keys rune by rune, with an optional value per key.
//
// Every edge is labeled by one rune of the key (keys are decoded as
// UTF-8; invalid bytes become utf8.RuneError). A node holding a value
// marks the end of a stored key, other nodes only exist as a path to
// one. The empty key is stored on the root.
//
// A Tree is not safe for concurrent use. Mutating it while an Iterator
// or a sequence returned by All, Keys or Suffixes is being consumed is
// not allowed: the iterator reports ErrModified and the sequences panic.
package trie

import "errors"

const (
	traverseStop traverseAction = iota
	traverseContinue
)

var (
	ErrNoMoreEntries = errors.New("there are no more entries in the trie")
	ErrModified      = errors.New("trie was modified during iteration")
)

type (
	tree[V any] struct {
		root    *node[V]
		// number of stored keys
		size    int
		// bumped by every mutation, checked by iterators
		version uint64
	}

	node[V any] struct {
		children map[rune]*node[V]
		value    V
		hasValue bool
	}

	// Callback receives every stored key under a prefix. Returning false
	// stops the traversal.
	Callback[V any] func(key string, value V) bool

	traverseAction int
)

func newTree[V any]() *tree[V] {
	return &tree[V]{root: newNode[V]()}
}

func newNode[V any]() *node[V] {
	return &node[V]{}
}
