package trie

import "iter"

type Tree[V any] interface {
	Insert(key string, value V) (prev V, replaced bool)
	Add(key string) bool
	Get(key string) (V, bool)
	Contains(key string) bool
	HasPrefix(prefix string) bool
	Remove(key string) (V, bool)
	RemovePrefix(prefix string) (Tree[V], bool)

	Iterator(prefix string) Iterator[V]
	All(prefix string) iter.Seq2[string, V]
	Keys(prefix string) iter.Seq[string]
	Suffixes(prefix string) iter.Seq[string]
	ForEachPrefix(prefix string, callback Callback[V])
	KeysWithPrefix(prefix string) []string

	Size() int
	IsEmpty() bool
}

type Iterator[V any] interface {
	HasNext() bool
	Next() (Entry[V], error)
}

// Entry is a stored key together with its value.
type Entry[V any] struct {
	Key   string
	Value V
}

func New[V any]() Tree[V] {
	return newTree[V]()
}

// From builds a key set: every key is added with an empty payload.
func From(keys ...string) Tree[struct{}] {
	t := newTree[struct{}]()
	for _, k := range keys {
		t.Add(k)
	}
	return t
}

// Collect is From for a sequence of keys.
func Collect(keys iter.Seq[string]) Tree[struct{}] {
	t := newTree[struct{}]()
	for k := range keys {
		t.Add(k)
	}
	return t
}
