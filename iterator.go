package trie

type (
	iteratorLevel[V any] struct {
		node *node[V]
		key  string
	}

	iterator[V any] struct {
		tree    *tree[V]
		version uint64
		next    *Entry[V]
		pending []iteratorLevel[V]
	}
)

// Iterator returns a cursor over every stored key starting with prefix,
// prefix itself included. Keys come depth first in no particular order.
func (t *tree[V]) Iterator(prefix string) Iterator[V] {
	it := &iterator[V]{
		tree:    t,
		version: t.version,
	}
	if start := t.root.find(prefix); start != nil {
		it.pending = append(it.pending, iteratorLevel[V]{start, prefix})
	}
	it.advance()
	return it
}

func (it *iterator[V]) HasNext() bool {
	return it != nil && it.next != nil
}

// Next returns the current entry and moves the cursor. It fails with
// ErrModified once the trie has been changed since the cursor was made.
func (it *iterator[V]) Next() (Entry[V], error) {
	if it.tree.version != it.version {
		return Entry[V]{}, ErrModified
	}
	if !it.HasNext() {
		return Entry[V]{}, ErrNoMoreEntries
	}
	cur := *it.next
	it.advance()
	return cur, nil
}

// advance pops pending nodes until one holding a value is found.
func (it *iterator[V]) advance() {
	it.next = nil
	for len(it.pending) > 0 {
		last := len(it.pending) - 1
		level := it.pending[last]
		it.pending = it.pending[:last]

		for r, child := range level.node.children {
			it.pending = append(it.pending, iteratorLevel[V]{child, level.key + string(r)})
		}

		if level.node.hasValue {
			it.next = &Entry[V]{Key: level.key, Value: level.node.value}
			return
		}
	}
}
