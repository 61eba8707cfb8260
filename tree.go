package trie

import (
	"iter"
	"unicode/utf8"
)

func (t *tree[V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[V]) IsEmpty() bool {
	return t.Size() == 0
}

// Insert stores value under key, creating the missing nodes along the
// path. An existing value is overwritten and returned with replaced set.
func (t *tree[V]) Insert(key string, value V) (prev V, replaced bool) {
	curr := t.root
	for _, r := range key {
		curr = curr.addChild(r)
	}

	prev, replaced = curr.setValue(value)
	if !replaced {
		t.size++
	}
	t.version++
	return prev, replaced
}

// Add stores key with the zero value unless it is already present, in
// which case its value is kept. It reports whether key was added.
func (t *tree[V]) Add(key string) bool {
	if t.Contains(key) {
		return false
	}
	var zero V
	t.Insert(key, zero)
	return true
}

func (t *tree[V]) Get(key string) (V, bool) {
	n := t.root.find(key)
	if n == nil || !n.hasValue {
		var zero V
		return zero, false
	}
	return n.value, true
}

func (t *tree[V]) Contains(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// HasPrefix reports whether some stored key starts with prefix.
func (t *tree[V]) HasPrefix(prefix string) bool {
	n := t.root.find(prefix)
	return n != nil && !n.dead()
}

// Remove deletes key and returns its value. Nodes left without value
// and children are pruned up to, but not including, the root.
func (t *tree[V]) Remove(key string) (V, bool) {
	value, ok := t.root.remove(key)
	if ok {
		t.size--
		t.version++
	}
	return value, ok
}

// RemovePrefix detaches every key starting with prefix and returns them
// as a new trie holding the keys with prefix cut off. It returns false
// if no key starts with prefix.
func (t *tree[V]) RemovePrefix(prefix string) (Tree[V], bool) {
	if !t.HasPrefix(prefix) {
		return nil, false
	}

	var sub *node[V]
	if prefix == "" {
		sub, t.root = t.root, newNode[V]()
	} else {
		sub = t.root.detach(prefix)
	}

	_, values := sub.count()
	t.size -= values
	t.version++
	return &tree[V]{root: sub, size: values}, true
}

// ForEachPrefix calls callback for every stored key starting with
// prefix, prefix itself included, in no particular order.
func (t *tree[V]) ForEachPrefix(prefix string, callback Callback[V]) {
	start := t.root.find(prefix)
	if start == nil {
		return
	}

	version := t.version
	t.recursiveForEach(start, []byte(prefix), func(key string, value V) bool {
		if !callback(key, value) {
			return false
		}
		if t.version != version {
			panic(ErrModified)
		}
		return true
	})
}

func (t *tree[V]) recursiveForEach(curr *node[V], key []byte, callback Callback[V]) traverseAction {
	if curr.hasValue && !callback(string(key), curr.value) {
		return traverseStop
	}

	for r, child := range curr.children {
		if t.recursiveForEach(child, utf8.AppendRune(key, r), callback) == traverseStop {
			return traverseStop
		}
	}
	return traverseContinue
}

func (t *tree[V]) KeysWithPrefix(prefix string) []string {
	keys := make([]string, 0)
	t.ForEachPrefix(prefix, func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (t *tree[V]) All(prefix string) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		t.ForEachPrefix(prefix, Callback[V](yield))
	}
}

func (t *tree[V]) Keys(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		t.ForEachPrefix(prefix, func(key string, _ V) bool {
			return yield(key)
		})
	}
}

// Suffixes yields the stored keys starting with prefix, with prefix cut
// off. A stored prefix yields the empty string.
func (t *tree[V]) Suffixes(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		t.ForEachPrefix(prefix, func(key string, _ V) bool {
			return yield(key[len(prefix):])
		})
	}
}
