package trie

import "unicode/utf8"

func (n *node[V]) child(r rune) *node[V] {
	return n.children[r]
}

// addChild returns the child for r, creating it if missing.
func (n *node[V]) addChild(r rune) *node[V] {
	if c, ok := n.children[r]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[rune]*node[V], 1)
	}
	c := newNode[V]()
	n.children[r] = c
	return c
}

func (n *node[V]) removeChild(r rune) {
	delete(n.children, r)
	if len(n.children) == 0 {
		n.children = nil
	}
}

// find walks key down from n. It returns nil as soon as a rune has no
// matching child.
func (n *node[V]) find(key string) *node[V] {
	curr := n
	for _, r := range key {
		if curr = curr.child(r); curr == nil {
			return nil
		}
	}
	return curr
}

func (n *node[V]) setValue(value V) (prev V, replaced bool) {
	prev, replaced = n.value, n.hasValue
	n.value, n.hasValue = value, true
	return prev, replaced
}

func (n *node[V]) clearValue() (prev V, ok bool) {
	var zero V
	prev, ok = n.value, n.hasValue
	n.value, n.hasValue = zero, false
	return prev, ok
}

// dead reports a node that holds nothing and leads nowhere.
func (n *node[V]) dead() bool {
	return !n.hasValue && len(n.children) == 0
}

// remove clears the value stored at key below n and drops every child
// that became dead on the way back up. n itself is left to the caller.
func (n *node[V]) remove(key string) (V, bool) {
	if key == "" {
		return n.clearValue()
	}

	r, size := utf8.DecodeRuneInString(key)
	next := n.child(r)
	if next == nil {
		var zero V
		return zero, false
	}

	value, ok := next.remove(key[size:])
	if ok && next.dead() {
		n.removeChild(r)
	}
	return value, ok
}

// detach unlinks the subtree rooted at the non-empty prefix below n and
// prunes the ancestors left dead by it.
func (n *node[V]) detach(prefix string) *node[V] {
	r, size := utf8.DecodeRuneInString(prefix)
	next := n.child(r)
	if next == nil {
		return nil
	}

	if size == len(prefix) {
		n.removeChild(r)
		return next
	}

	sub := next.detach(prefix[size:])
	if sub != nil && next.dead() {
		n.removeChild(r)
	}
	return sub
}

// count returns the number of nodes and of stored values in the subtree
// rooted at n, n included.
func (n *node[V]) count() (nodes, values int) {
	nodes = 1
	if n.hasValue {
		values = 1
	}
	for _, c := range n.children {
		cn, cv := c.count()
		nodes += cn
		values += cv
	}
	return nodes, values
}
