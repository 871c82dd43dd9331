package cache

// listNode is a node in the ordered key list.
// The node stores its key so eviction can delete the map entry in O(1).
type listNode[K comparable] struct {
	key  K
	prev *listNode[K]
	next *listNode[K]
}

// keyList is a doubly-linked list of keys ordered by recency.
// The front is the least recently used key, the back the most recent.
// The list is not thread-safe; callers must handle synchronization.
type keyList[K comparable] struct {
	front *listNode[K]
	back  *listNode[K]
	len   int
}

// Len returns the number of nodes in the list.
func (l *keyList[K]) Len() int {
	return l.len
}

// PushBack appends a key as the most recently used and returns its node.
func (l *keyList[K]) PushBack(key K) *listNode[K] {
	node := &listNode[K]{key: key}
	l.linkBack(node)
	return node
}

// MoveToBack marks an existing node as the most recently used.
func (l *keyList[K]) MoveToBack(node *listNode[K]) {
	if node == nil || node == l.back {
		return
	}
	l.unlink(node)
	l.linkBack(node)
}

// Remove removes a node from the list.
func (l *keyList[K]) Remove(node *listNode[K]) {
	if node == nil {
		return
	}
	l.unlink(node)
}

// PopFront removes and returns the least recently used key.
// Returns zero value and false if the list is empty.
func (l *keyList[K]) PopFront() (K, bool) {
	if l.front == nil {
		var zero K
		return zero, false
	}
	node := l.front
	l.unlink(node)
	return node.key, true
}

// Keys returns the keys from least to most recently used.
func (l *keyList[K]) Keys() []K {
	keys := make([]K, 0, l.len)
	for n := l.front; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

// Clear drops every node.
func (l *keyList[K]) Clear() {
	l.front = nil
	l.back = nil
	l.len = 0
}

func (l *keyList[K]) linkBack(node *listNode[K]) {
	node.prev = l.back
	node.next = nil
	if l.back != nil {
		l.back.next = node
	} else {
		l.front = node
	}
	l.back = node
	l.len++
}

// unlink detaches a node and clears its pointers.
func (l *keyList[K]) unlink(node *listNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.front = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.back = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}
