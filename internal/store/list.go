// Package store holds the ordered group and task collections of an instance.
//
// Both collections are doubly-linked lists kept in an arena: nodes are addressed
// by their slot index and link to each other by index, with none marking the
// missing neighbour of the head and the tail. Values are heap-allocated so the
// pointers handed out by Find and All stay valid while the arena grows.
package store

import "iter"

const none = -1

type node[T any] struct {
	value *T
	prev  int
	next  int
}

// List is an append-only doubly-linked list of records keyed by a uint32 id.
type List[T any] struct {
	nodes []*node[T]
	free  []int
	head  int
	tail  int
	key   func(*T) uint32
}

// NewList creates an empty list that identifies records with key.
func NewList[T any](key func(*T) uint32) *List[T] {
	return &List[T]{head: none, tail: none, key: key}
}

// Last returns the tail record, if any.
func (l *List[T]) Last() (*T, bool) {
	if l.tail == none {
		return nil, false
	}
	return l.nodes[l.tail].value, true
}

// Append links v at the tail and returns the stored record.
func (l *List[T]) Append(v T) *T {
	n := &node[T]{value: &v, prev: l.tail, next: none}

	var slot int
	if k := len(l.free); k > 0 {
		slot = l.free[k-1]
		l.free = l.free[:k-1]
		l.nodes[slot] = n
	} else {
		slot = len(l.nodes)
		l.nodes = append(l.nodes, n)
	}

	if l.tail == none {
		l.head = slot
	} else {
		l.nodes[l.tail].next = slot
	}
	l.tail = slot
	return n.value
}

// find returns the slot holding id, scanning from the head.
func (l *List[T]) find(id uint32) int {
	for i := l.head; i != none; i = l.nodes[i].next {
		if l.key(l.nodes[i].value) == id {
			return i
		}
	}
	return none
}

// Find returns the record with the given id.
func (l *List[T]) Find(id uint32) (*T, bool) {
	slot := l.find(id)
	if slot == none {
		return nil, false
	}
	return l.nodes[slot].value, true
}

// Remove unlinks the record with the given id. It reports false and leaves the
// list untouched when no such record exists.
func (l *List[T]) Remove(id uint32) bool {
	slot := l.find(id)
	if slot == none {
		return false
	}

	n := l.nodes[slot]
	switch {
	case n.prev == none && n.next == none:
		l.head, l.tail = none, none
	case n.prev == none:
		l.head = n.next
		l.nodes[n.next].prev = none
	case n.next == none:
		l.tail = n.prev
		l.nodes[n.prev].next = none
	default:
		l.nodes[n.prev].next = n.next
		l.nodes[n.next].prev = n.prev
	}

	l.nodes[slot] = nil
	l.free = append(l.free, slot)
	return true
}

// Len counts the live records by walking the list.
func (l *List[T]) Len() int {
	count := 0
	for i := l.head; i != none; i = l.nodes[i].next {
		count++
	}
	return count
}

// All yields records from head to tail. The record being yielded may be
// removed by the caller; any other mutation during the walk is unsupported.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := l.head; i != none; {
			n := l.nodes[i]
			i = n.next
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields records from tail to head.
func (l *List[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := l.tail; i != none; {
			n := l.nodes[i]
			i = n.prev
			if !yield(n.value) {
				return
			}
		}
	}
}

// Clear drops every node.
func (l *List[T]) Clear() {
	for i := range l.nodes {
		l.nodes[i] = nil
	}
	l.nodes = nil
	l.free = nil
	l.head, l.tail = none, none
}
