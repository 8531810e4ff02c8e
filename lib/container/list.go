package container

// --------------------------------------------------------------------------
// List
// --------------------------------------------------------------------------

// node is one element of a List's backing doubly-linked list.
type node struct {
	value      string
	prev, next *node
}

// List is a doubly-linked list of strings, supporting push/pop at both ends
// and a range read by position. Length is tracked incrementally so LLEN is
// O(1).
type List struct {
	head, tail *node
	length     int
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Len returns the number of elements currently stored.
func (l *List) Len() int {
	return l.length
}

// PushLeft inserts value at the head of the list.
func (l *List) PushLeft(value string) {
	n := &node{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
}

// PushRight inserts value at the tail of the list.
func (l *List) PushRight(value string) {
	n := &node{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
}

// PopLeft removes and returns the head element. ok is false on an empty list.
func (l *List) PopLeft() (value string, ok bool) {
	if l.head == nil {
		return "", false
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.length--
	return n.value, true
}

// PopRight removes and returns the tail element. ok is false on an empty list.
func (l *List) PopRight() (value string, ok bool) {
	if l.tail == nil {
		return "", false
	}
	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.length--
	return n.value, true
}

// Range returns a copy of the elements in [start, stop], inclusive, clamped
// to the list's bounds. start > stop or start beyond the list yields an
// empty, non-nil slice. Traversal starts from the head when start is no
// farther from the head than stop is from the tail, else from the tail.
func (l *List) Range(start, stop int) []string {
	if l.length == 0 || start > stop {
		return []string{}
	}
	if start < 0 {
		start = 0
	}
	if stop >= l.length {
		stop = l.length - 1
	}
	if start > stop {
		return []string{}
	}

	out := make([]string, 0, stop-start+1)

	if start <= l.length-1-stop {
		n := l.head
		for i := 0; i < start; i++ {
			n = n.next
		}
		for i := start; i <= stop; i++ {
			out = append(out, n.value)
			n = n.next
		}
	} else {
		n := l.tail
		for i := l.length - 1; i > stop; i-- {
			n = n.prev
		}
		tmp := make([]string, stop-start+1)
		for i := stop; i >= start; i-- {
			tmp[i-start] = n.value
			n = n.prev
		}
		out = append(out, tmp...)
	}

	return out
}

// Each calls fn for every element head-to-tail.
func (l *List) Each(fn func(value string)) {
	for n := l.head; n != nil; n = n.next {
		fn(n.value)
	}
}
