package list

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	ErrEmpty           = errors.New("Empty")
	ErrIndexOutOfRange = errors.New("IndexOutOfRange")
)

type element struct {
	value float64
	next  *element
}

// List is a singly linked list of coefficients in insertion order.
// The zero value is an empty list ready to use.
type List struct {
	head *element
	tail *element
	size int
}

// New returns a list holding values in order.
func New(values ...float64) *List {
	var l List
	for _, v := range values {
		l.Append(v)
	}
	return &l
}

func (l *List) Len() int      { return l.size }
func (l *List) IsEmpty() bool { return l.size == 0 }

// Append adds v at the end of the list.
func (l *List) Append(v float64) {
	e := &element{value: v}
	if l.tail == nil {
		l.head, l.tail = e, e
	} else {
		l.tail.next = e
		l.tail = e
	}
	l.size++
}

// Prepend adds v at the front of the list.
func (l *List) Prepend(v float64) {
	e := &element{value: v, next: l.head}
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.size++
}

func (l *List) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size)
	}
	return nil
}

// RemoveAt unlinks the element at index.
// The list is left unchanged when it returns an error.
func (l *List) RemoveAt(index int) error {
	if l.size == 0 {
		return fmt.Errorf("%w: remove index %d", ErrEmpty, index)
	}
	if err := l.checkIndex(index); err != nil {
		return err
	}

	if index == 0 {
		e := l.head
		l.head = e.next
		if l.head == nil {
			l.tail = nil
		}
		e.next = nil
		l.size--
		return nil
	}

	prev := l.head
	for range index - 1 {
		prev = prev.next
	}
	e := prev.next
	prev.next = e.next
	if e == l.tail {
		l.tail = prev
	}
	e.next = nil
	l.size--
	return nil
}

// Get returns the value at index.
func (l *List) Get(index int) (float64, error) {
	if err := l.checkIndex(index); err != nil {
		return 0, err
	}
	e := l.head
	for range index {
		e = e.next
	}
	return e.value, nil
}

// Clear unlinks every element.
func (l *List) Clear() {
	for l.head != nil {
		e := l.head
		l.head = e.next
		e.next = nil
	}
	l.tail = nil
	l.size = 0
}

// All yields the values from head to tail.
func (l *List) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Indexed yields the values with their 0-based positions.
func (l *List) Indexed() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		var i int
		for e := l.head; e != nil; e = e.next {
			if !yield(i, e.value) {
				return
			}
			i++
		}
	}
}

// Values returns a snapshot of the list contents.
func (l *List) Values() []float64 {
	xs := slices.Collect(l.All())
	if xs == nil {
		return []float64{}
	}
	return xs
}
