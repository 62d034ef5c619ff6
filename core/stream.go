// core/stream.go
//
// Pull-based sequence utilities.  Samplers emit unbounded streams;
// consumers are responsible for thinning and truncation, and must
// always bound how much they pull.
package core

import "sync"

// Stream is an unbounded pull-based generator.  Each call produces the
// next element.  Streams are single-consumer: interleaving pulls from
// two goroutines gives unspecified ordering.
type Stream[T any] func() T

// Every thins a stream, keeping the first element and then every nth
// after it: output k is input k*n.  Panics if n <= 0.
func Every[T any](n int, s Stream[T]) Stream[T] {
	if n <= 0 {
		panic("core: Every requires n > 0")
	}
	first := true
	return func() T {
		if !first {
			for i := 0; i < n-1; i++ {
				s()
			}
		}
		first = false
		return s()
	}
}

// EverySlice is Every for finite inputs: it keeps indices 0, n, 2n, ...
func EverySlice[T any](n int, xs []T) []T {
	if n <= 0 {
		panic("core: EverySlice requires n > 0")
	}
	var out []T
	for i := 0; i < len(xs); i += n {
		out = append(out, xs[i])
	}
	return out
}

// Take pulls the next n elements into a slice.
func Take[T any](n int, s Stream[T]) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = s()
	}
	return out
}

// Drop discards the next n elements and returns the stream.
func Drop[T any](n int, s Stream[T]) Stream[T] {
	for i := 0; i < n; i++ {
		s()
	}
	return s
}

// List is a lazily forced, memoized cons list.  It is how model values
// of unbounded size (point processes, iid sequences) are represented:
// forcing a cell computes its head and tail exactly once, so traversing
// the same list twice observes identical elements.
type List[T any] struct {
	once  sync.Once
	head  T
	tail  *List[T]
	force func() (T, *List[T])
}

// NewList builds a lazy cell from a force function.  The function runs
// at most once, on first access.
func NewList[T any](force func() (T, *List[T])) *List[T] {
	return &List[T]{force: force}
}

func (l *List[T]) eval() {
	l.once.Do(func() {
		l.head, l.tail = l.force()
		l.force = nil
	})
}

// Head forces and returns the first element.
func (l *List[T]) Head() T {
	l.eval()
	return l.head
}

// Tail forces the cell and returns the remainder of the list.
func (l *List[T]) Tail() *List[T] {
	l.eval()
	return l.tail
}

// TakeList forces and returns the first n elements.
func TakeList[T any](n int, l *List[T]) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = l.Head()
		l = l.Tail()
	}
	return out
}

// ListStream adapts a list to a pull stream.
func ListStream[T any](l *List[T]) Stream[T] {
	cur := l
	return func() T {
		v := cur.Head()
		cur = cur.Tail()
		return v
	}
}
