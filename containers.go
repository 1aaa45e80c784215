package aoc

// NewQueue returns a FIFO queue holding in.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue. The zero value is an empty queue.
type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// Items returns the queued values, front first. The slice aliases the
// queue and must not be modified.
func (q *Queue[T]) Items() []T {
	return q.q
}
