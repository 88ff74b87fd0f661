package port

type Queue[T any] struct {
	slice []T
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		slice: make([]T, 0),
	}
}

// Of builds a queue preloaded with values, head first.
func Of[T any](values ...T) *Queue[T] {
	queue := NewQueue[T]()
	for _, value := range values {
		queue.Push(value)
	}
	return queue
}

func (r *Queue[T]) Len() int {
	return len(r.slice)
}

func (r *Queue[T]) Push(t T) T {
	r.slice = append(r.slice, t)
	return t
}

func (r *Queue[T]) Pop() (T, error) {
	if r.Len() == 0 {
		var zero T
		return zero, ErrEmptyPort{Caller: "Queue.Pop"}
	}
	head := r.slice[0]
	r.slice = r.slice[1:]
	return head, nil
}

func (r *Queue[T]) Peek() (T, error) {
	if r.Len() == 0 {
		var zero T
		return zero, ErrEmptyPort{Caller: "Queue.Peek"}
	}
	return r.slice[0], nil
}

// Values returns a copy of the queued values, head first.
func (r *Queue[T]) Values() []T {
	values := make([]T, len(r.slice))
	copy(values, r.slice)
	return values
}
