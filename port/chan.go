package port

// Chan adapts a receive channel into a port. Pop blocks until a value
// arrives or the channel is closed and drained.
type Chan[T any] struct {
	channel <-chan T
}

func FromChan[T any](channel <-chan T) *Chan[T] {
	return &Chan[T]{
		channel: channel,
	}
}

func (r *Chan[T]) Pop() (T, error) {
	value, ok := <-r.channel
	if !ok {
		var zero T
		return zero, ErrClosedPort{Caller: "Chan.Pop"}
	}
	return value, nil
}
