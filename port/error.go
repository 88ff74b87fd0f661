package port

import (
	"fmt"
)

type (
	ErrEmptyPort struct {
		Caller string
	}
	ErrClosedPort struct {
		Caller string
	}
)

func (r ErrEmptyPort) Error() string {
	return fmt.Sprintf("%s: pop from an empty port", r.Caller)
}

func (r ErrClosedPort) Error() string {
	return fmt.Sprintf("%s: pop from a closed port", r.Caller)
}
