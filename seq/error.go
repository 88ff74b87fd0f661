package seq

import (
	"fmt"
)

type (
	ErrZeroStep     struct{}
	ErrNegativeStep struct {
		Step float64
	}
)

func (r ErrZeroStep) Error() string {
	return "MakeRangeStep: step must not be zero"
}

func (r ErrNegativeStep) Error() string {
	return fmt.Sprintf(
		`MakeRangeStep: step must be positive since direction comes from the bounds; received "%v"`,
		r.Step,
	)
}
