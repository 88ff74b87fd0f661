package fold

import (
	"fmt"

	"flume/port"
	"flume/seq"
	"github.com/pkg/errors"
)

// Sum pops the head off each port and adds the values. Calling it with no
// ports returns 0 without touching anything.
func Sum[R seq.Number](ports ...port.Port[R]) (R, error) {
	result, err := Fold(
		R(0),
		func(value R, rest R) R { return value + rest },
		ports...,
	)
	if err != nil {
		return 0, errors.Wrap(err, "Sum error")
	}
	return result, nil
}

// Mult pops the head off each port and multiplies the values. Calling it
// with no ports returns 1 without touching anything.
func Mult[R seq.Number](ports ...port.Port[R]) (R, error) {
	result, err := Fold(
		R(1),
		func(value R, rest R) R { return value * rest },
		ports...,
	)
	if err != nil {
		return 0, errors.Wrap(err, "Mult error")
	}
	return result, nil
}

// Fold drains one value from each port in argument order, then combines
// the values right to left over initial, so the shape of the result is
//
//   combine(v0, combine(v1, ... combine(vN, initial)))
//
// which keeps floating-point results reproducible. A failing Pop aborts
// the fold and the ports after it are left untouched.
func Fold[R any](initial R, combine func(R, R) R, ports ...port.Port[R]) (R, error) {
	values := make([]R, 0, len(ports))
	for i, p := range ports {
		value, err := p.Pop()
		if err != nil {
			var zero R
			err := errors.Wrap(err, fmt.Sprintf("Fold error: pop port %d", i))
			return zero, err
		}
		values = append(values, value)
	}
	result := initial
	for i := len(values) - 1; i >= 0; i-- {
		result = combine(values[i], result)
	}
	return result, nil
}
