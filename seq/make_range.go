package seq

// MakeRange returns the values between start and end with both ends
// included, stepping by one. The direction follows the operand order:
// ascending when start is less than end, descending otherwise.
func MakeRange[T Number](start, end T) []T {
	sequence, _ := MakeRangeStep(start, end, 1)
	return sequence
}

// MakeRangeStep is MakeRange with an explicit step. The step is a
// distance, not a direction, so it must be strictly positive. The last
// value never crosses end, even when the step does not divide the
// interval evenly.
func MakeRangeStep[T Number](start, end, step T) ([]T, error) {
	if step == 0 {
		return nil, ErrZeroStep{}
	}
	if step < 0 {
		return nil, ErrNegativeStep{Step: float64(step)}
	}
	if start < end {
		capacity := int((end-start)/step) + 1
		sequence := make([]T, 0, capacity)
		for i := start; i <= end; i += step {
			sequence = append(sequence, i)
		}
		return sequence, nil
	}
	capacity := int((start-end)/step) + 1
	sequence := make([]T, 0, capacity)
	for i := start; i >= end; i -= step {
		sequence = append(sequence, i)
	}
	return sequence, nil
}
