package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeRange(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, MakeRange(1, 5))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, MakeRange(5, 1))
	assert.Equal(t, []int{3}, MakeRange(3, 3))
}

func TestMakeRangeStep(t *testing.T) {
	sequence, err := MakeRangeStep(0, 10, 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 6, 8, 10}, sequence)

	sequence, err = MakeRangeStep(1, 6, 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, sequence)

	sequenceFloat, err := MakeRangeStep(1.0, 2.5, 0.5)
	assert.NoError(t, err)
	assert.Equal(t, []float64{1.0, 1.5, 2.0, 2.5}, sequenceFloat)
}

func TestMakeRangeStepDescending(t *testing.T) {
	sequence, err := MakeRangeStep(10, 0, 3)
	assert.NoError(t, err)
	assert.Equal(t, []int{10, 7, 4, 1}, sequence)
}

func TestMakeRangeStepAscendingProperties(t *testing.T) {
	start, end := 2, 23
	for _, step := range []int{1, 2, 3, 7} {
		sequence, err := MakeRangeStep(start, end, step)
		assert.NoError(t, err)
		assert.Len(t, sequence, (end-start)/step+1)
		assert.Equal(t, start, sequence[0])
		assert.LessOrEqual(t, sequence[len(sequence)-1], end)
		for i := 1; i < len(sequence); i++ {
			assert.Equal(t, step, sequence[i]-sequence[i-1])
		}
	}
}

func TestMakeRangeStepDescendingProperties(t *testing.T) {
	start, end := 23, 2
	for _, step := range []int{1, 2, 3, 7} {
		sequence, err := MakeRangeStep(start, end, step)
		assert.NoError(t, err)
		assert.Len(t, sequence, (start-end)/step+1)
		assert.Equal(t, start, sequence[0])
		assert.GreaterOrEqual(t, sequence[len(sequence)-1], end)
		for i := 1; i < len(sequence); i++ {
			assert.Equal(t, step, sequence[i-1]-sequence[i])
		}
	}
}

func TestMakeRangeStepInvalid(t *testing.T) {
	sequence, err := MakeRangeStep(1, 5, 0)
	assert.Nil(t, sequence)
	assert.Equal(t, ErrZeroStep{}, err)

	sequence, err = MakeRangeStep(1, 5, -2)
	assert.Nil(t, sequence)
	assert.Equal(t, ErrNegativeStep{Step: -2}, err)
}
