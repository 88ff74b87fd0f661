package seq

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// FormatValues renders a sequence space separated, each value in its
// shortest exact form.
func FormatValues[T Number](values []T) string {
	pieces := lo.Map(
		values,
		func(value T, _ int) string {
			return strconv.FormatFloat(float64(value), 'g', -1, 64)
		},
	)
	return strings.Join(pieces, " ")
}
