package seq

import (
	"golang.org/x/exp/constraints"
)

// Number covers the arithmetic types that ranges and folds work on.
type Number interface {
	constraints.Integer | constraints.Float
}
