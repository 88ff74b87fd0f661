package port

// Port is a FIFO-like source that yields exactly one value per Pop call.
// Whether a Pop may block belongs to whoever supplied the port; the fold
// operations only require that each call is deterministic.
type Port[T any] interface {
	Pop() (T, error)
}
