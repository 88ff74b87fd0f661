package port

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// FixedNumber covers the numbers whose wire size is fixed, which is what
// little-endian decoding needs. Plain int and uint are excluded on purpose.
type FixedNumber interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Binary pops numbers decoded little-endian from a byte stream, one value
// per Pop, until the bytes run out.
type Binary[T FixedNumber] struct {
	reader *bytes.Reader
}

func NewBinary[T FixedNumber](bs []byte) *Binary[T] {
	return &Binary[T]{
		reader: bytes.NewReader(bs),
	}
}

func (r *Binary[T]) Pop() (T, error) {
	var value T
	if r.reader.Len() == 0 {
		return value, ErrEmptyPort{Caller: "Binary.Pop"}
	}
	if err := binary.Read(r.reader, binary.LittleEndian, &value); err != nil {
		err := errors.Wrap(err, "Binary.Pop error: decode value")
		return value, err
	}
	return value, nil
}

// Len reports how many undecoded values remain in the stream.
func (r *Binary[T]) Len() int {
	var value T
	return r.reader.Len() / binary.Size(value)
}
