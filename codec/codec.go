// Package codec converts values to and from bytes for stores that only hold
// byte slices.
package codec

import (
	"bytes"
	"encoding"
	"encoding/gob"
	"fmt"
)

// Codec encodes and decodes values of type T.
type Codec[T any] interface {
	Encode(value T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// Gob implements Codec using encoding/gob.
type Gob[T any] struct{}

// NewGob returns a gob codec for T.
func NewGob[T any]() Gob[T] {
	return Gob[T]{}
}

func (Gob[T]) Encode(value T) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return nil, fmt.Errorf("gob encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (Gob[T]) Decode(data []byte) (T, error) {
	var value T
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&value); err != nil {
		return value, fmt.Errorf("gob decode: %w", err)
	}
	return value, nil
}

// BinaryPointer is satisfied by *T when T has value-receiver MarshalBinary
// and pointer-receiver UnmarshalBinary methods.
type BinaryPointer[T any] interface {
	*T
	encoding.BinaryUnmarshaler
}

// Binary implements Codec for types with their own binary encoding. Key
// codecs handed to byte-ordered stores must produce encodings that sort the
// same way the keys do.
type Binary[T encoding.BinaryMarshaler, PT BinaryPointer[T]] struct{}

// NewBinary returns a codec using the binary encoding of T.
func NewBinary[T encoding.BinaryMarshaler, PT BinaryPointer[T]]() Binary[T, PT] {
	return Binary[T, PT]{}
}

func (Binary[T, PT]) Encode(value T) ([]byte, error) {
	return value.MarshalBinary()
}

func (Binary[T, PT]) Decode(data []byte) (T, error) {
	var value T
	if err := PT(&value).UnmarshalBinary(data); err != nil {
		return value, err
	}
	return value, nil
}
