package priority

import (
	"encoding/binary"
	"errors"
)

// KeySize is the length of an encoded Key.
const KeySize = 16

// ErrInvalidKey is returned when decoding a slice that is not KeySize long.
var ErrInvalidKey = errors.New("priority: encoded key must be 16 bytes")

// Key is the composite key entries are stored under. Keys are ordered by
// Priority first and Sequence second, both ascending.
type Key struct {
	Priority uint64
	Sequence uint64
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b.
func Compare(a, b Key) int {
	switch {
	case a.Priority < b.Priority:
		return -1
	case a.Priority > b.Priority:
		return 1
	case a.Sequence < b.Sequence:
		return -1
	case a.Sequence > b.Sequence:
		return 1
	default:
		return 0
	}
}

// Less reports whether k sorts before other.
func (k Key) Less(other Key) bool {
	return Compare(k, other) < 0
}

// MarshalBinary encodes k as two big-endian words so that byte-wise
// comparison of encoded keys matches Compare.
func (k Key) MarshalBinary() ([]byte, error) {
	buf := make([]byte, KeySize)
	binary.BigEndian.PutUint64(buf[:8], k.Priority)
	binary.BigEndian.PutUint64(buf[8:], k.Sequence)
	return buf, nil
}

// UnmarshalBinary decodes a key written by MarshalBinary.
func (k *Key) UnmarshalBinary(data []byte) error {
	if len(data) != KeySize {
		return ErrInvalidKey
	}
	k.Priority = binary.BigEndian.Uint64(data[:8])
	k.Sequence = binary.BigEndian.Uint64(data[8:])
	return nil
}
