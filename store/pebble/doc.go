// Package pebble implements store.Store on top of a Pebble database held in
// an in-memory filesystem.
//
// Pebble orders keys byte-wise, so the key codec must produce encodings that
// sort the same way the keys do. priority.Key encodes to two big-endian
// words and satisfies this.
//
// Pebble operations can fail while the store.Store interface cannot. The
// first failure is kept and reported by Err; once it is set every operation
// is a no-op and queries report an empty store. Failures are also written to
// the configured logger.
//
// Basic usage:
//
//	s, err := pebble.New[priority.Key, string](
//	    codec.NewBinary[priority.Key](),
//	    codec.NewGob[string](),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	q := priority.NewWithStore[string](s)
//	q.Insert("job", 5)
//	if err := s.Err(); err != nil {
//	    log.Fatal(err)
//	}
package pebble
