package pebble

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/enginespot/algo/codec"
	"github.com/enginespot/algo/internal/monitoring"
	"github.com/enginespot/algo/store"
)

var _ store.Store[[]byte, []byte] = (*Store[[]byte, []byte])(nil)

// ErrClosed is reported once the store has been closed.
var ErrClosed = errors.New("pebble store is closed")

type options struct {
	cacheSize int64
	logger    monitoring.Logger
}

// Option configures a Store.
type Option func(*options)

// WithCacheSize sets the size in bytes of the block cache.
func WithCacheSize(size int64) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l monitoring.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		cacheSize: 8 << 20,
		logger:    monitoring.Nop(),
	}
}

// Store is a store.Store backed by an in-memory Pebble database.
type Store[K, V any] struct {
	db     *pebble.DB
	keys   codec.Codec[K]
	values codec.Codec[V]
	logger monitoring.Logger
	count  int
	err    error
	closed bool
}

// New opens an empty Store. keys must be order-preserving.
func New[K, V any](keys codec.Codec[K], values codec.Codec[V], opts ...Option) (*Store[K, V], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cache := pebble.NewCache(o.cacheSize)
	defer cache.Unref()

	db, err := pebble.Open("", &pebble.Options{
		FS:    vfs.NewMem(),
		Cache: cache,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble: %w", err)
	}

	return &Store[K, V]{
		db:     db,
		keys:   keys,
		values: values,
		logger: o.logger,
	}, nil
}

// Err returns the first error the store encountered.
func (s *Store[K, V]) Err() error {
	return s.err
}

// Close releases the database. Operations after Close are no-ops.
func (s *Store[K, V]) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	if s.err == nil {
		s.err = ErrClosed
	}
	return s.db.Close()
}

func (s *Store[K, V]) Set(key K, value V) {
	if s.err != nil {
		return
	}

	k, err := s.keys.Encode(key)
	if err != nil {
		s.fail("encode_key", err)
		return
	}
	v, err := s.values.Encode(value)
	if err != nil {
		s.fail("encode_value", err)
		return
	}

	exists, err := s.has(k)
	if err != nil {
		s.fail("get", err)
		return
	}
	if err := s.db.Set(k, v, pebble.NoSync); err != nil {
		s.fail("set", err)
		return
	}
	if !exists {
		s.count++
	}
}

func (s *Store[K, V]) Delete(key K) (V, bool) {
	var zero V
	if s.err != nil {
		return zero, false
	}

	k, err := s.keys.Encode(key)
	if err != nil {
		s.fail("encode_key", err)
		return zero, false
	}

	data, closer, err := s.db.Get(k)
	if errors.Is(err, pebble.ErrNotFound) {
		return zero, false
	}
	if err != nil {
		s.fail("get", err)
		return zero, false
	}
	value, err := s.values.Decode(data)
	closer.Close()
	if err != nil {
		s.fail("decode_value", err)
		return zero, false
	}

	if err := s.db.Delete(k, pebble.NoSync); err != nil {
		s.fail("delete", err)
		return zero, false
	}
	s.count--
	return value, true
}

func (s *Store[K, V]) Max() (K, V, bool) {
	var (
		zeroK K
		zeroV V
	)
	if s.err != nil || s.count == 0 {
		return zeroK, zeroV, false
	}

	iter, err := s.db.NewIter(nil)
	if err != nil {
		s.fail("iter", err)
		return zeroK, zeroV, false
	}
	defer iter.Close()

	if !iter.Last() {
		if err := iter.Error(); err != nil {
			s.fail("iter", err)
		}
		return zeroK, zeroV, false
	}

	key, err := s.keys.Decode(iter.Key())
	if err != nil {
		s.fail("decode_key", err)
		return zeroK, zeroV, false
	}
	value, err := s.values.Decode(iter.Value())
	if err != nil {
		s.fail("decode_value", err)
		return zeroK, zeroV, false
	}
	return key, value, true
}

func (s *Store[K, V]) Len() int {
	if s.err != nil {
		return 0
	}
	return s.count
}

func (s *Store[K, V]) has(k []byte) (bool, error) {
	_, closer, err := s.db.Get(k)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

func (s *Store[K, V]) fail(op string, err error) {
	s.err = fmt.Errorf("pebble store %s: %w", op, err)
	s.logger.Log(context.Background(), monitoring.ERROR, op+"_failed", "pebble store operation failed", map[string]interface{}{
		"operation": op,
		"error":     err.Error(),
	})
}
