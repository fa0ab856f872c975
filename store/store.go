// Package store keeps vmodel envelopes in a bbolt bucket.
//
// Records are written at the model's version (or an older one, for readers
// that have not upgraded yet) and upgraded on read. Migrate rewrites old
// records in place so the upgrade cost is paid once.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"go.hasen.dev/vmodel"
	"go.hasen.dev/vmodel/vpack"
)

var (
	// ErrNotFound is returned by Get when the key does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrNoDB is returned when the store was created without a database.
	ErrNoDB = errors.New("store: no database configured")
)

// Store holds values of one model, all versions of it, in one bucket.
type Store[T any] struct {
	db     *bbolt.DB
	model  vmodel.Model[T]
	bucket []byte
	log    *zap.Logger
}

// Option configures a Store.
type Option func(*options)

type options struct {
	db     *bbolt.DB
	bucket string
	log    *zap.Logger
}

// WithDB sets the bbolt database.
func WithDB(db *bbolt.DB) Option {
	return func(o *options) {
		o.db = db
	}
}

// WithBucket overrides the bucket name. The default is "model-<id>".
func WithBucket(name string) Option {
	return func(o *options) {
		o.bucket = name
	}
}

// WithLogger sets the logger for migrations and failed reads.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// New creates a store for model m.
func New[T any](m vmodel.Model[T], opts ...Option) *Store[T] {
	o := options{
		bucket: fmt.Sprintf("model-%d", m.ID()),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return &Store[T]{
		db:     o.db,
		model:  m,
		bucket: []byte(o.bucket),
		log:    o.log.With(zap.String("bucket", o.bucket), zap.Uint32("model", m.ID())),
	}
}

// Put stores v at the model's own version.
func (s *Store[T]) Put(key []byte, v T) error {
	data, err := vmodel.Encode(s.model, v)
	if err != nil {
		return err
	}
	return s.put(key, data)
}

// PutVersion stores v downgraded to version.
func (s *Store[T]) PutVersion(key []byte, v T, version uint32) error {
	data, err := vmodel.EncodeDowngrade(s.model, v, version)
	if err != nil {
		return err
	}
	return s.put(key, data)
}

func (s *Store[T]) put(key, data []byte) error {
	if s.db == nil {
		return ErrNoDB
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// Append stores v under the bucket's next sequence number and returns it.
// Keys are fixed-width big endian so cursor order is insertion order.
func (s *Store[T]) Append(v T) (uint64, error) {
	if s.db == nil {
		return 0, ErrNoDB
	}
	data, err := vmodel.Encode(s.model, v)
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		if seq, err = b.NextSequence(); err != nil {
			return err
		}
		return b.Put(SeqKey(seq), data)
	})
	return seq, err
}

// SeqKey is the key Append uses for sequence number seq.
func SeqKey(seq uint64) []byte {
	key, _ := vpack.ToBytes(&seq, vpack.FUInt64)
	return key
}

// Get loads the value under key, upgrading it if it was stored at an older
// version. The version it was stored at is returned alongside.
func (s *Store[T]) Get(key []byte) (T, uint32, error) {
	var zero T
	data, err := s.load(key)
	if err != nil {
		return zero, 0, err
	}
	v, version, err := vmodel.Decode(s.model, data)
	if err != nil {
		s.log.Debug("decode failed", zap.ByteString("key", key), zap.Error(err))
		return zero, version, err
	}
	return v, version, nil
}

func (s *Store[T]) load(key []byte) ([]byte, error) {
	if s.db == nil {
		return nil, ErrNoDB
	}
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get(key)
		if v == nil {
			return ErrNotFound
		}
		// only valid during the transaction
		data = append([]byte(nil), v...)
		return nil
	})
	return data, err
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store[T]) Delete(key []byte) error {
	if s.db == nil {
		return ErrNoDB
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.Delete(key)
	})
}

// Versions counts stored records by the version in their header.
func (s *Store[T]) Versions() (map[uint32]int, error) {
	if s.db == nil {
		return nil, ErrNoDB
	}
	counts := make(map[uint32]int)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			h, err := vmodel.Peek(v)
			if err != nil {
				return fmt.Errorf("store: key %x: %w", k, err)
			}
			counts[h.Version]++
			return nil
		})
	})
	return counts, err
}

// Migrate rewrites every record stored below the model's version at the
// model's version. Records already at or above it are left alone. Each record
// is rewritten in its own transaction, so a failure part way leaves the
// records before it migrated; the count of rewritten records is returned
// either way.
func (s *Store[T]) Migrate(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, ErrNoDB
	}
	var stale [][]byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			h, err := vmodel.Peek(v)
			if err != nil {
				return fmt.Errorf("store: key %x: %w", k, err)
			}
			if h.Version < s.model.Version() {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}

	migrated := 0
	for _, key := range stale {
		if err := ctx.Err(); err != nil {
			return migrated, err
		}
		if err := s.migrateOne(key); err != nil {
			s.log.Warn("migrate failed", zap.ByteString("key", key), zap.Error(err))
			return migrated, fmt.Errorf("store: migrate key %x: %w", key, err)
		}
		migrated++
	}
	s.log.Info("migrated", zap.Int("records", migrated), zap.Uint32("version", s.model.Version()))
	return migrated, nil
}

func (s *Store[T]) migrateOne(key []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return ErrNotFound
		}
		old := b.Get(key)
		if old == nil {
			return nil // deleted since the scan
		}
		v, _, err := vmodel.Decode(s.model, old)
		if err != nil {
			return err
		}
		data, err := vmodel.Encode(s.model, v)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}
