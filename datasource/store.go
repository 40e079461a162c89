package datasource

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/bind"
)

const (
	bucketValues = "values"
	bucketLists  = "lists"
)

// initDB creates the buckets a Store reads from.
var initDB = map[string]func(*bolt.Tx) error{
	"initialize values table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketValues))
		return err
	},
	"initialize lists table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLists))
		return err
	},
}

// Store is a DataAccess over a bbolt database.
//
// Scalar and mapping values are kept YAML encoded in the values bucket.
// Each list is a nested bucket of the lists bucket holding one encoded
// item per index.
type Store struct {
	values
	db *bolt.DB
}

// Compile-time check that Store implements DataAccess.
var _ bind.DataAccess[string] = (*Store)(nil)

// Open opens or creates the database at path. Relative image paths are
// resolved from the directory holding it.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("datasource: open store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("datasource: %w", err)
	}

	s := &Store{db: db}
	s.values.init(s, filepath.Dir(path))
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a value under name.
func (s *Store) Put(name string, v any) error {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("datasource: encode %s: %w", name, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketValues)).Put([]byte(name), raw)
	})
}

// PutList replaces the list name with items.
func (s *Store) PutList(name string, items []any) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return putList(tx, name, items)
	})
}

// Import stores every entry of data in one transaction. Sequences become
// lists; everything else is stored with Put.
func (s *Store) Import(data map[string]any) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		vb := tx.Bucket([]byte(bucketValues))
		for name, v := range data {
			if items, ok := v.([]any); ok {
				if err := putList(tx, name, items); err != nil {
					return err
				}
				continue
			}
			raw, err := yaml.Marshal(v)
			if err != nil {
				return fmt.Errorf("datasource: encode %s: %w", name, err)
			}
			if err := vb.Put([]byte(name), raw); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the value and list stored under name.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(bucketValues)).Delete([]byte(name)); err != nil {
			return err
		}
		lists := tx.Bucket([]byte(bucketLists))
		if lists.Bucket([]byte(name)) != nil {
			return lists.DeleteBucket([]byte(name))
		}
		return nil
	})
}

// Names returns the names of all stored values and lists in sorted order.
func (s *Store) Names() ([]string, error) {
	seen := make(map[string]struct{})
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, bucket := range []string{bucketValues, bucketLists} {
			err := tx.Bucket([]byte(bucket)).ForEach(func(k, _ []byte) error {
				seen[string(k)] = struct{}{}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("datasource: %w", err)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) value(name string) (any, bool) {
	var (
		v  any
		ok bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucketValues)).Get([]byte(name))
		if raw == nil {
			return nil
		}
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return err
		}
		ok = true
		return nil
	})
	if err != nil {
		bind.Logger().Debug("datasource: value not read", "name", name, "err", err)
		return nil, false
	}
	return v, ok
}

func (s *Store) list(name string) ([]any, bool) {
	var (
		items []any
		ok    bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLists)).Bucket([]byte(name))
		if b == nil {
			return nil
		}
		ok = true
		return b.ForEach(func(_, raw []byte) error {
			var item any
			if err := yaml.Unmarshal(raw, &item); err != nil {
				return err
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		bind.Logger().Debug("datasource: list not read", "name", name, "err", err)
		return nil, false
	}
	if !ok {
		// A sequence stored with Put.
		if v, found := s.value(name); found {
			items, ok = v.([]any)
		}
	}
	return items, ok
}

func putList(tx *bolt.Tx, name string, items []any) error {
	lists := tx.Bucket([]byte(bucketLists))
	if lists.Bucket([]byte(name)) != nil {
		if err := lists.DeleteBucket([]byte(name)); err != nil {
			return err
		}
	}
	b, err := lists.CreateBucket([]byte(name))
	if err != nil {
		return err
	}
	for i, item := range items {
		raw, err := yaml.Marshal(item)
		if err != nil {
			return fmt.Errorf("datasource: encode %s[%d]: %w", name, i, err)
		}
		if err := b.Put(marshalIndex(i), raw); err != nil {
			return err
		}
	}
	return nil
}

// marshalIndex encodes i so that keys sort in index order.
func marshalIndex(i int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(i))
	return b
}
