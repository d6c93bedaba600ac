package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/meghanshb/go-inventory-tracker.git/internal/inventory"
	bolt "go.etcd.io/bbolt"
)

var (
	boltBucket = []byte("inventory")
	boltKey    = []byte("products")
)

// BoltStore keeps the whole product list as one JSON blob under a single
// key, rewritten on every state change. It is the local single-user
// strategy: no server, just a file next to the binary.
type BoltStore struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load(_ context.Context) ([]inventory.Product, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(boltBucket).Get(boltKey); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []inventory.Product{}, nil
	}
	var products []inventory.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *BoltStore) Persist(_ context.Context, products []inventory.Product) error {
	b, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put(boltKey, b)
	})
}

func (s *BoltStore) Close() error { return s.db.Close() }
