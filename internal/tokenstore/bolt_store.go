package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	credentialsBucket = "credentials"
	accessTokenKey    = "access_token"
)

// boltStore implements a Store backed by BoltDB.
type boltStore struct {
	db *bolt.DB
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create token store directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(credentialsBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	return &boltStore{db: db}, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Token returns the stored access token, or "" when none is saved.
func (b *boltStore) Token() (string, error) {
	if b == nil || b.db == nil {
		return "", nil
	}

	var token string
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(credentialsBucket))
		if bucket == nil {
			return fmt.Errorf("credentials bucket missing")
		}
		// Bolt values are only valid inside the transaction.
		token = string(bucket.Get([]byte(accessTokenKey)))
		return nil
	})
	return token, err
}

// SaveToken replaces the stored access token. An empty token clears it.
func (b *boltStore) SaveToken(token string) error {
	if b == nil || b.db == nil {
		return nil
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(credentialsBucket))
		if bucket == nil {
			return fmt.Errorf("credentials bucket missing")
		}
		if token == "" {
			return bucket.Delete([]byte(accessTokenKey))
		}
		return bucket.Put([]byte(accessTokenKey), []byte(token))
	})
}

// ClearToken removes the stored access token.
func (b *boltStore) ClearToken() error { return b.SaveToken("") }
