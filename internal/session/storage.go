package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/gpessoni/pokedex/internal/domain"
)

var (
	bucketSession = []byte("session")
	keyCredential = []byte("credential")
)

// persistedCredential is the on-disk shape of the credential snapshot.
type persistedCredential struct {
	Token string `json:"token"`
	User  struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"createdAt,omitempty"`
	} `json:"user"`
}

// Store is the durable credential storage, a small BoltDB file under the
// user's data directory. It survives process restarts the way browser
// localStorage survives page reloads.
type Store struct {
	db *bolt.DB
}

// OpenStore opens (or creates) the credential database at path.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save writes the credential snapshot.
func (s *Store) Save(cred domain.Credential) error {
	var p persistedCredential
	p.Token = cred.Token
	p.User.ID = cred.User.ID
	p.User.Email = cred.User.Email
	p.User.Name = cred.User.Name
	p.User.CreatedAt = cred.User.CreatedAt

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyCredential, data)
	})
}

// Load reads the stored credential, if any.
func (s *Store) Load() (domain.Credential, bool) {
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSession).Get(keyCredential); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return domain.Credential{}, false
	}

	var p persistedCredential
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Credential{}, false
	}
	return domain.Credential{
		Token: p.Token,
		User: domain.User{
			ID:        p.User.ID,
			Email:     p.User.Email,
			Name:      p.User.Name,
			CreatedAt: p.User.CreatedAt,
		},
	}, true
}

// Clear removes the stored credential.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keyCredential)
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
