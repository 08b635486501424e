/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	doccredential "github.com/vcxchange/framework-go/pkg/doc/credential"
)

var (
	credentialBucket = []byte("credentials")
	nameBucket       = []byte("names")
	recordBucket     = []byte("records")
)

const openTimeout = 5 * time.Second

// BoltStore is a Store backed by a bolt database file.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens (creating if needed) a bolt-backed credential store at
// the given path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{credentialBucket, nameBucket, recordBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close() // nolint: errcheck

		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// SaveCredential saves the credential under a friendly name and returns the
// id of the stored record.
func (s *BoltStore) SaveCredential(name string, cred doccredential.Credential) (string, error) {
	if name == "" {
		return "", fmt.Errorf("credential name is mandatory")
	}

	credBytes, err := cred.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("marshal credential: %w", err)
	}

	record := &Record{
		ID:        uuid.New().String(),
		Name:      name,
		Context:   cred.Contexts(),
		Type:      cred.Types(),
		SubjectID: cred.SubjectID(),
	}

	recordBytes, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		if existing := tx.Bucket(nameBucket).Get([]byte(name)); existing != nil {
			return fmt.Errorf("credential name already exists: %s", name)
		}

		if err := tx.Bucket(credentialBucket).Put([]byte(record.ID), credBytes); err != nil {
			return fmt.Errorf("put credential: %w", err)
		}

		if err := tx.Bucket(nameBucket).Put([]byte(name), []byte(record.ID)); err != nil {
			return fmt.Errorf("put name: %w", err)
		}

		if err := tx.Bucket(recordBucket).Put([]byte(record.ID), recordBytes); err != nil {
			return fmt.Errorf("put record: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return record.ID, nil
}

// GetCredential retrieves a credential by record id.
func (s *BoltStore) GetCredential(id string) (doccredential.Credential, error) {
	var credBytes []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		if bits := tx.Bucket(credentialBucket).Get([]byte(id)); bits != nil {
			credBytes = append(credBytes, bits...)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if credBytes == nil {
		return nil, ErrNotFound
	}

	cred, err := doccredential.ParseCredential(credBytes, doccredential.WithDisabledSchemaValidation())
	if err != nil {
		return nil, fmt.Errorf("parse stored credential: %w", err)
	}

	return cred, nil
}

// GetCredentialIDByName resolves a friendly name to a record id.
func (s *BoltStore) GetCredentialIDByName(name string) (string, error) {
	var id string

	err := s.db.View(func(tx *bolt.Tx) error {
		if bits := tx.Bucket(nameBucket).Get([]byte(name)); bits != nil {
			id = string(bits)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	if id == "" {
		return "", ErrNotFound
	}

	return id, nil
}

// GetCredentials returns the records of all stored credentials.
func (s *BoltStore) GetCredentials() ([]*Record, error) {
	var records []*Record

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(recordBucket).ForEach(func(_, v []byte) error {
			record := &Record{}
			if err := json.Unmarshal(v, record); err != nil {
				return fmt.Errorf("unmarshal record: %w", err)
			}

			records = append(records, record)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
