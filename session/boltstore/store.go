// Package boltstore persists the console session in a bbolt database file.
package boltstore

import (
	"encoding/json"
	"time"

	"github.com/Pythra/qiimeet-admin/session"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("session")

var _ session.Store = (*Store)(nil)

type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the database file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "[boltstore.Open] bolt.Open")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "[boltstore.Open] create bucket")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Save(sess *session.Session) error {
	if sess == nil {
		return errors.New("[boltstore.Save] session is required")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "[boltstore.Save] marshal session")
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(session.StorageKey), data)
	})
	return errors.Wrap(err, "[boltstore.Save] put")
}

func (s *Store) Restore() (*session.Session, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(session.StorageKey)); v != nil {
			data = append(data, v...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "[boltstore.Restore] get")
	}
	if data == nil {
		return nil, nil
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Corrupted record: discard and report logged out.
		if err := s.Clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err := sess.Validate(); err != nil {
		if err := s.Clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) Clear() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(session.StorageKey))
	})
	return errors.Wrap(err, "[boltstore.Clear] delete")
}
