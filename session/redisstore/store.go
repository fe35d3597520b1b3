// Package redisstore persists the console session in Redis, for deployments
// that already run one. The record has no TTL: it lives until sign-out.
package redisstore

import (
	"context"
	"encoding/json"

	"github.com/Pythra/qiimeet-admin/session"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "qiimeet:admin:"

var _ session.Store = (*Store)(nil)

type Store struct {
	redis *redis.Client
	key   string
}

func New(client *redis.Client) *Store {
	return &Store{
		redis: client,
		key:   keyPrefix + session.StorageKey,
	}
}

func (s *Store) Save(sess *session.Session) error {
	if sess == nil {
		return errors.New("[redisstore.Save] session is required")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "[redisstore.Save] marshal session")
	}
	if err := s.redis.Set(context.Background(), s.key, data, 0).Err(); err != nil {
		return errors.Wrap(err, "[redisstore.Save] set")
	}
	return nil
}

func (s *Store) Restore() (*session.Session, error) {
	data, err := s.redis.Get(context.Background(), s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[redisstore.Restore] get")
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
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
	if err := s.redis.Del(context.Background(), s.key).Err(); err != nil {
		return errors.Wrap(err, "[redisstore.Clear] del")
	}
	return nil
}
