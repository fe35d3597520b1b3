package repofakes

import (
	"encoding/json"
	"sync"

	"github.com/Pythra/qiimeet-admin/session"
)

var _ session.Store = (*FakeSessionStore)(nil)

// FakeSessionStore keeps the serialized record in memory. It serializes the
// session like the durable stores do, so tests exercise the same
// corrupted-record recovery path via SeedRaw.
type FakeSessionStore struct {
	lock   sync.RWMutex
	record []byte
}

func NewFakeSessionStore() *FakeSessionStore {
	return &FakeSessionStore{}
}

// SeedRaw replaces the stored record with arbitrary bytes.
func (f *FakeSessionStore) SeedRaw(data []byte) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.record = append([]byte(nil), data...)
}

// HasRecord reports whether any record is currently stored.
func (f *FakeSessionStore) HasRecord() bool {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.record != nil
}

func (f *FakeSessionStore) Save(sess *session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	f.record = data
	return nil
}

func (f *FakeSessionStore) Restore() (*session.Session, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.record == nil {
		return nil, nil
	}
	var sess session.Session
	if err := json.Unmarshal(f.record, &sess); err != nil {
		f.record = nil
		return nil, nil
	}
	if err := sess.Validate(); err != nil {
		f.record = nil
		return nil, nil
	}
	return &sess, nil
}

func (f *FakeSessionStore) Clear() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.record = nil
	return nil
}
