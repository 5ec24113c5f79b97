package storage

import (
	"sync"
	"time"
)

type MemoryStorage struct {
	sessions map[string]*Session
	mutex    sync.RWMutex
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		sessions: make(map[string]*Session),
	}
}

func (m *MemoryStorage) Get(userID string) (*Session, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.sessions[userID], nil
}

func (m *MemoryStorage) GetOrCreate(userID string) (*Session, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if session, ok := m.sessions[userID]; ok {
		return session, nil
	}
	session := &Session{
		UserID:    userID,
		UpdatedAt: time.Now(),
	}
	m.sessions[userID] = session
	return session, nil
}

func (m *MemoryStorage) UpdateImage(userID, path, encoded string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if session, ok := m.sessions[userID]; ok {
		session.ImagePath = path
		session.ImageBase64 = encoded
		session.UpdatedAt = time.Now()
		return nil
	}
	m.sessions[userID] = &Session{
		UserID:      userID,
		ImagePath:   path,
		ImageBase64: encoded,
		UpdatedAt:   time.Now(),
	}
	return nil
}

func (m *MemoryStorage) Delete(userID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.sessions, userID)
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
