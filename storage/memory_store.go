package storage

import (
	"fmt"
	"sync"

	"phone-stats/models"
)

// MemoryStore keeps normalized phones in insertion order for the lifetime
// of the process. It is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	phones []*models.Phone
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{phones: make([]*models.Phone, 0)}
}

// Write replaces the store contents with phones.
func (m *MemoryStore) Write(phones []*models.Phone) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.phones = append(make([]*models.Phone, 0, len(phones)), phones...)
	return nil
}

// FetchAll returns a snapshot of the stored phones. Later mutations of the
// store do not affect a snapshot already returned.
func (m *MemoryStore) FetchAll() ([]*models.Phone, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.Phone, len(m.phones))
	copy(out, m.phones)
	return out, nil
}

// Len returns the number of stored phones.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.phones)
}

// Insert places phone at index, shifting later phones back. index may equal
// Len() to append.
func (m *MemoryStore) Insert(index int, phone *models.Phone) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index > len(m.phones) {
		return fmt.Errorf("%w: insert at %d (len %d)", ErrIndexOutOfRange, index, len(m.phones))
	}

	phones := make([]*models.Phone, 0, len(m.phones)+1)
	phones = append(phones, m.phones[:index]...)
	phones = append(phones, phone)
	phones = append(phones, m.phones[index:]...)
	m.phones = phones
	return nil
}

// Update replaces the phone stored at index.
func (m *MemoryStore) Update(index int, phone *models.Phone) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.phones) {
		return fmt.Errorf("%w: update at %d (len %d)", ErrIndexOutOfRange, index, len(m.phones))
	}

	phones := make([]*models.Phone, len(m.phones))
	copy(phones, m.phones)
	phones[index] = phone
	m.phones = phones
	return nil
}

// Delete removes the phone stored at index.
func (m *MemoryStore) Delete(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.phones) {
		return fmt.Errorf("%w: delete at %d (len %d)", ErrIndexOutOfRange, index, len(m.phones))
	}

	phones := make([]*models.Phone, 0, len(m.phones)-1)
	phones = append(phones, m.phones[:index]...)
	phones = append(phones, m.phones[index+1:]...)
	m.phones = phones
	return nil
}
