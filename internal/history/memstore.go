package history

import (
	"context"
	"sync"

	"github.com/credstack/credstack/internal/apperrors"
	"github.com/credstack/credstack/internal/models"
)

// MemStore is an in-memory Store for local single-user use and tests.
type MemStore struct {
	mu      sync.RWMutex
	order   []string // insertion order of record ids
	records map[string]models.CredentialRecord
}

// NewMemStore constructs an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]models.CredentialRecord)}
}

// Create persists a new record.
func (s *MemStore) Create(_ context.Context, record *models.CredentialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[record.ID]; !exists {
		s.order = append(s.order, record.ID)
	}
	s.records[record.ID] = *record
	return nil
}

// ListByOwner returns all records owned by ownerID, newest first.
func (s *MemStore) ListByOwner(_ context.Context, ownerID uint64) ([]models.CredentialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CredentialRecord, 0)
	for i := len(s.order) - 1; i >= 0; i-- {
		r, ok := s.records[s.order[i]]
		if ok && r.UserID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Patch applies a partial update to one owned record.
func (s *MemStore) Patch(_ context.Context, id string, ownerID uint64, patch Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok || r.UserID != ownerID {
		return apperrors.ErrNotFound
	}
	if patch.Group != nil {
		r.GroupName = *patch.Group
	}
	if patch.Remark != nil {
		r.Remark = *patch.Remark
	}
	s.records[id] = r
	return nil
}

// BatchPatch sets the same group on every listed owned record; missing ids
// are skipped without error.
func (s *MemStore) BatchPatch(_ context.Context, ids []string, ownerID uint64, group string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		r, ok := s.records[id]
		if !ok || r.UserID != ownerID {
			continue
		}
		r.GroupName = group
		s.records[id] = r
	}
	return nil
}

// BatchDelete removes the listed owned records; missing ids are ignored.
func (s *MemStore) BatchDelete(_ context.Context, ids []string, ownerID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		r, ok := s.records[id]
		if !ok || r.UserID != ownerID {
			continue
		}
		delete(s.records, id)
		s.dropFromOrder(id)
	}
	return nil
}

// DeleteAllForOwner removes every record owned by ownerID.
func (s *MemStore) DeleteAllForOwner(_ context.Context, ownerID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.order[:0]
	for _, id := range s.order {
		r, ok := s.records[id]
		if ok && r.UserID == ownerID {
			delete(s.records, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return nil
}

// dropFromOrder removes one id from the insertion-order slice.
func (s *MemStore) dropFromOrder(id string) {
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
