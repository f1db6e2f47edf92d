package history

import (
	"context"
	"time"

	"github.com/credstack/credstack/internal/apperrors"
	"github.com/credstack/credstack/internal/generator"
	"github.com/credstack/credstack/internal/models"
	"github.com/google/uuid"
)

// Manager orchestrates record lifecycle: generation into persistence, edits,
// batch edits, and deletion. Storage is delegated to the Store port.
type Manager struct {
	store      Store
	gen        *generator.Generator
	singleUser bool
	now        func() time.Time
}

// NewManager constructs a Manager. In single-user mode owner checks are
// skipped and records are stored under owner 0.
func NewManager(store Store, gen *generator.Generator, singleUser bool) *Manager {
	if gen == nil {
		gen = generator.New(nil)
	}
	return &Manager{store: store, gen: gen, singleUser: singleUser, now: time.Now}
}

// Generate builds a username and password from the config, assembles a new
// record with a fresh identifier and the current timestamp, and persists it.
func (m *Manager) Generate(ctx context.Context, cfg generator.Config, ownerID uint64) (*models.CredentialRecord, error) {
	if !m.singleUser && ownerID == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	record := &models.CredentialRecord{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		Username:  m.gen.Username(cfg),
		Password:  m.gen.Password(cfg),
		Remark:    cfg.Remark,
		GroupName: cfg.Group,
		CreatedAt: m.now().UTC(),
	}
	if err := m.store.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns the owner's records for querying.
func (m *Manager) List(ctx context.Context, ownerID uint64) ([]models.CredentialRecord, error) {
	return m.store.ListByOwner(ctx, ownerID)
}

// Update applies a partial edit to the record's mutable fields. An unknown
// or foreign-owned id fails with apperrors.ErrNotFound.
func (m *Manager) Update(ctx context.Context, id string, ownerID uint64, patch Patch) error {
	return m.store.Patch(ctx, id, ownerID, patch)
}

// BatchUpdate assigns the same group to every listed record that exists.
// Unknown ids among the batch are silently skipped; that is deliberate
// policy, not an error path.
func (m *Manager) BatchUpdate(ctx context.Context, ids []string, ownerID uint64, group string) error {
	return m.store.BatchPatch(ctx, ids, ownerID, group)
}

// Delete removes one record; an unknown id is silently ignored.
func (m *Manager) Delete(ctx context.Context, id string, ownerID uint64) error {
	return m.store.BatchDelete(ctx, []string{id}, ownerID)
}

// BatchDelete removes the listed records; unknown ids are silently ignored.
func (m *Manager) BatchDelete(ctx context.Context, ids []string, ownerID uint64) error {
	return m.store.BatchDelete(ctx, ids, ownerID)
}

// Clear removes every record owned by ownerID, leaving other owners'
// records untouched.
func (m *Manager) Clear(ctx context.Context, ownerID uint64) error {
	return m.store.DeleteAllForOwner(ctx, ownerID)
}
