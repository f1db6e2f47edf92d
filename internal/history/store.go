// Package history persists credential records and orchestrates their
// lifecycle: generation, partial edits, batch edits, and deletion.
package history

import (
	"context"

	"github.com/credstack/credstack/internal/models"
)

// Patch is a partial update of a record's mutable fields. Nil fields are
// left unchanged; username, password, and the creation timestamp are
// immutable and not part of a patch.
type Patch struct {
	Group  *string
	Remark *string
}

// Store is the persistence port. Every operation is scoped to an owner so a
// record of one user can never be read or mutated through another user's
// session.
type Store interface {
	// Create persists a new record.
	Create(ctx context.Context, record *models.CredentialRecord) error
	// ListByOwner returns all records owned by ownerID.
	ListByOwner(ctx context.Context, ownerID uint64) ([]models.CredentialRecord, error)
	// Patch applies a partial update to one record. A missing or
	// foreign-owned id fails with apperrors.ErrNotFound.
	Patch(ctx context.Context, id string, ownerID uint64, patch Patch) error
	// BatchPatch sets the same group on every listed id that exists and is
	// owned by ownerID. Unknown ids are silently skipped.
	BatchPatch(ctx context.Context, ids []string, ownerID uint64, group string) error
	// BatchDelete removes the listed records. Unknown ids are silently
	// ignored.
	BatchDelete(ctx context.Context, ids []string, ownerID uint64) error
	// DeleteAllForOwner removes every record owned by ownerID.
	DeleteAllForOwner(ctx context.Context, ownerID uint64) error
}
