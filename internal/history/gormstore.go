package history

import (
	"context"
	"fmt"

	"github.com/credstack/credstack/internal/apperrors"
	"github.com/credstack/credstack/internal/models"
	"gorm.io/gorm"
)

// GormStore persists credential records through GORM (SQLite or PostgreSQL).
type GormStore struct {
	db *gorm.DB
}

// NewGormStore constructs a GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Create persists a new record.
func (s *GormStore) Create(ctx context.Context, record *models.CredentialRecord) error {
	if errCreate := s.db.WithContext(ctx).Create(record).Error; errCreate != nil {
		return fmt.Errorf("history store: create: %w: %v", apperrors.ErrTransport, errCreate)
	}
	return nil
}

// ListByOwner returns all records owned by ownerID, newest first.
func (s *GormStore) ListByOwner(ctx context.Context, ownerID uint64) ([]models.CredentialRecord, error) {
	var rows []models.CredentialRecord
	errFind := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error
	if errFind != nil {
		return nil, fmt.Errorf("history store: list: %w: %v", apperrors.ErrTransport, errFind)
	}
	return rows, nil
}

// Patch applies a partial update to one owned record.
func (s *GormStore) Patch(ctx context.Context, id string, ownerID uint64, patch Patch) error {
	updates := map[string]any{}
	if patch.Group != nil {
		updates["group_name"] = *patch.Group
	}
	if patch.Remark != nil {
		updates["remark"] = *patch.Remark
	}

	scope := s.db.WithContext(ctx).Model(&models.CredentialRecord{}).
		Where("id = ? AND user_id = ?", id, ownerID)

	if len(updates) == 0 {
		// nothing to change, but the target must still exist
		var count int64
		if errCount := scope.Count(&count).Error; errCount != nil {
			return fmt.Errorf("history store: patch: %w: %v", apperrors.ErrTransport, errCount)
		}
		if count == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	}

	res := scope.Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("history store: patch: %w: %v", apperrors.ErrTransport, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// BatchPatch sets the same group on every listed owned record; missing ids
// are skipped without error.
func (s *GormStore) BatchPatch(ctx context.Context, ids []string, ownerID uint64, group string) error {
	if len(ids) == 0 {
		return nil
	}
	errUpdate := s.db.WithContext(ctx).Model(&models.CredentialRecord{}).
		Where("id IN ? AND user_id = ?", ids, ownerID).
		Update("group_name", group).Error
	if errUpdate != nil {
		return fmt.Errorf("history store: batch patch: %w: %v", apperrors.ErrTransport, errUpdate)
	}
	return nil
}

// BatchDelete removes the listed owned records; missing ids are ignored.
func (s *GormStore) BatchDelete(ctx context.Context, ids []string, ownerID uint64) error {
	if len(ids) == 0 {
		return nil
	}
	errDelete := s.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, ownerID).
		Delete(&models.CredentialRecord{}).Error
	if errDelete != nil {
		return fmt.Errorf("history store: batch delete: %w: %v", apperrors.ErrTransport, errDelete)
	}
	return nil
}

// DeleteAllForOwner removes every record owned by ownerID.
func (s *GormStore) DeleteAllForOwner(ctx context.Context, ownerID uint64) error {
	errDelete := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Delete(&models.CredentialRecord{}).Error
	if errDelete != nil {
		return fmt.Errorf("history store: clear: %w: %v", apperrors.ErrTransport, errDelete)
	}
	return nil
}
