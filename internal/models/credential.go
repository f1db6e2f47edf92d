package models

import "time"

// CredentialRecord is one generated username/password pair plus metadata.
//
// The password is stored verbatim so the user can retrieve it later. That is
// the point of the product, not an oversight; only account passwords (User)
// are hashed.
type CredentialRecord struct {
	ID string `gorm:"type:text;primaryKey" json:"id"` // Opaque UUID, never reused.

	UserID uint64 `gorm:"index;not null" json:"-"` // Owning user; 0 in single-user mode.

	Username string `gorm:"type:text;not null" json:"username"` // Immutable after creation.
	Password string `gorm:"type:text;not null" json:"password"` // Immutable after creation.

	Remark    string `gorm:"type:text" json:"remark"` // Free text, mutable.
	GroupName string `gorm:"type:text" json:"group"`  // Category label, mutable.

	CreatedAt time.Time `gorm:"not null" json:"created_at"` // Assigned at generation, immutable.
}
