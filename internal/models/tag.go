package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag labels posts; names are unique case-insensitively and a tag cannot be
// deleted while posts reference it.
type Tag struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:120;not null" json:"name"`
	NormalizedName string    `gorm:"size:120;not null;uniqueIndex" json:"-"`
	// PostCount is not persisted; computed at query time
	PostCount int       `gorm:"->" json:"post_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave assigns the UUID key and keeps the normalized name in sync with
// the display name.
func (t *Tag) BeforeSave(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.NormalizedName = NormalizeName(t.Name)
	return nil
}
