package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NormalizeName folds a category or tag name for case-insensitive
// uniqueness. The normalized form is what the unique index is built on, so
// the invariant holds under any backing store.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Category groups posts; its name is unique case-insensitively. A category
// cannot be deleted while posts reference it.
type Category struct {
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
func (c *Category) BeforeSave(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.NormalizedName = NormalizeName(c.Name)
	return nil
}
