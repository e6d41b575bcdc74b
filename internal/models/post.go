package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostStatus defines the visibility state of a post.
type PostStatus string

const (
	// PostStatusDraft indicates a post visible only to its author.
	PostStatusDraft PostStatus = "draft"
	// PostStatusPublished indicates a post visible to everyone.
	PostStatusPublished PostStatus = "published"
)

// IsValid reports whether the status is one of the known states.
func (s PostStatus) IsValid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}

// Post represents a blog post. The author and category references are
// required and immutable/required respectively; tags are zero or many.
// ReadingTime is derived from the content at write time and is never
// recomputed on read.
type Post struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:300;not null" json:"title"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Status      PostStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	ReadingTime int            `gorm:"not null" json:"reading_time"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	Author      User           `gorm:"foreignKey:AuthorID" json:"author"`
	CategoryID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	Category    Category       `gorm:"foreignKey:CategoryID" json:"category"`
	Tags        []Tag          `gorm:"many2many:post_tags" json:"tags"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a UUID primary key when none is set.
func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
