package repository

import (
	"blogapi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostFilter selects posts by status plus any combination of optional
// dimensions. Present dimensions combine with AND; an absent dimension
// constrains nothing. Status is always pinned by the caller, never taken
// from client input.
type PostFilter struct {
	Status     models.PostStatus
	CategoryID *uuid.UUID
	AuthorID   *uuid.UUID
	TagID      *uuid.UUID
}

// Matches reports whether the post satisfies every present dimension of
// the filter.
func (f PostFilter) Matches(p *models.Post) bool {
	if p.Status != f.Status {
		return false
	}
	if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
		return false
	}
	if f.AuthorID != nil && p.AuthorID != *f.AuthorID {
		return false
	}
	if f.TagID != nil {
		found := false
		for _, t := range p.Tags {
			if t.ID == *f.TagID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// unfiltered reports whether no optional dimension is set. Only the plain
// published listing is cacheable; dimensioned queries go to the database.
func (f PostFilter) unfiltered() bool {
	return f.CategoryID == nil && f.AuthorID == nil && f.TagID == nil
}

// scope translates the filter into query conditions. Must stay in step
// with Matches.
func (f PostFilter) scope(db *gorm.DB) *gorm.DB {
	db = db.Where("posts.status = ?", f.Status)
	if f.CategoryID != nil {
		db = db.Where("posts.category_id = ?", *f.CategoryID)
	}
	if f.AuthorID != nil {
		db = db.Where("posts.author_id = ?", *f.AuthorID)
	}
	if f.TagID != nil {
		db = db.Where("EXISTS (SELECT 1 FROM post_tags WHERE post_tags.post_id = posts.id AND post_tags.tag_id = ?)", *f.TagID)
	}
	return db
}
