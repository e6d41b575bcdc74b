package repository

import (
	"context"
	"errors"
	"fmt"

	"blogapi/internal/cache"
	"blogapi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const tagPostCount = "tags.*, " +
	"(SELECT COUNT(*) FROM post_tags JOIN posts ON posts.id = post_tags.post_id " +
	"WHERE post_tags.tag_id = tags.id AND posts.deleted_at IS NULL) as post_count"

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	List(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tag, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository returns a new TagRepository implementation.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := cache.Aside(ctx, cache.TagsListKey, &tags, cache.ListTTL, func() error {
		if err := r.db.WithContext(ctx).
			Select(tagPostCount).
			Order("name ASC").
			Find(&tags).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).
		Select(tagPostCount).
		First(&tag, "tags.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

// GetByIDs returns the tags it finds; callers compare lengths to detect
// references to missing tags.
func (r *tagRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError(fmt.Sprintf("Tag already exists with name: %s", tag.Name))
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateTags(ctx)
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Tag{}, "id = ?", id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Tag", id)
	}
	cache.InvalidateTags(ctx)
	return nil
}
