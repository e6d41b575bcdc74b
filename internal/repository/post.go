package repository

import (
	"context"
	"errors"

	"blogapi/internal/cache"
	"blogapi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	Find(ctx context.Context, filter PostFilter) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	CountByTag(ctx context.Context, tagID uuid.UUID) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and its tag links in one transaction. The tag
// rows themselves already exist; only join rows are written.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		if len(post.Tags) > 0 {
			if err := tx.Model(post).Association("Tags").Replace(post.Tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	r.invalidate(ctx, post.ID)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.loadAssociations(r.db.WithContext(ctx)).
			First(&post, "posts.id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Find returns posts matching the filter, newest first. Only the plain
// published listing is served from cache; any dimensioned query hits the
// database directly.
func (r *postRepository) Find(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	var posts []models.Post
	fetch := func() error {
		err := filter.scope(r.loadAssociations(r.db.WithContext(ctx))).
			Order("posts.created_at DESC").
			Find(&posts).Error
		if err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	if filter.Status == models.PostStatusPublished && filter.unfiltered() {
		if err := cache.Aside(ctx, cache.PublishedPostsKey, &posts, cache.ListTTL, fetch); err != nil {
			return nil, err
		}
		return posts, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return posts, nil
}

// Update saves scalar columns and replaces the tag set in one transaction.
// An empty tag slice clears all links.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}
		return tx.Model(post).Association("Tags").Replace(post.Tags)
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	r.invalidate(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *postRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) CountByTag(ctx context.Context, tagID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) loadAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").Preload("Category").Preload("Tags")
}

// invalidate drops every cache entry a post write can affect; category and
// tag listings carry post counts.
func (r *postRepository) invalidate(ctx context.Context, postID uuid.UUID) {
	cache.InvalidatePost(ctx, postID)
	cache.InvalidateCategories(ctx)
	cache.InvalidateTags(ctx)
}
