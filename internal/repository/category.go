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

// categoryPostCount counts referencing posts inline so listings never
// need a second query. Soft-deleted posts are excluded.
const categoryPostCount = "categories.*, " +
	"(SELECT COUNT(*) FROM posts WHERE posts.category_id = categories.id AND posts.deleted_at IS NULL) as post_count"

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a new CategoryRepository implementation.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := cache.Aside(ctx, cache.CategoriesListKey, &categories, cache.ListTTL, func() error {
		if err := r.db.WithContext(ctx).
			Select(categoryPostCount).
			Order("name ASC").
			Find(&categories).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).
		Select(categoryPostCount).
		First(&category, "categories.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Category", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &category, nil
}

// Create relies on the unique index over the normalized name; a violation
// surfaces as a conflict regardless of which caller lost the race.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError(fmt.Sprintf("Category already exists with name: %s", category.Name))
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateCategories(ctx)
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Category", id)
	}
	cache.InvalidateCategories(ctx)
	return nil
}
