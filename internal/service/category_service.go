package service

import (
	"context"
	"strings"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/google/uuid"
)

const maxNameLen = 120

type CategoryService struct {
	categoryRepo repository.CategoryRepository
	postRepo     repository.PostRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, postRepo repository.PostRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// CreateCategory adds a category. Uniqueness is case-insensitive: a name
// differing only in case from an existing one is a conflict.
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if len(name) > maxNameLen {
		return nil, models.NewValidationError("Name too long (max 120 characters)")
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return s.categoryRepo.GetByID(ctx, category.ID)
}

// DeleteCategory removes a category that no post references. A referenced
// category is a conflict; the caller must move or delete the posts first.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.postRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.NewConflictError("Category has posts associated with it")
	}
	return s.categoryRepo.Delete(ctx, id)
}
