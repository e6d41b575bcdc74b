package service

import (
	"context"
	"strings"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/google/uuid"
)

type TagService struct {
	tagRepo  repository.TagRepository
	postRepo repository.PostRepository
}

func NewTagService(tagRepo repository.TagRepository, postRepo repository.PostRepository) *TagService {
	return &TagService{
		tagRepo:  tagRepo,
		postRepo: postRepo,
	}
}

func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.List(ctx)
}

func (s *TagService) GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	return s.tagRepo.GetByID(ctx, id)
}

// CreateTag adds a tag; names are unique case-insensitively.
func (s *TagService) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if len(name) > maxNameLen {
		return nil, models.NewValidationError("Name too long (max 120 characters)")
	}

	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return s.tagRepo.GetByID(ctx, tag.ID)
}

// DeleteTag removes a tag that no post references.
func (s *TagService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tagRepo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.postRepo.CountByTag(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.NewConflictError("Tag has posts associated with it")
	}
	return s.tagRepo.Delete(ctx, id)
}
