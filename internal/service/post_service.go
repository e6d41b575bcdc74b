package service

import (
	"context"
	"strings"

	"blogapi/internal/auth"
	"blogapi/internal/models"
	"blogapi/internal/observability"
	"blogapi/internal/repository"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// wordsPerMinute is the reading speed assumed when deriving reading time.
const wordsPerMinute = 200

const (
	maxTitleLen   = 300
	maxContentLen = 50000 // 50K characters
)

type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

type CreatePostInput struct {
	Title      string
	Content    string
	Status     models.PostStatus
	CategoryID uuid.UUID
	TagIDs     []uuid.UUID
}

// UpdatePostInput carries only the fields the client sent; nil means
// "leave unchanged". A present TagIDs pointing at an empty slice clears
// the tag set.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	Status     *models.PostStatus
	CategoryID *uuid.UUID
	TagIDs     *[]uuid.UUID
}

// ListPostsInput holds the optional dimensions of a published-post query.
type ListPostsInput struct {
	CategoryID *uuid.UUID
	AuthorID   *uuid.UUID
	TagID      *uuid.UUID
}

func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// ListPublished returns published posts matching the optional dimensions.
// The status is pinned here; client input can narrow the listing but never
// widen it into drafts.
func (s *PostService) ListPublished(ctx context.Context, in ListPostsInput) ([]models.Post, error) {
	return s.postRepo.Find(ctx, repository.PostFilter{
		Status:     models.PostStatusPublished,
		CategoryID: in.CategoryID,
		AuthorID:   in.AuthorID,
		TagID:      in.TagID,
	})
}

// ListDrafts returns the caller's own drafts. The author dimension comes
// from the authenticated identity, never from the request.
func (s *PostService) ListDrafts(ctx context.Context, caller auth.Identity) ([]models.Post, error) {
	author := uuid.UUID(caller)
	return s.postRepo.Find(ctx, repository.PostFilter{
		Status:   models.PostStatusDraft,
		AuthorID: &author,
	})
}

// GetPost returns the post if the caller may see it. A draft is visible
// only to its author; everyone else gets the same not-found as for a
// missing ID, so drafts cannot be probed for existence.
func (s *PostService) GetPost(ctx context.Context, caller auth.Identity, id uuid.UUID) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Status == models.PostStatusDraft && post.AuthorID != caller {
		return nil, models.NewNotFoundError("Post", id)
	}
	return post, nil
}

func (s *PostService) CreatePost(ctx context.Context, caller auth.Identity, in CreatePostInput) (*models.Post, error) {
	span, ctx := observability.NewSpan(ctx, "PostService.CreatePost")
	defer span.End()

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	status := in.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if !status.IsValid() {
		return nil, models.NewValidationError("Invalid status")
	}

	if in.CategoryID == uuid.Nil {
		return nil, models.NewValidationError("Category is required")
	}
	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       in.Title,
		Content:     in.Content,
		Status:      status,
		ReadingTime: calculateReadingTime(in.Content),
		AuthorID:    caller,
		CategoryID:  category.ID,
		Tags:        tags,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(attribute.String("post.id", post.ID.String()))

	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost merges the submitted fields into the stored post. Only the
// author may update; reading time follows the content whenever it changes.
func (s *PostService) UpdatePost(ctx context.Context, caller auth.Identity, id uuid.UUID, in UpdatePostInput) (*models.Post, error) {
	span, ctx := observability.NewSpan(ctx, "PostService.UpdatePost")
	defer span.End()

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(caller, post.AuthorID); err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title is required")
		}
		if len(*in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 300 characters)")
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, models.NewValidationError("Content is required")
		}
		if len(*in.Content) > maxContentLen {
			return nil, models.NewValidationError("Content too long (max 50000 characters)")
		}
		post.Content = *in.Content
		post.ReadingTime = calculateReadingTime(*in.Content)
	}
	if in.Status != nil {
		if !in.Status.IsValid() {
			return nil, models.NewValidationError("Invalid status")
		}
		post.Status = *in.Status
	}
	if in.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		post.CategoryID = category.ID
		post.Category = *category
	}
	if in.TagIDs != nil {
		tags, err := s.resolveTags(ctx, *in.TagIDs)
		if err != nil {
			return nil, err
		}
		post.Tags = tags
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		span.SetError(err)
		return nil, err
	}
	return s.postRepo.GetByID(ctx, id)
}

// DeletePost removes the caller's post. Deleting keeps category and tag
// rows untouched; only their computed post counts change.
func (s *PostService) DeletePost(ctx context.Context, caller auth.Identity, id uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(caller, post.AuthorID); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}

// resolveTags loads the referenced tags and fails if any ID is unknown.
func (s *PostService) resolveTags(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tags, err := s.tagRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		found := make(map[uuid.UUID]bool, len(tags))
		for _, t := range tags {
			found[t.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, models.NewNotFoundError("Tag", id)
			}
		}
	}
	return tags, nil
}

// calculateReadingTime derives the estimated minutes to read the content,
// rounding up. Empty content reads in zero minutes; anything else takes at
// least one.
func calculateReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
