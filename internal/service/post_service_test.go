package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uuid.UUID) (*models.Post, error)
	findFn            func(context.Context, repository.PostFilter) ([]models.Post, error)
	updateFn          func(context.Context, *models.Post) error
	deleteFn          func(context.Context, uuid.UUID) error
	countByCategoryFn func(context.Context, uuid.UUID) (int64, error)
	countByTagFn      func(context.Context, uuid.UUID) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Find(ctx context.Context, filter repository.PostFilter) ([]models.Post, error) {
	return s.findFn(ctx, filter)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return s.countByCategoryFn(ctx, categoryID)
}
func (s *postRepoStub) CountByTag(ctx context.Context, tagID uuid.UUID) (int64, error) {
	return s.countByTagFn(ctx, tagID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Post, error) { return &models.Post{ID: id}, nil },
		findFn: func(_ context.Context, _ repository.PostFilter) ([]models.Post, error) {
			return nil, nil
		},
		updateFn:          func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:          func(_ context.Context, _ uuid.UUID) error { return nil },
		countByCategoryFn: func(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil },
		countByTagFn:      func(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	listFn    func(context.Context) ([]models.Category, error)
	getByIDFn func(context.Context, uuid.UUID) (*models.Category, error)
	createFn  func(context.Context, *models.Category) error
	deleteFn  func(context.Context, uuid.UUID) error
}

func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		listFn: func(_ context.Context) ([]models.Category, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Category, error) {
			return &models.Category{ID: id, Name: "Tech"}, nil
		},
		createFn: func(_ context.Context, _ *models.Category) error { return nil },
		deleteFn: func(_ context.Context, _ uuid.UUID) error { return nil },
	}
}

// tagRepoStub is a stub for repository.TagRepository.
type tagRepoStub struct {
	listFn     func(context.Context) ([]models.Tag, error)
	getByIDFn  func(context.Context, uuid.UUID) (*models.Tag, error)
	getByIDsFn func(context.Context, []uuid.UUID) ([]models.Tag, error)
	createFn   func(context.Context, *models.Tag) error
	deleteFn   func(context.Context, uuid.UUID) error
}

func (s *tagRepoStub) List(ctx context.Context) ([]models.Tag, error) {
	return s.listFn(ctx)
}
func (s *tagRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	return s.getByIDFn(ctx, id)
}
func (s *tagRepoStub) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *tagRepoStub) Create(ctx context.Context, tag *models.Tag) error {
	return s.createFn(ctx, tag)
}
func (s *tagRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func noopTagRepo() *tagRepoStub {
	return &tagRepoStub{
		listFn:    func(_ context.Context) ([]models.Tag, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Tag, error) { return &models.Tag{ID: id}, nil },
		getByIDsFn: func(_ context.Context, ids []uuid.UUID) ([]models.Tag, error) {
			tags := make([]models.Tag, len(ids))
			for i, id := range ids {
				tags[i] = models.Tag{ID: id}
			}
			return tags, nil
		},
		createFn: func(_ context.Context, _ *models.Tag) error { return nil },
		deleteFn: func(_ context.Context, _ uuid.UUID) error { return nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func TestCalculateReadingTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t  ", 0},
		{"single word", "hello", 1},
		{"exactly 200 words", strings.Repeat("word ", 200), 1},
		{"201 words rounds up", strings.Repeat("word ", 201), 2},
		{"500 words", strings.Repeat("word ", 500), 3},
		{"exactly 400 words", strings.Repeat("word ", 400), 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, calculateReadingTime(tc.content))
		})
	}
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo(), noopCategoryRepo(), noopTagRepo())
	ctx := context.Background()
	caller := uuid.New()
	categoryID := uuid.New()

	tests := []struct {
		name  string
		input CreatePostInput
	}{
		{
			name:  "empty title",
			input: CreatePostInput{Content: "c", CategoryID: categoryID},
		},
		{
			name:  "title too long",
			input: CreatePostInput{Title: strings.Repeat("x", 301), Content: "c", CategoryID: categoryID},
		},
		{
			name:  "empty content",
			input: CreatePostInput{Title: "T", CategoryID: categoryID},
		},
		{
			name:  "content too long",
			input: CreatePostInput{Title: "T", Content: strings.Repeat("x", 50001), CategoryID: categoryID},
		},
		{
			name:  "invalid status",
			input: CreatePostInput{Title: "T", Content: "c", Status: "banana", CategoryID: categoryID},
		},
		{
			name:  "missing category",
			input: CreatePostInput{Title: "T", Content: "c"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreatePost(ctx, caller, tc.input)
			assertAppErrorCode(t, err, models.CodeValidation)
		})
	}
}

func TestPostService_CreatePost_DerivesFields(t *testing.T) {
	t.Parallel()

	var created *models.Post
	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, post *models.Post) error {
		post.ID = uuid.New()
		created = post
		return nil
	}
	repo.getByIDFn = func(_ context.Context, _ uuid.UUID) (*models.Post, error) {
		return created, nil
	}

	svc := NewPostService(repo, noopCategoryRepo(), noopTagRepo())
	caller := uuid.New()
	categoryID := uuid.New()
	tagID := uuid.New()

	post, err := svc.CreatePost(context.Background(), caller, CreatePostInput{
		Title:      "My Post",
		Content:    strings.Repeat("word ", 500),
		CategoryID: categoryID,
		TagIDs:     []uuid.UUID{tagID},
	})
	require.NoError(t, err)

	// Status defaults to draft; reading time is derived from the content;
	// the author is the caller, not anything client-supplied.
	assert.Equal(t, models.PostStatusDraft, post.Status)
	assert.Equal(t, 3, post.ReadingTime)
	assert.Equal(t, caller, post.AuthorID)
	assert.Equal(t, categoryID, post.CategoryID)
	require.Len(t, post.Tags, 1)
	assert.Equal(t, tagID, post.Tags[0].ID)
}

func TestPostService_CreatePost_UnknownReferences(t *testing.T) {
	t.Parallel()

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()
		cr := noopCategoryRepo()
		cr.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Category, error) {
			return nil, models.NewNotFoundError("Category", id)
		}
		svc := NewPostService(noopPostRepo(), cr, noopTagRepo())

		_, err := svc.CreatePost(context.Background(), uuid.New(), CreatePostInput{
			Title: "T", Content: "c", CategoryID: uuid.New(),
		})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("unknown tag", func(t *testing.T) {
		t.Parallel()
		tr := noopTagRepo()
		tr.getByIDsFn = func(_ context.Context, _ []uuid.UUID) ([]models.Tag, error) {
			return nil, nil
		}
		svc := NewPostService(noopPostRepo(), noopCategoryRepo(), tr)

		_, err := svc.CreatePost(context.Background(), uuid.New(), CreatePostInput{
			Title: "T", Content: "c", CategoryID: uuid.New(), TagIDs: []uuid.UUID{uuid.New()},
		})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})
}

func TestPostService_GetPost_DraftVisibility(t *testing.T) {
	t.Parallel()

	author := uuid.New()
	postID := uuid.New()
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
		return &models.Post{ID: id, Status: models.PostStatusDraft, AuthorID: author}, nil
	}
	svc := NewPostService(repo, noopCategoryRepo(), noopTagRepo())
	ctx := context.Background()

	t.Run("author sees own draft", func(t *testing.T) {
		t.Parallel()
		post, err := svc.GetPost(ctx, author, postID)
		require.NoError(t, err)
		assert.Equal(t, postID, post.ID)
	})

	t.Run("anonymous gets not found", func(t *testing.T) {
		t.Parallel()
		_, err := svc.GetPost(ctx, uuid.Nil, postID)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("other user gets not found", func(t *testing.T) {
		t.Parallel()
		_, err := svc.GetPost(ctx, uuid.New(), postID)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})
}

func TestPostService_ListDrafts_PinsCaller(t *testing.T) {
	t.Parallel()

	caller := uuid.New()
	var gotFilter repository.PostFilter
	repo := noopPostRepo()
	repo.findFn = func(_ context.Context, filter repository.PostFilter) ([]models.Post, error) {
		gotFilter = filter
		return nil, nil
	}
	svc := NewPostService(repo, noopCategoryRepo(), noopTagRepo())

	_, err := svc.ListDrafts(context.Background(), caller)
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusDraft, gotFilter.Status)
	require.NotNil(t, gotFilter.AuthorID)
	assert.Equal(t, caller, *gotFilter.AuthorID)
}

func TestPostService_ListPublished_PinsStatus(t *testing.T) {
	t.Parallel()

	var gotFilter repository.PostFilter
	repo := noopPostRepo()
	repo.findFn = func(_ context.Context, filter repository.PostFilter) ([]models.Post, error) {
		gotFilter = filter
		return nil, nil
	}
	svc := NewPostService(repo, noopCategoryRepo(), noopTagRepo())

	categoryID := uuid.New()
	_, err := svc.ListPublished(context.Background(), ListPostsInput{CategoryID: &categoryID})
	require.NoError(t, err)
	assert.Equal(t, models.PostStatusPublished, gotFilter.Status)
	require.NotNil(t, gotFilter.CategoryID)
	assert.Equal(t, categoryID, *gotFilter.CategoryID)
	assert.Nil(t, gotFilter.AuthorID)
	assert.Nil(t, gotFilter.TagID)
}

func TestPostService_UpdatePost_Ownership(t *testing.T) {
	t.Parallel()

	author := uuid.New()
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
		return &models.Post{ID: id, Status: models.PostStatusPublished, AuthorID: author, Content: "old", ReadingTime: 1}, nil
	}
	svc := NewPostService(repo, noopCategoryRepo(), noopTagRepo())
	ctx := context.Background()
	title := "New title"

	t.Run("owner can update", func(t *testing.T) {
		_, err := svc.UpdatePost(ctx, author, uuid.New(), UpdatePostInput{Title: &title})
		assert.NoError(t, err)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		_, err := svc.UpdatePost(ctx, uuid.New(), uuid.New(), UpdatePostInput{Title: &title})
		assertAppErrorCode(t, err, models.CodeForbidden)
	})
}

func TestPostService_UpdatePost_RecomputesReadingTime(t *testing.T) {
	t.Parallel()

	author := uuid.New()
	var updated *models.Post
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
		if updated != nil {
			return updated, nil
		}
		return &models.Post{ID: id, Status: models.PostStatusDraft, AuthorID: author, Content: "short", ReadingTime: 1}, nil
	}
	repo.updateFn = func(_ context.Context, post *models.Post) error {
		updated = post
		return nil
	}
	svc := NewPostService(repo, noopCategoryRepo(), noopTagRepo())

	content := strings.Repeat("word ", 401)
	post, err := svc.UpdatePost(context.Background(), author, uuid.New(), UpdatePostInput{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, 3, post.ReadingTime)
}

func TestPostService_UpdatePost_Validation(t *testing.T) {
	t.Parallel()

	author := uuid.New()
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
		return &models.Post{ID: id, Status: models.PostStatusDraft, AuthorID: author}, nil
	}
	svc := NewPostService(repo, noopCategoryRepo(), noopTagRepo())
	ctx := context.Background()

	empty := ""
	badStatus := models.PostStatus("banana")

	_, err := svc.UpdatePost(ctx, author, uuid.New(), UpdatePostInput{Title: &empty})
	assertAppErrorCode(t, err, models.CodeValidation)

	_, err = svc.UpdatePost(ctx, author, uuid.New(), UpdatePostInput{Content: &empty})
	assertAppErrorCode(t, err, models.CodeValidation)

	_, err = svc.UpdatePost(ctx, author, uuid.New(), UpdatePostInput{Status: &badStatus})
	assertAppErrorCode(t, err, models.CodeValidation)
}

func TestPostService_DeletePost_Ownership(t *testing.T) {
	t.Parallel()

	author := uuid.New()
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
		return &models.Post{ID: id, AuthorID: author}, nil
	}
	svc := NewPostService(repo, noopCategoryRepo(), noopTagRepo())
	ctx := context.Background()

	t.Run("owner can delete", func(t *testing.T) {
		assert.NoError(t, svc.DeletePost(ctx, author, uuid.New()))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		err := svc.DeletePost(ctx, uuid.New(), uuid.New())
		assertAppErrorCode(t, err, models.CodeForbidden)
	})
}
