package server

import (
	"blogapi/internal/models"
	"blogapi/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type createPostRequest struct {
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Status     models.PostStatus `json:"status"`
	CategoryID uuid.UUID         `json:"categoryId"`
	TagIDs     []uuid.UUID       `json:"tagIds"`
}

// updatePostRequest uses pointers so absent fields stay untouched while
// present-but-empty values still reach validation.
type updatePostRequest struct {
	Title      *string            `json:"title"`
	Content    *string            `json:"content"`
	Status     *models.PostStatus `json:"status"`
	CategoryID *uuid.UUID         `json:"categoryId"`
	TagIDs     *[]uuid.UUID       `json:"tagIds"`
}

// GetPosts handles GET /api/v1/posts. Lists published posts, optionally
// narrowed by categoryId, userId and tagId query filters.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	categoryID, err := queryUUID(c, "categoryId")
	if err != nil {
		return models.RespondError(c, err)
	}
	authorID, err := queryUUID(c, "userId")
	if err != nil {
		return models.RespondError(c, err)
	}
	tagID, err := queryUUID(c, "tagId")
	if err != nil {
		return models.RespondError(c, err)
	}

	posts, err := s.postService.ListPublished(c.Context(), service.ListPostsInput{
		CategoryID: categoryID,
		AuthorID:   authorID,
		TagID:      tagID,
	})
	if err != nil {
		return s.fail(c, err)
	}

	message := models.MsgPostsFound
	if len(posts) == 0 {
		message = models.MsgNoPostsFound
		posts = []models.Post{}
	}
	return models.Respond(c, fiber.StatusOK, message, posts)
}

// GetDrafts handles GET /api/v1/posts/drafts. Only the caller's drafts are
// listed; no filter can widen it to someone else's.
func (s *Server) GetDrafts(c *fiber.Ctx) error {
	posts, err := s.postService.ListDrafts(c.Context(), s.identity(c))
	if err != nil {
		return s.fail(c, err)
	}

	message := models.MsgPostsFound
	if len(posts) == 0 {
		message = models.MsgNoPostsFound
		posts = []models.Post{}
	}
	return models.Respond(c, fiber.StatusOK, message, posts)
}

// GetPost handles GET /api/v1/posts/:id. The route takes no required auth,
// but a bearer token, when present, lets an author view their own draft.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), s.optionalIdentity(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	return models.Respond(c, fiber.StatusOK, models.MsgPostFound, post)
}

// CreatePost handles POST /api/v1/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), s.identity(c), service.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Status:     req.Status,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, models.MsgPostAdded, post)
}

// UpdatePost handles PUT /api/v1/posts/:id. Only the author may update.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	var req updatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), s.identity(c), id, service.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Status:     req.Status,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
	})
	if err != nil {
		return s.fail(c, err)
	}
	return models.Respond(c, fiber.StatusOK, models.MsgPostUpdated, post)
}

// DeletePost handles DELETE /api/v1/posts/:id. Only the author may delete.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), s.identity(c), id); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
