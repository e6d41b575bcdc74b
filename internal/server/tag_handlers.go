package server

import (
	"blogapi/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTags handles GET /api/v1/tags.
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.tagService.ListTags(c.Context())
	if err != nil {
		return s.fail(c, err)
	}

	message := models.MsgTagsFound
	if len(tags) == 0 {
		message = models.MsgNoTagsFound
		tags = []models.Tag{}
	}
	return models.Respond(c, fiber.StatusOK, message, tags)
}

// CreateTag handles POST /api/v1/tags.
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("Invalid request body"))
	}

	tag, err := s.tagService.CreateTag(c.Context(), req.Name)
	if err != nil {
		return s.fail(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, models.MsgTagAdded, tag)
}

// DeleteTag handles DELETE /api/v1/tags/:id. A tag still referenced by
// posts cannot be deleted.
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tagService.DeleteTag(c.Context(), id); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
