package server

import (
	"blogapi/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /api/v1/categories. Every category carries its
// current count of referencing posts.
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryService.ListCategories(c.Context())
	if err != nil {
		return s.fail(c, err)
	}

	message := models.MsgCategoriesFound
	if len(categories) == 0 {
		message = models.MsgNoCategoriesFound
		categories = []models.Category{}
	}
	return models.Respond(c, fiber.StatusOK, message, categories)
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("Invalid request body"))
	}

	category, err := s.categoryService.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return s.fail(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, models.MsgCategoryAdded, category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id. A category still
// referenced by posts cannot be deleted.
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.categoryService.DeleteCategory(c.Context(), id); err != nil {
		return s.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
