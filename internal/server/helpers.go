package server

import (
	"errors"
	"log/slog"
	"strings"

	"blogapi/internal/auth"
	"blogapi/internal/middleware"
	"blogapi/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// identity returns the authenticated caller set by AuthRequired.
func (s *Server) identity(c *fiber.Ctx) auth.Identity {
	if uid, ok := c.Locals("userID").(uuid.UUID); ok {
		return uid
	}
	return auth.Anonymous
}

// parseUUID extracts a route parameter by name as a UUID.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		_ = models.RespondError(c, models.NewValidationError("Invalid "+humanizeParam(param)))
		return uuid.Nil, errResponseWritten
	}
	return id, nil
}

// queryUUID parses an optional UUID query parameter. A missing parameter
// yields (nil, nil); a present but malformed one yields an error.
func queryUUID(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, models.NewValidationError("Invalid " + humanizeParam(name))
	}
	return &id, nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "categoryId" -> "category ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		return strings.ToLower(param[:len(param)-2]) + " ID"
	}
	return param
}

// fail logs internal errors with request context and writes the mapped
// error response. Domain errors pass through without logging noise.
func (s *Server) fail(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeInternal {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}
	return models.RespondError(c, err)
}
