package server

import (
	"blogapi/internal/auth"
	"blogapi/internal/middleware"
	"blogapi/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LoginResponse is the payload returned by a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// Login handles POST /api/v1/auth.
// Every failure path returns the same 401 so an attacker cannot tell a
// wrong password from an unknown email.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return models.RespondError(c, models.NewValidationError("Email and password are required"))
	}

	user, err := s.credentials.Verify(c.Context(), req.Email, req.Password)
	if err != nil {
		middleware.LoginAttempts.WithLabelValues("failure").Inc()
		return s.fail(c, err)
	}

	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return s.fail(c, err)
	}
	middleware.LoginAttempts.WithLabelValues("success").Inc()

	return models.Respond(c, fiber.StatusOK, models.MsgLoginSuccessful, LoginResponse{
		Token:     token,
		ExpiresIn: auth.ExpiresInSeconds,
	})
}
