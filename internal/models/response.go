package models

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Response messages shared across handlers so wording stays uniform.
const (
	MsgLoginSuccessful = "Login successful"

	MsgPostsFound   = "Posts found."
	MsgNoPostsFound = "No posts found."
	MsgPostFound    = "Post found."
	MsgPostAdded    = "Post added."
	MsgPostUpdated  = "Post updated."

	MsgCategoriesFound   = "Categories found."
	MsgNoCategoriesFound = "No categories found."
	MsgCategoryAdded     = "Category added."

	MsgTagsFound   = "Tags found."
	MsgNoTagsFound = "No tags found."
	MsgTagAdded    = "Tag added."
)

// Response is the uniform envelope every non-204 endpoint returns.
type Response struct {
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
}

// Respond writes a success envelope with the given status, message and payload.
func Respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Success:   true,
		Timestamp: time.Now().UTC(),
		Message:   message,
		Data:      data,
	})
}

// RespondError writes a failure envelope, mapping the error kind to its HTTP
// status. Unexpected errors surface as a generic 500 message; internal
// details never reach the client.
func RespondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var appErr *AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus()
		if appErr.Code != CodeInternal {
			message = appErr.Message
		}
	}

	return c.Status(status).JSON(Response{
		Success:   false,
		Timestamp: time.Now().UTC(),
		Message:   message,
		Data:      nil,
	})
}
