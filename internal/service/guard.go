// Package service implements the application's domain operations.
package service

import (
	"blogapi/internal/auth"
	"blogapi/internal/models"

	"github.com/google/uuid"
)

// requireOwner rejects callers that do not own the resource. The caller
// is already authenticated at this point, so a mismatch is a permission
// problem, never a credential one.
func requireOwner(caller auth.Identity, ownerID uuid.UUID) error {
	if caller != ownerID {
		return models.NewForbiddenError("You do not have permission to modify this post")
	}
	return nil
}
