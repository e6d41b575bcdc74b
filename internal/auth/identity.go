// Package auth implements credential verification and token issuance.
package auth

import "github.com/google/uuid"

// Identity is the authenticated caller of a request. Handlers resolve it
// once at the boundary and pass it down explicitly; nothing below the
// handler layer reads ambient request state.
type Identity = uuid.UUID

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = uuid.Nil

// IsAnonymous reports whether the identity belongs to an unauthenticated caller.
func IsAnonymous(id Identity) bool {
	return id == uuid.Nil
}
