package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// authorize is the single ownership check applied to every protected
// operation. It reads the authenticated username from ctx and compares it
// against the owner of the targeted resource.
//
// Returns:
//   - ErrUnauthenticated if ctx carries no authenticated user.
//   - ErrForbidden if the authenticated user is not targetOwner.
//   - nil when the authenticated user owns the resource.
func authorize(ctx context.Context, targetOwner string) error {
	username, ok := utils.GetSessionUserFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	if username != targetOwner {
		return ErrForbidden
	}

	return nil
}
