package auth

import (
	"context"
	"slices"

	"github.com/annothub/annotator-backend/pkg/ctxutil"
)

// CapAdministrateUserInput grants moderation rights over annotations and
// comments. Holders may delete any user's input.
const CapAdministrateUserInput = "mod/annotator:administrateuserinput"

// Identity describes the authenticated user as asserted by the host LMS:
// the user ID and the capabilities granted in the current module context.
type Identity struct {
	UserID       int64
	Capabilities []string
}

// Can reports whether the identity holds the named capability.
func (i Identity) Can(capability string) bool {
	return slices.Contains(i.Capabilities, capability)
}

// ToContext stores the identity in the context for downstream services.
func (i Identity) ToContext(ctx context.Context) context.Context {
	ctx = ctxutil.WithUserID(ctx, i.UserID)
	return ctxutil.WithCapabilities(ctx, i.Capabilities)
}

// FromContext reconstructs the identity from the context.
// Returns false if no user is bound.
func FromContext(ctx context.Context) (Identity, bool) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Identity{}, false
	}
	return Identity{
		UserID:       userID,
		Capabilities: ctxutil.CapabilitiesFromCtx(ctx),
	}, true
}
