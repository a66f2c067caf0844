// Package authz holds the pure authorization predicate used to gate
// commands by role. It is deliberately decoupled from any routing or UI
// mechanism so it can be tested on its own.
package authz

import "github.com/quarkpapers/quark/internal/client/models"

// CanAccess reports whether identity may use a surface restricted to
// requiredRoles. A nil identity (not logged in) never passes. An empty role
// list means any authenticated identity is allowed.
func CanAccess(identity *models.Identity, requiredRoles ...models.Role) bool {
	if identity == nil {
		return false
	}
	if len(requiredRoles) == 0 {
		return true
	}
	for _, role := range requiredRoles {
		if identity.Role == role {
			return true
		}
	}
	return false
}
