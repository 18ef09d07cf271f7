package auth

import "github.com/openboard/board-service/internal/core/domain"

// Action is the kind of operation a principal wants to perform on a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Decision is the outcome of an authorization check.
type Decision bool

const (
	Allow Decision = true
	Deny  Decision = false
)

// Decide applies the ownership policy. Pure function: no I/O, no state.
//
// Create and read are open to any authenticated principal. Update and delete
// require the principal to own the resource or hold the admin role. Ownership
// is exact string equality on the stored username; no folding or trimming.
func Decide(p Principal, resourceOwner string, action Action) Decision {
	switch action {
	case ActionCreate, ActionRead:
		return Allow
	case ActionUpdate, ActionDelete:
		if p.Username == resourceOwner || p.Role == domain.RoleAdmin {
			return Allow
		}
		return Deny
	default:
		return Deny
	}
}
