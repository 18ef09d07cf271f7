package auth

import (
	"testing"

	"github.com/openboard/board-service/internal/core/domain"
)

func TestDecide(t *testing.T) {
	alice := Principal{Username: "alice", Role: domain.RoleUser}
	bob := Principal{Username: "bob", Role: domain.RoleUser}
	admin := Principal{Username: "root", Role: domain.RoleAdmin}

	tests := []struct {
		name      string
		principal Principal
		owner     string
		action    Action
		want      Decision
	}{
		{"create always allowed", bob, "alice", ActionCreate, Allow},
		{"read always allowed", bob, "alice", ActionRead, Allow},
		{"owner may update", alice, "alice", ActionUpdate, Allow},
		{"owner may delete", alice, "alice", ActionDelete, Allow},
		{"non-owner may not update", bob, "alice", ActionUpdate, Deny},
		{"non-owner may not delete", bob, "alice", ActionDelete, Deny},
		{"admin may update anything", admin, "alice", ActionUpdate, Allow},
		{"admin may delete anything", admin, "alice", ActionDelete, Allow},
		{"ownership is exact match", Principal{Username: "Alice", Role: domain.RoleUser}, "alice", ActionUpdate, Deny},
		{"trailing space is a different owner", Principal{Username: "alice ", Role: domain.RoleUser}, "alice", ActionDelete, Deny},
		{"unknown action denied", alice, "alice", Action("purge"), Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.principal, tt.owner, tt.action); got != tt.want {
				t.Fatalf("Decide(%+v, %q, %q) = %v, want %v", tt.principal, tt.owner, tt.action, got, tt.want)
			}
			// Pure function: the same inputs always yield the same decision.
			if again := Decide(tt.principal, tt.owner, tt.action); again != tt.want {
				t.Fatalf("decision not stable on repeat call")
			}
		})
	}
}
