package user

import (
	"github.com/google/uuid"
)

// Principal is the already-authenticated caller. Guests are viewers; staff are
// operators or admins.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

func NewPrincipal(id uuid.UUID, role Role) Principal {
	return Principal{ID: id, Role: role}
}

func (p Principal) IsStaff() bool {
	return p.Role.AtLeast(RoleOperator)
}

// CanActFor is true for the owner itself and for staff.
func (p Principal) CanActFor(ownerID uuid.UUID) bool {
	return p.ID == ownerID || p.IsStaff()
}
