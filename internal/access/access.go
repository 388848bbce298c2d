// Package access holds the role/ownership rules gating mutating operations.
package access

import "istanfix/internal/models"

// Actor is the authenticated caller, as established by the JWT middleware.
type Actor struct {
	ID   int64
	Role string
}

func (a Actor) IsGovernment() bool {
	return a.Role == models.RoleGovernment
}

// CanUpdateStatus: only government users may triage report status,
// ownership does not matter.
func CanUpdateStatus(actor Actor) bool {
	return actor.IsGovernment()
}

// CanDeleteReport: the report owner or any government user. A report whose
// owner account was deleted has a nil owner and can only be removed by
// government users.
func CanDeleteReport(actor Actor, ownerID *int64) bool {
	if actor.IsGovernment() {
		return true
	}
	return ownerID != nil && *ownerID == actor.ID
}

// CanDeleteComment: the comment author or any government user.
func CanDeleteComment(actor Actor, authorID int64) bool {
	return actor.IsGovernment() || actor.ID == authorID
}
