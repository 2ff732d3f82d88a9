// Package service implements the business logic layer.
package service

import "inkwell/internal/models"

// Actor identifies the authenticated caller of a service operation.
type Actor struct {
	ID   string
	Role string
}

// CanModify reports whether the actor may mutate a resource owned by
// ownerID. Admins may mutate anything; everyone else only their own.
func (a Actor) CanModify(ownerID string) bool {
	return a.ID == ownerID || a.Role == models.RoleAdmin
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}
