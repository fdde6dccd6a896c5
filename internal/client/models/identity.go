// Package models defines the data exchanged with the identity and
// customer-record services and the records kept in local storage.
package models

import "slices"

// Role tags issued by the identity service.
const (
	RoleAdmin    = "ROLE_ADMIN"
	RoleAnalyst  = "ROLE_ANALISTA"
	RoleStaff    = "ROLE_FUNCIONARIO"
	RoleCustomer = "ROLE_CLIENTE"
)

// IdentityRecord is an authenticated principal as returned by the identity
// service (POST /api/auth/login, GET /api/users/public/{publicId}).
type IdentityRecord struct {
	PublicID         string   `json:"publicId"`
	Login            string   `json:"login"`
	Email            *string  `json:"email"`
	Theme            string   `json:"theme"`
	TwoFactorEnabled bool     `json:"twoFactorEnabled"`
	Roles            []string `json:"roles"`
}

// Valid reports whether r may be treated as an authenticated principal:
// publicId and login are non-empty and at least one role is present.
func (r *IdentityRecord) Valid() bool {
	return r != nil && r.PublicID != "" && r.Login != "" && len(r.Roles) > 0
}

// Clone returns a deep copy, so holders never share the roles slice or the
// email pointer.
func (r *IdentityRecord) Clone() *IdentityRecord {
	if r == nil {
		return nil
	}
	c := *r
	c.Roles = slices.Clone(r.Roles)
	if r.Email != nil {
		email := *r.Email
		c.Email = &email
	}
	return &c
}

// Credentials is the login payload. Both fields are required; they are
// validated by the prompt, not here.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ManualPasswordReset is the body of POST /api/password/alterar.
type ManualPasswordReset struct {
	PublicID    string `json:"publicId"`
	NewPassword string `json:"newPassword"`
}
