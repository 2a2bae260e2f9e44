package types

import "github.com/fooddash-app/fooddash-backend/pkg/enums"

// Actor is the identity record supplied by the authentication collaborator.
// Credentials are never validated or stored here.
type Actor struct {
	ID    string     `json:"id"`
	Email string     `json:"email"`
	Name  string     `json:"name"`
	Role  enums.Role `json:"role"`
}
