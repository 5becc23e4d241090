package identity

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleParticipant Role = "participant"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleParticipant
}

// Bearer token payload. Subject carries the numeric identity id.
type Claims struct {
	jwt.RegisteredClaims
	Role  Role   `json:"role"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Caller of a request as established by a verified token
type Identity struct {
	Role  Role
	Name  string
	Email string
	ID    int64
}

func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
