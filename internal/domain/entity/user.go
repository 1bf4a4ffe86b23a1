package entity

import "time"

// Roles válidos para User.
const (
	RoleInfluencer = "influencer"
	RoleBusiness   = "business"
	RoleAdmin      = "admin"
)

// ValidRole indica si el rol pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleInfluencer, RoleBusiness, RoleAdmin:
		return true
	}
	return false
}

// User representa un principal registrable de la plataforma.
// Email siempre se guarda normalizado a minúsculas; PasswordHash nunca
// contiene el password en claro ni se serializa hacia afuera.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // influencer, business, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
