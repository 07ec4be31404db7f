package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleContador = "contador"
	RoleCajero   = "cajero"
	RoleVendedor = "vendedor"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string // admin, contador, cajero, vendedor
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indica si el rol existe.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleContador, RoleCajero, RoleVendedor:
		return true
	}
	return false
}
