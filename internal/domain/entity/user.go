package entity

import "time"

// Roles válidos para User. Conjunto cerrado; cualquier otro valor se rechaza con 400.
const (
	RoleVendedor = "vendedor"
	RoleDueno    = "dueno"
	RoleAdmin    = "admin"
)

// User representa una cuenta del sistema.
type User struct {
	ID           int64
	Username     string    // único en todo el sistema
	PasswordHash string    // bcrypt hash, nunca plano en dominio después de persistir
	Role         string    // vendedor, dueno, admin
	CreatedAt    time.Time
}

// IsValidRole indica si role pertenece al conjunto cerrado de roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleVendedor, RoleDueno, RoleAdmin:
		return true
	}
	return false
}
