package entity

import "time"

// Roles de usuario. La autorización se decide una sola vez en el borde de la
// ruta (RequireRole), nunca campo por campo.
const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleOperator = "OPERATOR"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ADMIN | MANAGER | OPERATOR
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
