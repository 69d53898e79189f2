package dto

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"` // por defecto OPERATOR
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse usuario sin campos sensibles.
type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// UpdateRoleRequest body para PATCH /api/users/:id/role.
type UpdateRoleRequest struct {
	Role string `json:"role"` // ADMIN | MANAGER | OPERATOR
}

// UpdateProfileRequest body para PATCH /api/users/me.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}
