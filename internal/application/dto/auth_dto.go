package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserClaims identidad decodificada del token de sesión.
type UserClaims struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse salida de login: la cookie lleva el token, el body la identidad.
type LoginResponse struct {
	Success bool       `json:"success"`
	User    UserClaims `json:"user"`
}

// MeResponse salida de GET /api/auth/me.
type MeResponse struct {
	User UserClaims `json:"user"`
}
