package dto

// RegisterRequest payload para registrar un usuario.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse representación pública de un usuario (sin hash).
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse token de acceso más los datos del usuario autenticado.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
