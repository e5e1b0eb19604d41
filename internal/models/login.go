package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"farmer_an"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	Success bool       `json:"success" example:"true"`
	Message string     `json:"message" example:"Login successful"`
	Token   string     `json:"token" example:"JWT_TOKEN"`
	User    PublicUser `json:"user"`
}

// MeResponse wraps the caller's profile.
// swagger:model MeResponse
type MeResponse struct {
	Success bool    `json:"success" example:"true"`
	User    Profile `json:"user"`
}
