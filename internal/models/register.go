package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50" example:"farmer_an"`
	Email    string  `json:"email" validate:"required,email,max=100" example:"an@example.com"`
	Password string  `json:"password" validate:"required,min=6,maxbytes=72" example:"secret123"`
	Role     Role    `json:"role" validate:"required,role" example:"farmer"`
	FullName string  `json:"full_name" validate:"required,max=100" example:"Nguyen Van An"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20" example:"0901234567"`
	Address  *string `json:"address,omitempty" example:"Soc Trang"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	Success bool       `json:"success" example:"true"`
	Message string     `json:"message" example:"User registered successfully"`
	User    PublicUser `json:"user"`
}
