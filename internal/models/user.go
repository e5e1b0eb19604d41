package models

import "time"

// Role tags what part of the supply chain a user acts for.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleFarmer      Role = "farmer"
	RoleMill        Role = "mill"
	RoleTransport   Role = "transport"
	RoleDistributor Role = "distributor"
	RoleConsumer    Role = "consumer"
)

// Roles lists every accepted role in declaration order.
var Roles = []Role{RoleAdmin, RoleFarmer, RoleMill, RoleTransport, RoleDistributor, RoleConsumer}

// Valid reports whether r is one of Roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// UserDB represents a row of the users table.
type UserDB struct {
	ID        int64      `db:"id"`
	Username  string     `db:"username"`
	Email     string     `db:"email"`
	Password  string     `db:"password"` // bcrypt hash
	Role      Role       `db:"role"`
	FullName  string     `db:"full_name"`
	Phone     *string    `db:"phone"`
	Address   *string    `db:"address"`
	IsActive  bool       `db:"is_active"`
	CreatedAt time.Time  `db:"created_at"`
	LastLogin *time.Time `db:"last_login"`
}

// NewUser holds the columns written on registration.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	FullName     string
	Phone        *string
	Address      *string
}

// PublicUser is the subset of a user returned by register and login.
// swagger:model PublicUser
type PublicUser struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"farmer_an"`
	Email    string `json:"email" example:"an@example.com"`
	Role     Role   `json:"role" example:"farmer"`
	FullName string `json:"full_name" example:"Nguyen Van An"`
}

// Profile is the authenticated user's own view of their account.
// swagger:model Profile
type Profile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips the password hash and bookkeeping columns.
func (u *UserDB) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		FullName: u.FullName,
	}
}

// Profile returns the fields exposed by GET /api/auth/me.
func (u *UserDB) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}
