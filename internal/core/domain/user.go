package domain

import "time"

// User models an authenticated portal identity. PasswordHash never leaves
// the process: it is excluded from JSON and from the public profile view.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Tenant       string    `json:"tenant,omitempty"`
	Store        string    `json:"store,omitempty"`
	Business     string    `json:"business,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the outward view of a User returned by the login and profile
// endpoints.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	RoleDisplay string    `json:"roleDisplay"`
	Phone       string    `json:"phone,omitempty"`
	Tenant      string    `json:"tenant,omitempty"`
	Store       string    `json:"store,omitempty"`
	Business    string    `json:"business,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PublicProfile strips credentials and adds the display role.
func (u *User) PublicProfile() *Profile {
	return &Profile{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		RoleDisplay: u.Role.Display(),
		Phone:       u.Phone,
		Tenant:      u.Tenant,
		Store:       u.Store,
		Business:    u.Business,
		Avatar:      u.Avatar,
		CreatedAt:   u.CreatedAt,
	}
}
