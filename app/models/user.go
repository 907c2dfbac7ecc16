package models

// User roles. The storefront carries the role only for conditional
// route access; authorisation proper lives in the remote API.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User mirrors the authenticated account. Email is immutable after
// registration and is never sent back on profile updates.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
	Role    string `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
