// user.go - User account and role models

package models

// Role names seeded at startup.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	FullName string `json:"full_name"`

	Roles         []Role         `gorm:"many2many:user_roles" json:"roles"`
	SellerProfile *SellerProfile `json:"seller_profile,omitempty"`
}

// HasRole reports whether the user holds the named role.
// Roles must have been preloaded for this to be meaningful.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// RoleNames returns the user's role names in load order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
