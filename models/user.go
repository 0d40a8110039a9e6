package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleDriver   UserRole = "driver"
	RoleManager  UserRole = "manager"
)

// roleRank orders the roles by privilege: drivers hold every customer
// permission, managers hold every driver permission.
var roleRank = map[UserRole]int{
	RoleCustomer: 0,
	RoleDriver:   1,
	RoleManager:  2,
}

// ParseRole maps free text onto the closed role set.
func ParseRole(s string) (UserRole, bool) {
	r := UserRole(s)
	_, ok := roleRank[r]
	return r, ok
}

// AtLeast reports whether r carries at minimum the privilege of min.
func (r UserRole) AtLeast(min UserRole) bool {
	return roleRank[r] >= roleRank[min]
}

type User struct {
	Login         string    `json:"login" gorm:"primaryKey"`
	Password      string    `json:"-" gorm:"not null"`
	Role          UserRole  `json:"role" gorm:"not null;default:'customer'"`
	FavoriteItems string    `json:"favorite_items"`
	PhoneNum      string    `json:"phone_num"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
