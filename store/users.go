package store

import (
	"pizza-store/models"
)

// userFields are the columns a profile update may touch. Role is excluded on
// purpose: role changes go through SetRole so the demotion rule cannot be
// bypassed.
var userFields = map[string]bool{
	"favorite_items": true,
	"phone_num":      true,
	"password":       true,
	"login":          true,
}

// CreateUser registers a new account. Every new account is a customer with
// no favorite items, regardless of what the caller wants.
func (g *Gateway) CreateUser(login, password, phone string) error {
	user := models.User{
		Login:    login,
		Password: password,
		Role:     models.RoleCustomer,
		PhoneNum: phone,
	}
	return g.db.Create(&user).Error
}

// Authenticate returns the user matching login and password exactly, or
// ErrNotFound when no such row exists.
func (g *Gateway) Authenticate(login, password string) (*models.User, error) {
	var user models.User
	err := g.db.Where("login = ? AND password = ?", login, password).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *Gateway) GetUser(login string) (*models.User, error) {
	var user models.User
	if err := g.db.Where("login = ?", login).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *Gateway) UserExists(login string) (bool, error) {
	var n int64
	err := g.db.Model(&models.User{}).Where("login = ?", login).Count(&n).Error
	return n > 0, err
}

// RoleOf re-resolves the role for a login. The dispatcher calls this on
// every loop pass so a manager changing a live session's role takes effect
// immediately.
func (g *Gateway) RoleOf(login string) (models.UserRole, error) {
	var user models.User
	if err := g.db.Select("role").Where("login = ?", login).First(&user).Error; err != nil {
		return "", err
	}
	return user.Role, nil
}

// SetUserField applies a single-column profile update to the given login.
func (g *Gateway) SetUserField(login, column string, value string) error {
	if !userFields[column] {
		return ErrFieldNotAllowed
	}
	res := g.db.Model(&models.User{}).Where("login = ?", login).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetRole changes a user's role. A target currently holding the manager role
// is never changed, whatever the requested value.
func (g *Gateway) SetRole(login string, role models.UserRole) error {
	if _, ok := models.ParseRole(string(role)); !ok {
		return ErrInvalidRole
	}
	current, err := g.RoleOf(login)
	if err != nil {
		return err
	}
	if current == models.RoleManager {
		return ErrManagerDemotion
	}
	return g.db.Model(&models.User{}).Where("login = ?", login).Update("role", role).Error
}
