package cli

import (
	"errors"

	"pizza-store/models"
	"pizza-store/store"
)

func (s *Session) viewProfile(models.UserRole) error {
	user, err := s.gw.GetUser(s.login)
	if err != nil {
		return err
	}
	s.c.Print("YOUR PROFILE")
	s.c.Table(
		[]string{"Favorite Items", "Phone Number"},
		[][]string{{user.FavoriteItems, user.PhoneNum}},
	)
	return nil
}

func (s *Session) updateProfile(role models.UserRole) error {
	if role != models.RoleManager {
		return s.updateOwnProfile()
	}
	return s.updateAnyProfile()
}

// updateOwnProfile lets any user change their own favorite items, phone
// number, or password.
func (s *Session) updateOwnProfile() error {
	s.c.Print("Which part of your profile would you like to update?")
	s.c.Print("1. Favorite Items")
	s.c.Print("2. Phone Number")
	s.c.Print("3. Password")
	choice, err := s.c.PromptInt("Enter your choice: ")
	if err != nil {
		return err
	}

	column, prompt, ok := profileField(choice)
	if !ok {
		s.c.Print("Invalid choice.")
		return nil
	}
	value, err := s.c.PromptLine(prompt)
	if err != nil {
		return err
	}
	if err := s.gw.SetUserField(s.login, column, value); err != nil {
		return err
	}
	s.c.Print("Profile updated successfully!")
	return nil
}

// updateAnyProfile is the manager path: pick a target login, then edit any
// of its fields, including the login itself and the role.
func (s *Session) updateAnyProfile() error {
	target, err := s.c.PromptLine("Enter the login of the profile you would like to update: ")
	if err != nil {
		return err
	}
	exists, err := s.gw.UserExists(target)
	if err != nil {
		return err
	}
	if !exists {
		s.c.Print("Login not found! Returning to menu.")
		return nil
	}

	s.c.Print("Which part of the profile would you like to update?")
	s.c.Print("1. Favorite Items")
	s.c.Print("2. Phone Number")
	s.c.Print("3. Password")
	s.c.Print("4. Login")
	s.c.Print("5. Role")
	choice, err := s.c.PromptInt("Enter your choice: ")
	if err != nil {
		return err
	}

	var column, prompt string
	switch choice {
	case 1, 2, 3:
		column, prompt, _ = profileField(choice)
	case 4:
		column, prompt = "login", "Enter new login: "
	case 5:
		return s.changeRole(target)
	default:
		s.c.Print("Invalid choice.")
		return nil
	}

	value, err := s.c.PromptLine(prompt)
	if err != nil {
		return err
	}
	if err := s.gw.SetUserField(target, column, value); err != nil {
		return err
	}
	s.c.Print("Profile updated successfully!")
	return nil
}

// changeRole applies a manager's role change. A target already holding the
// manager role is never changed, before the new value is even asked for.
func (s *Session) changeRole(target string) error {
	current, err := s.gw.RoleOf(target)
	if err != nil {
		return err
	}
	if current == models.RoleManager {
		s.c.Print("Update denied. Cannot demote managers!")
		return nil
	}

	raw, err := s.c.PromptLine("Enter new role: ")
	if err != nil {
		return err
	}
	role, ok := models.ParseRole(raw)
	if !ok {
		s.c.Print("Not a valid role. Returning to menu.")
		return nil
	}

	if err := s.gw.SetRole(target, role); err != nil {
		switch {
		case errors.Is(err, store.ErrManagerDemotion):
			s.c.Print("Update denied. Cannot demote managers!")
			return nil
		case errors.Is(err, store.ErrInvalidRole):
			s.c.Print("Not a valid role. Returning to menu.")
			return nil
		}
		return err
	}
	s.c.Print("Profile updated successfully!")
	return nil
}

func profileField(choice int) (column, prompt string, ok bool) {
	switch choice {
	case 1:
		return "favorite_items", "Enter new favorite items: ", true
	case 2:
		return "phone_num", "Enter new phone number: ", true
	case 3:
		return "password", "Enter new password: ", true
	}
	return "", "", false
}
