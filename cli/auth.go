package cli

import (
	"errors"

	"pizza-store/console"
	"pizza-store/store"
)

// createUser registers a new account. The role is always customer and the
// favorite items start empty, whatever the person at the keyboard intends.
// A duplicate login surfaces as the store's own constraint error.
func createUser(gw *store.Gateway, c *console.Console) error {
	login, err := c.PromptLine("Enter login: ")
	if err != nil {
		return err
	}
	password, err := c.PromptLine("Enter password: ")
	if err != nil {
		return err
	}
	phone, err := c.PromptLine("Enter phone number: ")
	if err != nil {
		return err
	}

	if err := gw.CreateUser(login, password, phone); err != nil {
		return err
	}
	c.Print("User successfully created!")
	return nil
}

// logIn resolves credentials into a session identity. An empty login with a
// nil error means the credentials matched nothing.
func logIn(gw *store.Gateway, c *console.Console) (string, error) {
	login, err := c.PromptLine("Enter login: ")
	if err != nil {
		return "", err
	}
	password, err := c.PromptLine("Enter password: ")
	if err != nil {
		return "", err
	}

	user, err := gw.Authenticate(login, password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Print("Login failed: Invalid username or password.")
			return "", nil
		}
		return "", err
	}
	c.Print("Login successful! Welcome, " + user.Login)
	return user.Login, nil
}
