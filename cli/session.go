// Package cli implements the interactive administration client: the
// top-level account menu and the role-gated command dispatcher behind it.
package cli

import (
	"errors"
	"io"

	"pizza-store/console"
	"pizza-store/models"
	"pizza-store/store"
)

// command is one menu entry: its number, its label, the minimum role allowed
// to run it, and the handler. The handler receives the role resolved for the
// current loop pass, since a few commands branch on it.
type command struct {
	num   int
	label string
	min   models.UserRole
	run   func(*Session, models.UserRole) error
}

// commands is the authoritative permission table. The dispatcher renders
// menus and routes selections from this alone, so the authorization matrix
// lives in exactly one place.
var commands = []command{
	{1, "View Profile", models.RoleCustomer, (*Session).viewProfile},
	{2, "Update Profile", models.RoleCustomer, (*Session).updateProfile},
	{3, "View Menu", models.RoleCustomer, (*Session).viewMenu},
	{4, "Place Order", models.RoleCustomer, (*Session).placeOrder},
	{5, "View Full Order ID History", models.RoleCustomer, (*Session).viewAllOrders},
	{6, "View Past 5 Order IDs", models.RoleCustomer, (*Session).viewRecentOrders},
	{7, "View Order Information", models.RoleCustomer, (*Session).viewOrderInfo},
	{8, "View Stores", models.RoleCustomer, (*Session).viewStores},
	{9, "Update Order Status", models.RoleDriver, (*Session).updateOrderStatus},
	{10, "Update Menu", models.RoleManager, (*Session).updateMenu},
}

const logoutChoice = 20

// menuFor returns the commands a role may run.
func menuFor(role models.UserRole) []command {
	var out []command
	for _, cmd := range commands {
		if role.AtLeast(cmd.min) {
			out = append(out, cmd)
		}
	}
	return out
}

// Session is one authenticated interactive run. The role is deliberately not
// stored here: it is re-resolved on every dispatcher pass so a manager
// changing this user's role takes effect mid-session.
type Session struct {
	gw    *store.Gateway
	c     *console.Console
	login string
}

func NewSession(gw *store.Gateway, c *console.Console, login string) *Session {
	return &Session{gw: gw, c: c, login: login}
}

const greeting = "\n*******************************************************\n" +
	"              Pizza Store User Interface\n" +
	"*******************************************************"

// Run drives the top-level menu until the user exits or input ends.
func Run(gw *store.Gateway, c *console.Console) error {
	c.Print(greeting)
	for {
		c.Print("MAIN MENU")
		c.Print("---------")
		c.Print("1. Create user")
		c.Print("2. Log in")
		c.Print("9. < EXIT")

		choice, err := c.ReadChoice()
		if err != nil {
			return endOfInput(err)
		}
		switch choice {
		case 1:
			if err := createUser(gw, c); err != nil {
				if isInputDone(err) {
					return nil
				}
				c.Printf("Error creating user: %v\n", err)
			}
		case 2:
			login, err := logIn(gw, c)
			if err != nil {
				if isInputDone(err) {
					return nil
				}
				c.Printf("Error during login: %v\n", err)
				continue
			}
			if login == "" {
				continue
			}
			if err := NewSession(gw, c, login).Loop(); err != nil {
				return endOfInput(err)
			}
		case 9:
			c.Print("Bye !")
			return nil
		default:
			c.Print("Unrecognized choice!")
		}
	}
}

// Loop is the role-gated dispatcher. Every failure inside a command is local
// to that command; only an exhausted input stream or a failure to resolve
// the session's role ends the loop.
func (s *Session) Loop() error {
	for {
		role, err := s.gw.RoleOf(s.login)
		if err != nil {
			return err
		}

		s.c.Print("MAIN MENU")
		s.c.Print("---------")
		for _, cmd := range menuFor(role) {
			s.c.Printf("%d. %s\n", cmd.num, cmd.label)
		}
		s.c.Print(".........................")
		s.c.Printf("%d. Log out\n", logoutChoice)

		choice, err := s.c.ReadChoice()
		if err != nil {
			return endOfInput(err)
		}
		if choice == logoutChoice {
			return nil
		}

		cmd, ok := s.dispatch(choice, role)
		if !ok {
			s.c.Print("Unrecognized choice!")
			continue
		}
		if err := cmd.run(s, role); err != nil {
			if isInputDone(err) {
				return nil
			}
			s.c.Printf("Error: %v\n", err)
		}
	}
}

// dispatch resolves a selection against the permission table. A number the
// role is not entitled to is indistinguishable from a number that does not
// exist.
func (s *Session) dispatch(choice int, role models.UserRole) (command, bool) {
	for _, cmd := range commands {
		if cmd.num == choice {
			if !role.AtLeast(cmd.min) {
				return command{}, false
			}
			return cmd, true
		}
	}
	return command{}, false
}

func isInputDone(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func endOfInput(err error) error {
	if isInputDone(err) {
		return nil
	}
	return err
}
