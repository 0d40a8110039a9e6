package store

import (
	"errors"

	"gorm.io/gorm"
)

// Gateway is the single data-access boundary for both the console client and
// the HTTP handlers. Every statement it issues is parameterized; raw input is
// never concatenated into SQL.
type Gateway struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

var (
	// ErrNotFound reports a lookup that matched no row.
	ErrNotFound = gorm.ErrRecordNotFound

	// ErrNameTaken reports an item insert or rename colliding with an
	// existing item name.
	ErrNameTaken = errors.New("item name already taken")

	// ErrManagerDemotion reports a role change targeting a user who
	// currently holds the manager role.
	ErrManagerDemotion = errors.New("cannot change the role of a manager")

	// ErrInvalidRole reports a role value outside the closed role set.
	ErrInvalidRole = errors.New("not a valid role")

	// ErrEmptyOrder reports an order placement with no items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrBadQuantity reports a non-positive item quantity.
	ErrBadQuantity = errors.New("quantity must be positive")

	// ErrFieldNotAllowed reports an update to a column outside the
	// editable set for the operation.
	ErrFieldNotAllowed = errors.New("field is not editable")
)
