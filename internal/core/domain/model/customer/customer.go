// Package customer provides the customer record the order core resolves at
// order creation time. The core treats it as an immutable lookup record; the
// captured name and email end up on the order's customer binding.
package customer

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer factory methods.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer is a customer record: name, unique email, optional phone, and an
// active flag. Inactive customers remain readable so existing orders keep a
// resolvable binding.
type Customer struct {
	id            kernel.UUID
	name          string
	email         string
	phone         string
	active        bool
	isConstructed bool
}

// NewCustomer creates an active customer with a fresh identifier.
// Name and email must be non-empty.
func NewCustomer(name, email, phone string) (*Customer, error) {
	return RestoreCustomer(kernel.NewUUID(), name, email, phone, true)
}

// RestoreCustomer reconstructs a customer from persistence, re-validating
// all invariants.
func RestoreCustomer(id kernel.UUID, name, email, phone string, active bool) (*Customer, error) {
	c := &Customer{
		phone:         phone,
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was properly constructed through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer email.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the optional customer phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Active reports whether the customer may place new orders.
func (c *Customer) Active() bool {
	return c.active
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	c.email = email
	return nil
}
