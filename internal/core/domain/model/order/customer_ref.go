package order

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrCustomerRefIsNotConstructed is returned when a CustomerRef instance was
// not created through the NewCustomerRef factory method.
var ErrCustomerRefIsNotConstructed = errors.New("CustomerRef must be created via NewCustomerRef constructor")

// CustomerRef is the customer binding captured on an Order at creation time.
// Name and email are snapshots of the customer record when the order was
// placed; later edits to the customer do not rewrite existing orders.
//
// CustomerRef is immutable after construction.
type CustomerRef struct {
	id            kernel.UUID
	name          string
	email         string
	isConstructed bool
}

// NewCustomerRef creates a customer binding with validation.
// The id must be a valid UUID and both name and email must be non-empty.
func NewCustomerRef(id kernel.UUID, name, email string) (CustomerRef, error) {
	ref := CustomerRef{isConstructed: true}

	if err := errors.Join(
		ref.setID(id),
		ref.setName(name),
		ref.setEmail(email),
	); err != nil {
		return CustomerRef{}, err
	}

	return ref, nil
}

// Validate ensures the CustomerRef was properly constructed through NewCustomerRef.
func (c CustomerRef) Validate() error {
	if !c.isConstructed {
		return ErrCustomerRefIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c CustomerRef) ID() kernel.UUID {
	return c.id
}

// Name returns the customer name captured at order creation time.
func (c CustomerRef) Name() string {
	return c.name
}

// Email returns the customer email captured at order creation time.
func (c CustomerRef) Email() string {
	return c.email
}

func (c *CustomerRef) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *CustomerRef) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *CustomerRef) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	c.email = email
	return nil
}
