// Package item provides the catalog item entity. Items are what orders
// reference; the order core only ever reads them, capturing name and price
// onto order lines at creation time.
package item

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is a catalog item: a name and a current price, plus an optional
// description. The price here is the catalog's current price; orders capture
// their own copy at creation and never read it back.
type Item struct {
	id            kernel.UUID
	name          string
	price         decimal.Decimal
	description   string
	isConstructed bool
}

// NewItem creates a catalog item with a fresh identifier.
// Name must be non-empty and price must not be negative.
func NewItem(name string, price decimal.Decimal, description string) (*Item, error) {
	return RestoreItem(kernel.NewUUID(), name, price, description)
}

// RestoreItem reconstructs a catalog item from persistence, re-validating
// all invariants.
func RestoreItem(id kernel.UUID, name string, price decimal.Decimal, description string) (*Item, error) {
	item := &Item{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was properly constructed through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the item's current catalog price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// Description returns the optional item description.
func (i *Item) Description() string {
	return i.description
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}
