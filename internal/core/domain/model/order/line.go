package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one item entry within an Order. The item's name and unit price are
// captured from the catalog at order creation time and never re-read: an
// order's economics must not drift if catalog prices change later.
//
// Line is immutable after construction.
type Line struct {
	// itemID references the catalog item the line was resolved from
	itemID kernel.UUID

	// itemName is the catalog item name at order creation time
	itemName string

	// unitPrice is the catalog item price at order creation time
	unitPrice decimal.Decimal

	// quantity is the ordered amount (must be positive)
	quantity int

	// isConstructed ensures the line was created via NewLine
	isConstructed bool
}

// NewLine creates a new Line with validation.
//
// Parameters:
//   - itemID: Identifier of the resolved catalog item (must be valid UUID)
//   - itemName: Item name captured at creation (must not be empty)
//   - unitPrice: Item price captured at creation (must not be negative)
//   - quantity: Ordered amount (must be positive)
//
// Returns the created line, or a validation error if any parameter is invalid.
func NewLine(itemID kernel.UUID, itemName string, unitPrice decimal.Decimal, quantity int) (Line, error) {
	line := Line{isConstructed: true}

	if err := errors.Join(
		line.setItemID(itemID),
		line.setItemName(itemName),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ItemID returns the identifier of the catalog item the line references.
func (l Line) ItemID() kernel.UUID {
	return l.itemID
}

// ItemName returns the item name captured at order creation time.
func (l Line) ItemName() string {
	return l.itemName
}

// UnitPrice returns the item price captured at order creation time.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Quantity returns the ordered amount.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unitPrice multiplied by quantity.
// It is always derived, never stored.
func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l *Line) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	l.itemID = itemID
	return nil
}

func (l *Line) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	l.itemName = itemName
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%s is negative", unitPrice))
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
