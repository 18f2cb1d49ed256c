// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status. Timestamps are managed by the domain,
// not by GORM's automatic time tracking.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID    *uuid.UUID     `gorm:"type:uuid;index"`
	CustomerName  string         `gorm:"type:varchar(255)"`
	CustomerEmail string         `gorm:"type:varchar(255)"`
	Status        int            `gorm:"type:int;not null;index"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt     time.Time      `gorm:"not null;autoUpdateTime:false"`
	Version       int            `gorm:"type:int;not null"`
	Lines         []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents a single order line row.
// Stores the item name and unit price captured at order creation so
// projections never depend on the current catalog state.
type OrderLineDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null"`
	ItemName  string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	Quantity  int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional customer snapshot and lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	dto := OrderDTO{
		ID:        orderID,
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Version:   aggregate.Version(),
	}

	if ref := aggregate.Customer(); ref != nil {
		raw := ref.ID().Bytes()
		dto.CustomerID = &raw
		dto.CustomerName = ref.Name()
		dto.CustomerEmail = ref.Email()
	}

	lines := aggregate.Lines()
	dto.Lines = make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		dto.Lines = append(dto.Lines, OrderLineDTO{
			OrderID:   orderID,
			ItemID:    line.ItemID().Bytes(),
			ItemName:  line.ItemName(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines, customer snapshot
// and version using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerRef *order.CustomerRef
	if dto.CustomerID != nil {
		customerID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}

		ref, refErr := order.NewCustomerRef(customerID, dto.CustomerName, dto.CustomerEmail)
		if refErr != nil {
			return nil, refErr
		}
		customerRef = &ref
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerRef,
		lines,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

// lineToDomain converts an order line DTO to its domain value object.
func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(itemID, dto.ItemName, dto.UnitPrice, dto.Quantity)
}
