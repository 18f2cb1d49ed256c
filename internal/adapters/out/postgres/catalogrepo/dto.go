// Package catalogrepo provides data transfer objects and mapping functions for catalog persistence.
// This package implements the repository pattern for catalog items, handling the
// conversion between domain entities and database representations.
package catalogrepo

import (
	"orders/internal/core/domain/model/item"
	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting catalog items.
type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	Description string          `gorm:"type:text"`
}

// TableName specifies the database table name for catalog items.
// Overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts a catalog item entity to its database representation.
func fromDomain(entity *item.Item) ItemDTO {
	return ItemDTO{
		ID:          entity.ID().Bytes(),
		Name:        entity.Name(),
		Price:       entity.Price(),
		Description: entity.Description(),
	}
}

// toDomain converts a database DTO to a catalog item entity using RestoreItem.
func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, dto.Name, dto.Price, dto.Description)
}
