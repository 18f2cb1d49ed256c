// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
package customerrepo

import (
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer records.
type CustomerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Email  string    `gorm:"type:varchar(255);not null"`
	Phone  string    `gorm:"type:varchar(64)"`
	Active bool      `gorm:"not null"`
}

// TableName specifies the database table name for customer records.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer entity to its database representation.
func fromDomain(entity *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:     entity.ID().Bytes(),
		Name:   entity.Name(),
		Email:  entity.Email(),
		Phone:  entity.Phone(),
		Active: entity.Active(),
	}
}

// toDomain converts a database DTO to a customer entity using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone, dto.Active)
}
