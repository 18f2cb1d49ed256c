package catalogrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/item"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM catalog repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Add saves a new catalog item to the database.
func (r *GormItemRepository) Add(ctx context.Context, entity *item.Item) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddBatch saves a batch of catalog items in a single insert.
func (r *GormItemRepository) AddBatch(ctx context.Context, entities []*item.Item) error {
	if len(entities) == 0 {
		return nil
	}

	dtos := make([]ItemDTO, 0, len(entities))
	for _, entity := range entities {
		if err := entity.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(entity))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Get retrieves a catalog item by ID.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every catalog item, sorted by name.
func (r *GormItemRepository) GetAll(ctx context.Context) ([]*item.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*item.Item, 0, len(dtos))
	for _, dto := range dtos {
		entity, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, entity)
	}

	return items, nil
}

// Remove deletes a catalog item by ID.
// Returns errs.ObjectNotFoundError when no row was deleted.
func (r *GormItemRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", id.String())
	}

	return nil
}

// RemoveBatch deletes a batch of catalog items by their identifiers.
// Missing IDs are ignored; only existing rows are removed.
func (r *GormItemRepository) RemoveBatch(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).Delete(&ItemDTO{}, "id IN ?", raw).Error
}
