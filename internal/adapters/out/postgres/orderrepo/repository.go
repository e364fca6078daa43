package orderrepo

import (
	"context"

	"catering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

const insertBatchSize = 100

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a repository bound to db, which may be a transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// GetAll loads every order with its lines and history in snapshot position order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// ReplaceAll deletes every stored order and inserts orders in their given order.
func (r *GormOrderRepository) ReplaceAll(ctx context.Context, orders []order.Order) error {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
	}

	db := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []any{&HistoryDTO{}, &LineDTO{}, &OrderDTO{}} {
		if err := db.Delete(model).Error; err != nil {
			return err
		}
	}

	if len(orders) == 0 {
		return nil
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for i, o := range orders {
		dtos = append(dtos, fromDomain(o, i))
	}
	return r.db.WithContext(ctx).CreateInBatches(&dtos, insertBatchSize).Error
}
