// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/domain/entity"
	domainerror "github.com/orderdash/backend/internal/domain/error"
	"github.com/orderdash/backend/internal/integration/persistence/model"
)

// orderRepository implements the adapter.OrderRepository interface.
type orderRepository struct {
	db    *gorm.DB
	idGen adapter.IDGenerator
}

// NewOrderRepository creates a new order repository instance.
func NewOrderRepository(db *gorm.DB, idGen adapter.IDGenerator) adapter.OrderRepository {
	return &orderRepository{
		db:    db,
		idGen: idGen,
	}
}

// Create assigns a fresh id and stores the order with its line items.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	stored := order.Clone()
	stored.ID = r.idGen.NextID()

	orderModel := model.OrderFromEntity(stored)
	if err := r.db.WithContext(ctx).Create(orderModel).Error; err != nil {
		return nil, err
	}

	return stored, nil
}

// Update overlays the patch onto the stored order. The id itself is never
// part of the patch.
func (r *orderRepository) Update(ctx context.Context, id string, patch adapter.OrderPatch) (*entity.Order, error) {
	var updated *entity.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orderModel model.OrderModel
		result := tx.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).Where("id = ?", id).First(&orderModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.NewOrderError(
					domainerror.ErrCodeOrderNotFound,
					"order not found",
					domainerror.ErrOrderNotFound,
				)
			}
			return result.Error
		}

		order := orderModel.ToEntity()
		applyPatch(order, patch)
		order.UpdatedAt = time.Now().UTC()

		patchedModel := model.OrderFromEntity(order)
		items := patchedModel.Items
		patchedModel.Items = nil

		if err := tx.Omit("Items").Save(patchedModel).Error; err != nil {
			return err
		}

		// Item rows are replaced wholesale when the patch touches them.
		if patch.Items != nil {
			if err := tx.Where("order_id = ?", id).Delete(&model.OrderItemModel{}).Error; err != nil {
				return err
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the order and its items. Unknown ids are a no-op.
func (r *orderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItemModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.OrderModel{}).Error
	})
}

// FindByID retrieves an order by its id.
func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var orderModel model.OrderModel
	result := r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("id = ?", id).First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewOrderError(
				domainerror.ErrCodeOrderNotFound,
				"order not found",
				domainerror.ErrOrderNotFound,
			)
		}
		return nil, result.Error
	}
	return orderModel.ToEntity(), nil
}

// FindAll retrieves every order in arrival order.
func (r *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	result := r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("created_at ASC, id ASC").Find(&orderModels)
	if result.Error != nil {
		return nil, result.Error
	}

	orders := make([]*entity.Order, len(orderModels))
	for i, om := range orderModels {
		orders[i] = om.ToEntity()
	}
	return orders, nil
}

// applyPatch overlays non-nil patch fields onto the order.
func applyPatch(order *entity.Order, patch adapter.OrderPatch) {
	if patch.OrderNumber != nil {
		order.OrderNumber = *patch.OrderNumber
	}
	if patch.Customer != nil {
		order.Customer = *patch.Customer
	}
	if patch.Items != nil {
		items := make([]entity.LineItem, len(*patch.Items))
		copy(items, *patch.Items)
		order.Items = items
	}
	if patch.TotalAmount != nil {
		order.TotalAmount = *patch.TotalAmount
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		order.PaymentStatus = *patch.PaymentStatus
	}
	if patch.PaymentMethod != nil {
		order.PaymentMethod = *patch.PaymentMethod
	}
	if patch.EmployeeName != nil {
		order.EmployeeName = *patch.EmployeeName
	}
	if patch.UserName != nil {
		order.UserName = *patch.UserName
	}
	if patch.OrderDate != nil {
		order.OrderDate = *patch.OrderDate
	}
}
