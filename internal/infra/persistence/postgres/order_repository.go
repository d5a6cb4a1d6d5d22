package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists an order together with its line items.
func (repo *orderRepository) CreateOrder(ctx context.Context, callerID string, order *entity.Order) error {
	orderM := fromOrderDomain(callerID, order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrder
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderSubmissionFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindOrdersByCaller retrieves all orders of a caller, newest first, with items in checkout order.
func (repo *orderRepository) FindOrdersByCaller(ctx context.Context, callerID string) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("caller_id = ?", callerID).
		Order("placed_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by caller")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return &entity.Order{
		OrderID:   data.ID,
		Items:     items,
		Subtotal:  data.Subtotal,
		Timestamp: data.PlacedAt,
		CustomerInfo: entity.CustomerInfo{
			FullName:    data.FullName,
			Email:       data.Email,
			AddressLine: data.AddressLine,
			City:        data.City,
			PostalCode:  data.PostalCode,
		},
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(callerID string, data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, model.OrderItemModel{
			OrderID:     data.OrderID,
			Position:    i,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:          data.OrderID,
		CallerID:    callerID,
		FullName:    data.CustomerInfo.FullName,
		Email:       data.CustomerInfo.Email,
		AddressLine: data.CustomerInfo.AddressLine,
		City:        data.CustomerInfo.City,
		PostalCode:  data.CustomerInfo.PostalCode,
		Subtotal:    data.Subtotal,
		PlacedAt:    data.Timestamp,
		Items:       items,
	}
}
