package postgres

import (
	"context"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
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

// Create persists a new order with its item snapshot.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if err := repo.db.WithContext(ctx).Create(fromOrderDomain(order)).Error; err != nil {
		return storeError(err, "failed to create order")
	}

	return nil
}

// FindByID retrieves a single order.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// List retrieves orders by timestamp descending from a read replica when one is configured.
func (repo *orderRepository) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("timestamp DESC, id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var orderModels []*model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Delete removes an order.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OrderModel{})

	if result.Error != nil {
		return storeError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// deletedOrderRepository implements the repository.DeletedOrderRepository interface.
type deletedOrderRepository struct {
	db *gorm.DB
}

// NewDeletedOrderRepository is the constructor for deletedOrderRepository.
func NewDeletedOrderRepository(db *gorm.DB) repository.DeletedOrderRepository {
	return &deletedOrderRepository{
		db: db,
	}
}

// CreateLog appends a deletion record.
func (repo *deletedOrderRepository) CreateLog(ctx context.Context, log *entity.DeletedOrderLog) error {
	if err := repo.db.WithContext(ctx).Create(fromDeletedOrderDomain(log)).Error; err != nil {
		return storeError(err, "failed to create deleted order log")
	}

	return nil
}

// ListLogs retrieves deletion records by deletion time descending.
func (repo *deletedOrderRepository) ListLogs(ctx context.Context, limit, offset int) ([]*entity.DeletedOrderLog, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("deleted_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var logModels []*model.DeletedOrderModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list deleted orders")
	}

	logs := make([]*entity.DeletedOrderLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toDeletedOrderDomain(logM))
	}

	return logs, nil
}

// FindLogByOrderID retrieves the deletion record of an order.
func (repo *deletedOrderRepository) FindLogByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.DeletedOrderLog, error) {
	var logM model.DeletedOrderModel

	if err := repo.db.WithContext(ctx).Where("original_order_id = ?", orderID).First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeletedOrderLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find deleted order log")
	}

	return toDeletedOrderDomain(&logM), nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for _, line := range data.Items {
		items = append(items, entity.CartItem{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    line.Price,
			Category: entity.Category(line.Category),
			ParentID: line.ParentID,
			Quantity: line.Quantity,
		})
	}

	return &entity.Order{
		ID:            data.ID,
		Items:         items,
		Total:         data.Total,
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		Status:        entity.OrderStatus(data.Status),
		Timestamp:     data.Timestamp,
		OrderDate:     data.OrderDate,
		StaffID:       data.StaffID,
		Source:        data.Source,
		CustomerName:  data.CustomerName,
		CustomerPhone: data.CustomerPhone,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make([]model.OrderLine, 0, len(data.Items))
	for _, item := range data.Items {
		lines = append(lines, model.OrderLine{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Price:    item.Price,
			Category: string(item.Category),
			ParentID: item.ParentID,
			Quantity: item.Quantity,
		})
	}

	return &model.OrderModel{
		ID:            data.ID,
		Items:         datatypes.NewJSONSlice(lines),
		Total:         data.Total,
		PaymentMethod: string(data.PaymentMethod),
		Status:        string(data.Status),
		Timestamp:     data.Timestamp,
		OrderDate:     data.OrderDate,
		StaffID:       data.StaffID,
		Source:        data.Source,
		CustomerName:  data.CustomerName,
		CustomerPhone: data.CustomerPhone,
	}
}

func toDeletedOrderDomain(data *model.DeletedOrderModel) *entity.DeletedOrderLog {
	if data == nil {
		return nil
	}

	items := make([]entity.DeletedItemSummary, 0, len(data.Items))
	for _, line := range data.Items {
		items = append(items, entity.DeletedItemSummary{Name: line.Name, Quantity: line.Quantity})
	}

	return &entity.DeletedOrderLog{
		ID:              data.ID,
		OriginalOrderID: data.OriginalOrderID,
		Total:           data.Total,
		Items:           items,
		PaymentMethod:   entity.PaymentMethod(data.PaymentMethod),
		OrderTimestamp:  data.OrderTimestamp,
		StaffID:         data.StaffID,
		DeletedAt:       data.DeletedAt,
		DeletedBy:       data.DeletedBy,
		DeletedByRole:   entity.Role(data.DeletedByRole),
	}
}

func fromDeletedOrderDomain(data *entity.DeletedOrderLog) *model.DeletedOrderModel {
	if data == nil {
		return nil
	}

	lines := make([]model.DeletedItemLine, 0, len(data.Items))
	for _, item := range data.Items {
		lines = append(lines, model.DeletedItemLine{Name: item.Name, Quantity: item.Quantity})
	}

	return &model.DeletedOrderModel{
		ID:              data.ID,
		OriginalOrderID: data.OriginalOrderID,
		Total:           data.Total,
		Items:           datatypes.NewJSONSlice(lines),
		PaymentMethod:   string(data.PaymentMethod),
		OrderTimestamp:  data.OrderTimestamp,
		StaffID:         data.StaffID,
		DeletedAt:       data.DeletedAt,
		DeletedBy:       data.DeletedBy,
		DeletedByRole:   string(data.DeletedByRole),
	}
}
