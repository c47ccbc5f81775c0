package memory

import (
	"cmp"
	"context"
	"slices"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"

	"github.com/google/uuid"
)

type orderRepository struct {
	store *Store
}

// NewOrderRepository creates an order repository over store.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func cloneOrder(order *entity.Order) *entity.Order {
	out := *order
	out.Items = make([]entity.CartItem, len(order.Items))
	for i, line := range order.Items {
		out.Items[i] = line
		if line.ParentID != nil {
			parentID := *line.ParentID
			out.Items[i].ParentID = &parentID
		}
	}
	if order.OrderDate != nil {
		orderDate := *order.OrderDate
		out.OrderDate = &orderDate
	}

	return &out
}

func (repo *orderRepository) Create(_ context.Context, order *entity.Order) error {
	return repo.store.do("orders.Create", func(st *state) error {
		if len(order.Items) == 0 {
			return errInvalid("failed to create order: missing required field")
		}
		if _, exists := st.orders[order.ID]; exists {
			return errConflict("order already exists")
		}
		st.orders[order.ID] = cloneOrder(order)

		return nil
	})
}

func (repo *orderRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	var out *entity.Order
	err := repo.store.do("orders.FindByID", func(st *state) error {
		order, ok := st.orders[id]
		if !ok {
			return repository.ErrOrderNotFound
		}
		out = cloneOrder(order)

		return nil
	})

	return out, err
}

func (repo *orderRepository) List(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := repo.store.read("orders.List", func(st *state) {
		orders = make([]*entity.Order, 0, len(st.orders))
		for _, order := range st.orders {
			orders = append(orders, cloneOrder(order))
		}
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(orders, func(a, b *entity.Order) int {
		return cmp.Or(b.Timestamp.Compare(a.Timestamp), cmp.Compare(a.ID.String(), b.ID.String()))
	})
	if limit <= 0 {
		return orders, nil
	}

	return page(orders, limit, offset), nil
}

func (repo *orderRepository) Delete(_ context.Context, id uuid.UUID) error {
	return repo.store.do("orders.Delete", func(st *state) error {
		if _, ok := st.orders[id]; !ok {
			return repository.ErrOrderNotFound
		}
		delete(st.orders, id)

		return nil
	})
}

type deletedOrderRepository struct {
	store *Store
}

// NewDeletedOrderRepository creates a deletion log repository over store.
func NewDeletedOrderRepository(store *Store) repository.DeletedOrderRepository {
	return &deletedOrderRepository{store: store}
}

func cloneDeletedOrderLog(log *entity.DeletedOrderLog) *entity.DeletedOrderLog {
	out := *log
	out.Items = slices.Clone(log.Items)

	return &out
}

func (repo *deletedOrderRepository) CreateLog(_ context.Context, log *entity.DeletedOrderLog) error {
	return repo.store.do("deletedOrders.CreateLog", func(st *state) error {
		if _, exists := st.deletedOrders[log.OriginalOrderID]; exists {
			return errConflict("order deletion already logged")
		}
		st.deletedOrders[log.OriginalOrderID] = cloneDeletedOrderLog(log)

		return nil
	})
}

func (repo *deletedOrderRepository) ListLogs(_ context.Context, limit, offset int) ([]*entity.DeletedOrderLog, error) {
	var logs []*entity.DeletedOrderLog
	err := repo.store.read("deletedOrders.ListLogs", func(st *state) {
		logs = make([]*entity.DeletedOrderLog, 0, len(st.deletedOrders))
		for _, log := range st.deletedOrders {
			logs = append(logs, cloneDeletedOrderLog(log))
		}
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(logs, func(a, b *entity.DeletedOrderLog) int {
		return b.DeletedAt.Compare(a.DeletedAt)
	})
	if limit <= 0 {
		return logs, nil
	}

	return page(logs, limit, offset), nil
}

func (repo *deletedOrderRepository) FindLogByOrderID(_ context.Context, orderID uuid.UUID) (*entity.DeletedOrderLog, error) {
	var out *entity.DeletedOrderLog
	err := repo.store.do("deletedOrders.FindLogByOrderID", func(st *state) error {
		log, ok := st.deletedOrders[orderID]
		if !ok {
			return repository.ErrDeletedOrderLogNotFound
		}
		out = cloneDeletedOrderLog(log)

		return nil
	})

	return out, err
}
