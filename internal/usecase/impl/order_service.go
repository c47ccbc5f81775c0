package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/usecase"
	"drinkpos/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	feed      service.ChangeFeed
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Feed      service.ChangeFeed
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		feed:      params.Feed,
		logger:    params.Logger,
	}
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ConfirmOrder persists the order together with its follow-up tasks, then dispatches the tasks
func (s *orderService) ConfirmOrder(ctx context.Context, input *usecase.ConfirmOrderInput) (*entity.Order, error) {
	order, err := newOrder(input, time.Now())
	if err != nil {
		return nil, err
	}

	var tasks []*entity.OutboxTask
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		admins, err := activeUserIDs(ctx, factory.NewUserRepository(), entity.RoleAdmin)
		if err != nil {
			return err
		}

		if tasks, err = orderTasks(order, input.StaffName, admins); err != nil {
			return err
		}

		if err := factory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := factory.NewOutboxRepository().CreateTasks(ctx, tasks); err != nil {
			return errors.Wrap(err, "failed to create order tasks")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Order confirmed",
		slog.String("orderID", order.ID.String()),
		slog.String("staffID", order.StaffID.String()),
		slog.Int64("total", order.Total),
		slog.String("paymentMethod", order.PaymentMethod.String()),
	)

	publishChanges(ctx, s.feed, s.logger, service.TopicOrders)
	s.dispatch(ctx, tasks)

	return order, nil
}

// GetOrder returns one order
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ListOrders returns orders newest first
func (s *orderService) ListOrders(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	orders, err := s.orderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// dispatch hands the tasks to the task queue. Undelivered tasks stay pending for the sweeper.
func (s *orderService) dispatch(ctx context.Context, tasks []*entity.OutboxTask) {
	if s.publisher == nil {
		return
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	for _, task := range tasks {
		event := &service.TaskEvent{
			RequestID: requestID,
			TaskID:    task.ID.String(),
			OrderID:   task.OrderID.String(),
			Kind:      string(task.Kind),
		}

		if err := s.publisher.PublishTaskEvent(ctx, event); err != nil {
			s.log(ctx).Warn("Failed to dispatch order task, leaving it to the sweeper",
				slog.String("taskID", event.TaskID),
				slog.String("kind", event.Kind),
				slog.Any("error", err),
			)
		}
	}
}

func newOrder(input *usecase.ConfirmOrderInput, now time.Time) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}
	if input.StaffID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("staff id is required")
	}

	items := slices.Clone(input.Items)
	var total int64
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
		}
		total += item.Subtotal()
	}

	return &entity.Order{
		ID:            uuid.New(),
		Items:         items,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		Status:        entity.OrderStatusCompleted,
		Timestamp:     now,
		OrderDate:     input.OrderDate,
		StaffID:       input.StaffID,
		Source:        entity.OrderSourceApp,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
	}, nil
}

// activeUserIDs lists the active users holding role. The result is never nil.
func activeUserIDs(ctx context.Context, repo repository.UserRepository, role entity.Role) ([]uuid.UUID, error) {
	active := entity.UserStatusActive
	users, err := repo.List(ctx, repository.UserFilter{Role: &role, Status: &active})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipients")
	}

	ids := make([]uuid.UUID, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}

	return ids, nil
}

// orderTasks builds one stock decrement per owner, then the staff and admin notifications.
// admins is the recipient snapshot taken when the order is confirmed.
func orderTasks(order *entity.Order, staffName string, admins []uuid.UUID) ([]*entity.OutboxTask, error) {
	quantities := entity.QuantitiesByOwner(order.Items)
	owners := make([]uuid.UUID, 0, len(quantities))
	for ownerID := range quantities {
		owners = append(owners, ownerID)
	}
	slices.SortFunc(owners, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})

	tasks := make([]*entity.OutboxTask, 0, len(owners)+2)
	add := func(kind entity.TaskKind, payload any) error {
		task, err := entity.NewOutboxTask(order.ID, kind, payload, order.Timestamp)
		if err != nil {
			return errors.Wrapf(err, "failed to build %s task", kind)
		}
		tasks = append(tasks, task)

		return nil
	}

	for _, ownerID := range owners {
		if err := add(entity.TaskDecrementStock, entity.DecrementStockPayload{OwnerID: ownerID, Amount: quantities[ownerID]}); err != nil {
			return nil, err
		}
	}

	short := util.ShortID(order.ID)
	amount := util.FormatVND(order.Total)
	label := order.PaymentMethod.Label()

	if err := add(entity.TaskNotifyUser, entity.NotifyUserPayload{
		UserID:  order.StaffID,
		Message: fmt.Sprintf("Đơn hàng #%s đã được tạo thành công - %s: %s", short, label, amount),
		Type:    entity.NotificationTypeOrder,
	}); err != nil {
		return nil, err
	}

	if staffName = strings.TrimSpace(staffName); staffName == "" {
		staffName = entity.DefaultActorName
	}
	if err := add(entity.TaskNotifyRole, entity.NotifyRolePayload{
		Role:    entity.RoleAdmin,
		UserIDs: admins,
		Message: fmt.Sprintf("%s vừa tạo đơn #%s - %s: %s", staffName, short, label, amount),
		Type:    entity.NotificationTypeOrder,
	}); err != nil {
		return nil, err
	}

	return tasks, nil
}
