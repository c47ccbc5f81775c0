package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB starts a disposable PostgreSQL container. Set DRINKPOS_INTEGRATION=1 to run these tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("DRINKPOS_INTEGRATION") != "1" {
		t.Skip("set DRINKPOS_INTEGRATION=1 to run postgres integration tests")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "drinkpos",
				"POSTGRES_PASSWORD": "drinkpos",
				"POSTGRES_DB":       "drinkpos_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://drinkpos:drinkpos@%s:%s/drinkpos_test?sslmode=disable", host, port.Port())
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	return db
}

func seedMenu(t *testing.T, db *gorm.DB) (parent, variant *entity.MenuItem) {
	t.Helper()

	ctx := context.Background()
	repo := NewMenuItemRepository(db)
	parent = &entity.MenuItem{ID: uuid.New(), Name: "Trà sữa", Price: 25000, Category: entity.CategoryDrink, Stock: 10, IsParent: true}
	variant = &entity.MenuItem{ID: uuid.New(), Name: "Trà sữa size L", Price: 30000, Category: entity.CategoryDrink, ParentID: &parent.ID}
	require.NoError(t, repo.Create(ctx, parent))
	require.NoError(t, repo.Create(ctx, variant))

	return parent, variant
}

func TestIntegration_DecrementStock_ConcurrentAndFloored(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	parent, _ := seedMenu(t, db)
	repo := NewMenuItemRepository(db)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.DecrementStock(ctx, parent.ID, 2))
		}()
	}
	wg.Wait()

	got, err := repo.FindByID(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)

	require.NoError(t, repo.DecrementStock(ctx, parent.ID, 5))
	got, err = repo.FindByID(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)

	assert.ErrorIs(t, repo.DecrementStock(ctx, uuid.New(), 1), repository.ErrMenuItemNotFound)
}

func TestIntegration_DeleteParent_UnlinksChildrenAtomically(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	parent, variant := seedMenu(t, db)
	txManager := NewTransactionManager(db)

	failure := errors.New("abort")
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		menu := factory.NewMenuItemRepository()
		if _, err := menu.ClearParent(ctx, parent.ID); err != nil {
			return err
		}

		return failure
	})
	require.ErrorIs(t, err, failure)

	got, err := NewMenuItemRepository(db).FindByID(ctx, variant.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID, "rolled back unlink must keep the parent link")

	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		menu := factory.NewMenuItemRepository()
		if _, err := menu.ClearParent(ctx, parent.ID); err != nil {
			return err
		}

		return menu.Delete(ctx, parent.ID)
	})
	require.NoError(t, err)

	got, err = NewMenuItemRepository(db).FindByID(ctx, variant.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ParentID)
}

func TestIntegration_OrderAndDeletionLog(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	parent, variant := seedMenu(t, db)
	txManager := NewTransactionManager(db)

	order := &entity.Order{
		ID: uuid.New(),
		Items: []entity.CartItem{
			{ItemID: variant.ID, Name: variant.Name, Price: variant.Price, Category: entity.CategoryDrink, ParentID: &parent.ID, Quantity: 2},
		},
		Total:         60000,
		PaymentMethod: entity.PaymentTransfer,
		Status:        entity.OrderStatusCompleted,
		Timestamp:     time.Now().UTC().Truncate(time.Microsecond),
		StaffID:       uuid.New(),
		Source:        entity.OrderSourceApp,
	}
	task, err := entity.NewOutboxTask(order.ID, entity.TaskDecrementStock, entity.DecrementStockPayload{OwnerID: parent.ID, Amount: 2}, time.Now())
	require.NoError(t, err)

	require.NoError(t, txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().Create(ctx, order); err != nil {
			return err
		}

		return factory.NewOutboxRepository().CreateTasks(ctx, []*entity.OutboxTask{task})
	}))

	stored, err := NewOrderRepository(db).FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Items, stored.Items)
	assert.Equal(t, order.Total, stored.Total)

	require.NoError(t, txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		log := entity.NewDeletedOrderLog(stored, entity.Actor{Name: "Chủ quán", Role: entity.RoleAdmin}, time.Now())
		if err := factory.NewDeletedOrderRepository().CreateLog(ctx, log); err != nil {
			return err
		}

		return factory.NewOrderRepository().Delete(ctx, order.ID)
	}))

	_, err = NewOrderRepository(db).FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	log, err := NewDeletedOrderRepository(db).FindLogByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chủ quán", log.DeletedBy)
	assert.Equal(t, []entity.DeletedItemSummary{{Name: variant.Name, Quantity: 2}}, log.Items)

	assert.ErrorIs(t, NewOrderRepository(db).Delete(ctx, order.ID), repository.ErrOrderNotFound)
}

func TestIntegration_OutboxClaimSkipsLockedAndDone(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	outbox := NewOutboxRepository(db)
	txManager := NewTransactionManager(db)

	task, err := entity.NewOutboxTask(uuid.New(), entity.TaskNotifyRole, entity.NotifyRolePayload{Role: entity.RoleAdmin, Message: "x"}, time.Now().Add(-time.Second))
	require.NoError(t, err)
	require.NoError(t, outbox.CreateTasks(ctx, []*entity.OutboxTask{task}))

	due, err := outbox.FindDueTasks(ctx, time.Now(), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if _, err := factory.NewOutboxRepository().ClaimTask(ctx, task.ID); err != nil {
				return err
			}
			close(locked)
			<-release

			return factory.NewOutboxRepository().MarkDone(ctx, task.ID)
		})
	}()

	<-locked
	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		_, err := factory.NewOutboxRepository().ClaimTask(ctx, task.ID)

		return err
	})
	assert.ErrorIs(t, err, repository.ErrTaskNotClaimable)

	close(release)
	require.NoError(t, <-done)

	_, err = outbox.ClaimTask(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotClaimable)
	_, err = outbox.ClaimTask(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestIntegration_UsersNotificationsAndShifts(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	notifications := NewNotificationRepository(db)
	shifts := NewShiftRepository(db)

	staff := &entity.User{ID: uuid.New(), Name: "Lan", Username: "0901000001", Phone: "0901000001", PasswordHash: "x", Role: entity.RoleStaff, Status: entity.UserStatusActive}
	require.NoError(t, users.Create(ctx, staff))
	assert.ErrorIs(t, users.Create(ctx, &entity.User{ID: uuid.New(), Username: "0901000001", Phone: "0901000009", PasswordHash: "x", Role: entity.RoleStaff, Status: entity.UserStatusPending}), repository.ErrDuplicateUser)

	found, err := users.FindByIdentifier(ctx, "0901000001")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, found.ID)

	require.NoError(t, users.SetOnline(ctx, staff.ID, true))
	online, err := users.CountOnline(ctx, entity.RoleStaff)
	require.NoError(t, err)
	assert.EqualValues(t, 1, online)

	for i := 0; i < 3; i++ {
		require.NoError(t, notifications.Create(ctx, &entity.Notification{
			ID: uuid.New(), UserID: staff.ID, Message: fmt.Sprintf("n%d", i), Type: entity.NotificationTypeOrder, Timestamp: time.Now(),
		}))
	}
	count, err := notifications.MarkAllRead(ctx, staff.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	count, err = notifications.MarkAllRead(ctx, staff.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	shift := &entity.Shift{ID: uuid.New(), StaffIDs: []uuid.UUID{staff.ID}, Date: "2026-10-20", StartTime: "08:00", EndTime: "16:00"}
	require.NoError(t, shifts.Create(ctx, shift))
	mine, err := shifts.ListByStaff(ctx, staff.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, shift.StaffIDs, mine[0].StaffIDs)
}
