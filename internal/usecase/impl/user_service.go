// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"drinkpos/config"
	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMinPasswordLength = 6

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	checkout     usecase.CheckoutUsecase
	feed         service.ChangeFeed
	minPassword  int
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Checkout     usecase.CheckoutUsecase
	Feed         service.ChangeFeed
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	minPassword := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPassword > 0 {
		minPassword = params.Config.Auth.MinPassword
	}

	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		checkout:     params.Checkout,
		feed:         params.Feed,
		minPassword:  minPassword,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register signs up a staff member. The account waits for admin approval.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone is required")
	}

	user, err := srv.createAccount(ctx, input.Name, phone, phone, input.Password, entity.RoleStaff, entity.UserStatusPending)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Staff registered, waiting for approval", slog.String("userID", user.ID.String()))

	return user, nil
}

// CreateUser adds an active account on behalf of an admin.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid role")
	}

	username := strings.TrimSpace(input.Username)
	phone := strings.TrimSpace(input.Phone)
	if username == "" {
		username = phone
	}
	if username == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username or phone is required")
	}

	return srv.createAccount(ctx, input.Name, username, phone, input.Password, role, entity.UserStatusActive)
}

func (srv *userService) createAccount(ctx context.Context, name, username, phone, password string, role entity.Role, status entity.UserStatus) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	hash, err := srv.hashPassword(ctx, password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         name,
		Username:     username,
		Phone:        phone,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()

		exists, err := userRepo.ExistsByUsernameOrPhone(ctx, username, phone)
		if err != nil {
			return errors.Wrap(err, "failed to check existing user")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishChanges(ctx, srv.feed, srv.logger, service.TopicUsers)

	return user, nil
}

// Login checks the credentials and the account status, then marks the user online.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)

	user, err := srv.userRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err := statusError(user); err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, entity.Roles{user.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	if err := srv.userRepo.SetOnline(ctx, user.ID, true); err != nil {
		return nil, errors.Wrap(err, "failed to mark user online")
	}
	user.IsOnline = true

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()), slog.String("role", user.Role.String()))
	publishChanges(ctx, srv.feed, srv.logger, service.UserTopic(user.ID.String()), service.TopicUsers)

	return &usecase.LoginOutput{AccessToken: token, User: user}, nil
}

// Logout marks the user offline and forgets the ordering session.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.SetOnline(ctx, userID, false); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to mark user offline")
	}

	srv.dropSession(userID)
	publishChanges(ctx, srv.feed, srv.logger, service.UserTopic(userID.String()), service.TopicUsers)

	return nil
}

// Authorize loads the caller of an authenticated request and rejects accounts that may not log in.
func (srv *userService) Authorize(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if err := statusError(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Approve activates a pending registration.
func (srv *userService) Approve(ctx context.Context, userID uuid.UUID) error {
	return srv.transition(ctx, userID, entity.UserStatusPending, entity.UserStatusActive)
}

// Lock blocks an active account. The user is logged out.
func (srv *userService) Lock(ctx context.Context, userID uuid.UUID) error {
	if err := srv.transition(ctx, userID, entity.UserStatusActive, entity.UserStatusLocked); err != nil {
		return err
	}

	if err := srv.userRepo.SetOnline(ctx, userID, false); err != nil {
		srv.log(ctx).Warn("Failed to mark locked user offline", slog.String("userID", userID.String()), slog.Any("error", err))
	}
	srv.dropSession(userID)

	return nil
}

// Unlock reactivates a locked account.
func (srv *userService) Unlock(ctx context.Context, userID uuid.UUID) error {
	return srv.transition(ctx, userID, entity.UserStatusLocked, entity.UserStatusActive)
}

func (srv *userService) transition(ctx context.Context, userID uuid.UUID, from, to entity.UserStatus) error {
	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.Status != from {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(string(user.Status) + " -> " + string(to))
	}

	if err := srv.userRepo.UpdateStatus(ctx, userID, to); err != nil {
		return errors.Wrap(err, "failed to update user status")
	}

	srv.log(ctx).Info("User status changed",
		slog.String("userID", userID.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
	publishChanges(ctx, srv.feed, srv.logger, service.UserTopic(userID.String()), service.TopicUsers)

	return nil
}

// Delete removes the account permanently.
func (srv *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.dropSession(userID)
	publishChanges(ctx, srv.feed, srv.logger, service.UserTopic(userID.String()), service.TopicUsers)

	return nil
}

// UpdateProfile changes name, password and avatar.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
		}
		user.Name = name
	}
	if input.Password != nil {
		hash, err := srv.hashPassword(ctx, *input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.Avatar != nil {
		user.Avatar = strings.TrimSpace(*input.Avatar)
	}
	user.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	publishChanges(ctx, srv.feed, srv.logger, service.UserTopic(userID.String()), service.TopicUsers)

	return user, nil
}

// ListUsers returns the accounts matching filter.
func (srv *userService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns one account.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) hashPassword(ctx context.Context, password string) (string, error) {
	if len([]rune(password)) < srv.minPassword {
		return "", domainerrors.ErrPasswordTooShort
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return "", domainerrors.ErrPasswordHashFailed
	}

	return hash, nil
}

func (srv *userService) dropSession(userID uuid.UUID) {
	if srv.checkout != nil {
		srv.checkout.DropSession(userID)
	}
}

func statusError(user *entity.User) error {
	switch user.Status {
	case entity.UserStatusActive:
		return nil
	case entity.UserStatusPending:
		return domainerrors.ErrAccountPending
	case entity.UserStatusLocked:
		return domainerrors.ErrAccountLocked
	default:
		return domainerrors.ErrUnauthorized
	}
}
