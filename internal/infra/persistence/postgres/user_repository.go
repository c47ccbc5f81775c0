package postgres

import (
	"context"

	"drinkpos/internal/domain/entity"
	"drinkpos/internal/domain/repository"
	"drinkpos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}

		return storeError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by id", "id = ?", id)
}

// FindByIdentifier retrieves a user whose username or phone equals identifier.
func (repo *userRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by identifier", "username = ? OR phone = ?", identifier, identifier)
}

func (repo *userRepository) first(ctx context.Context, failure string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, failure)
	}

	return toUserDomain(&userM), nil
}

// ExistsByUsernameOrPhone reports whether any user already uses username or phone.
func (repo *userRepository) ExistsByUsernameOrPhone(ctx context.Context, username, phone string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ? OR phone = ? OR username = ? OR phone = ?", username, username, phone, phone).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check user existence")
	}

	return count > 0, nil
}

// List retrieves users matching filter ordered by name.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx).Order("name ASC")
	if filter.Role != nil {
		query = query.Where("role = ?", string(*filter.Role))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var userModels []*model.UserModel
	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Update modifies name, password hash and avatar.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          user.Name,
			"password_hash": user.PasswordHash,
			"avatar":        user.Avatar,
		})

	return repo.checkUpdate(result, "failed to update user")
}

// UpdateStatus changes the account status.
func (repo *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	return repo.checkUpdate(result, "failed to update user status")
}

// SetOnline changes the presence flag.
func (repo *userRepository) SetOnline(ctx context.Context, id uuid.UUID, online bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("is_online", online)

	return repo.checkUpdate(result, "failed to update user presence")
}

func (repo *userRepository) checkUpdate(result *gorm.DB, failure string) error {
	if result.Error != nil {
		return storeError(result.Error, failure)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})

	if result.Error != nil {
		return storeError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CountOnline counts users currently flagged online with the given role.
func (repo *userRepository) CountOnline(ctx context.Context, role entity.Role) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ? AND is_online = ? AND status = ?", string(role), true, string(entity.UserStatusActive)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count online users")
	}

	return count, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Username:     data.Username,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Status:       entity.UserStatus(data.Status),
		IsOnline:     data.IsOnline,
		Avatar:       data.Avatar,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Username:     data.Username,
		Phone:        data.Phone,
		PasswordHash: data.PasswordHash,
		Role:         string(data.Role),
		Status:       string(data.Status),
		IsOnline:     data.IsOnline,
		Avatar:       data.Avatar,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
