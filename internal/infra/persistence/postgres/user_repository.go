package postgres

import (
	"context"
	"time"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateUser persists a new user and copies the generated values back.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserEmailConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAddressNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidationError("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves a user by its unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find user by ID")
}

// FindUserByEmail retrieves the user owning email, reading from the primary.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("email = ?", email)

	return repo.findOne(query, "failed to find user by email")
}

func (repo *userRepository) findOne(query *gorm.DB, failure string) (*entity.User, error) {
	var userM model.UserModel
	if err := query.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, failure)
	}

	return toUserDomain(&userM), nil
}

// FindUsersByAddressID returns the users of one address in ID order.
func (repo *userRepository) FindUsersByAddressID(ctx context.Context, addressID int64) ([]*entity.User, error) {
	var userModels []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("address_id = ?", addressID).
		Order("id").
		Find(&userModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find users by address")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindUsersByAddressIDs loads the users of several addresses in one query.
func (repo *userRepository) FindUsersByAddressIDs(ctx context.Context, addressIDs []int64) (map[int64][]*entity.User, error) {
	grouped := make(map[int64][]*entity.User)
	if len(addressIDs) == 0 {
		return grouped, nil
	}

	var userModels []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("address_id IN ?", addressIDs).
		Order("id").
		Find(&userModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find users by addresses")
	}

	for _, userM := range userModels {
		grouped[userM.AddressID] = append(grouped[userM.AddressID], toUserDomain(userM))
	}

	return grouped, nil
}

// UpdateUser writes the mutable columns of an existing user. AddressID never changes.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":       user.Name,
			"email":      user.Email,
			"phone":      user.Phone,
			"updated_at": now,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = now

	return nil
}

// DeleteUser removes a user by its ID.
func (repo *userRepository) DeleteUser(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DeleteUsersByAddressID removes every user of an address.
func (repo *userRepository) DeleteUsersByAddressID(ctx context.Context, addressID int64) (int64, error) {
	result := repo.db.WithContext(ctx).Where("address_id = ?", addressID).Delete(&model.UserModel{})
	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete users by address")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		AddressID: data.AddressID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		AddressID: data.AddressID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
