package impl

import (
	"context"
	"log/slog"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
	events      *eventEmitter
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	UserRepo    repository.UserRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		userRepo:    params.UserRepo,
		events:      newEventEmitter(params.Publisher),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser adds a user to an existing address. A present email must not belong to anyone else.
func (srv *userService) CreateUser(ctx context.Context, addressID int64, input *usecase.CreateUserInput) (*entity.User, error) {
	user := &entity.User{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		AddressID: addressID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := findAddress(ctx, repoFactory.AddressRepo(), addressID); err != nil {
			return err
		}

		if input.Email != nil {
			if err := ensureEmailFree(ctx, userRepo, *input.Email, 0, domainerrors.ErrUserEmailConflict); err != nil {
				return err
			}
		}

		return userRepo.CreateUser(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Log(ctx, failureLevel(err), "Failed to create user", slog.Int64("addressID", addressID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create user transaction")
	}

	srv.log(ctx).Debug("User created", slog.Int64("addressID", addressID), slog.Int64("userID", user.ID))
	srv.events.emit(ctx, srv.log(ctx), service.EventUserCreated, addressID, user.ID)

	return user, nil
}

// GetUser retrieves one user.
func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	return findUser(ctx, srv.userRepo, id)
}

// ListAddressUsers returns the users living at an address.
func (srv *userService) ListAddressUsers(ctx context.Context, addressID int64) ([]*entity.User, error) {
	if _, err := findAddress(ctx, srv.addressRepo, addressID); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.FindUsersByAddressID(ctx, addressID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by address")
	}

	return users, nil
}

// UpdateUser applies a partial update. A new email must differ from the current one and be unused.
func (srv *userService) UpdateUser(ctx context.Context, id int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := findUser(ctx, userRepo, id)
		if err != nil {
			return err
		}

		if !input.HasValues() {
			return domainerrors.ErrNoValuesToUpdate
		}

		if email, ok := input.Email.Get(); ok {
			if user.HasEmail(email) {
				return domainerrors.ErrEmailNotChanged
			}
			if err := ensureEmailFree(ctx, userRepo, email, user.ID, domainerrors.ErrUserEmailTaken); err != nil {
				return err
			}
		}

		input.ApplyTo(user)
		if err := userRepo.UpdateUser(ctx, user); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Log(ctx, failureLevel(err), "Failed to update user", slog.Int64("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update user transaction")
	}

	srv.events.emit(ctx, srv.log(ctx), service.EventUserUpdated, updated.AddressID, updated.ID)

	return updated, nil
}

// DeleteAddressUser removes a user, scoped to the address it lives at.
func (srv *userService) DeleteAddressUser(ctx context.Context, addressID, userID int64) (*entity.User, error) {
	var deleted *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := findAddress(ctx, repoFactory.AddressRepo(), addressID); err != nil {
			return err
		}

		user, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}
		if user.AddressID != addressID {
			return domainerrors.ErrUserNotFound
		}

		if err := userRepo.DeleteUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}
		deleted = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Log(ctx, failureLevel(err), "Failed to delete user",
			slog.Int64("addressID", addressID),
			slog.Int64("userID", userID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute delete user transaction")
	}

	srv.events.emit(ctx, srv.log(ctx), service.EventUserDeleted, addressID, userID)

	return deleted, nil
}

// ensureEmailFree returns conflict when email belongs to a user other than ownerID.
func ensureEmailFree(ctx context.Context, userRepo repository.UserRepository, email string, ownerID int64, conflict error) error {
	other, err := userRepo.FindUserByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to find user by email")
	case other.ID != ownerID:
		return conflict
	default:
		return nil
	}
}

func findUser(ctx context.Context, userRepo repository.UserRepository, id int64) (*entity.User, error) {
	user, err := userRepo.FindUserByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}
