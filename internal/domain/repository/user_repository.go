package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user and fills in its ID and timestamps.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)

	// FindUserByEmail retrieves the user owning email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindUsersByAddressID returns the users of one address, ordered by ID.
	FindUsersByAddressID(ctx context.Context, addressID int64) ([]*entity.User, error)

	// FindUsersByAddressIDs groups the users of several addresses by address ID.
	// Addresses without users have no entry.
	FindUsersByAddressIDs(ctx context.Context, addressIDs []int64) (map[int64][]*entity.User, error)

	// UpdateUser saves every mutable field of an existing user.
	UpdateUser(ctx context.Context, user *entity.User) error

	// DeleteUser removes a user by its ID.
	DeleteUser(ctx context.Context, id int64) error

	// DeleteUsersByAddressID removes all users of an address and returns how many were removed.
	DeleteUsersByAddressID(ctx context.Context, addressID int64) (int64, error)
}
