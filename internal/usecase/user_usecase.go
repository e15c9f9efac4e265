package usecase

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/optional"
)

// CreateUserInput represents the input for creating a user under an address
type CreateUserInput struct {
	Name  string
	Email *string
	Phone string
}

// UpdateUserInput carries the fields of a partial user update.
type UpdateUserInput struct {
	Name  optional.Value[string]
	Email optional.Value[string]
	Phone optional.Value[string]
}

// HasValues reports whether at least one field is present.
func (in *UpdateUserInput) HasValues() bool {
	return optional.AnySet(in.Name, in.Email, in.Phone)
}

// ApplyTo copies the present fields onto user.
func (in *UpdateUserInput) ApplyTo(user *entity.User) {
	in.Name.Apply(&user.Name)
	in.Phone.Apply(&user.Phone)
	if email, ok := in.Email.Get(); ok {
		user.Email = &email
	}
}

// UserUsecase defines the interface for managing the users of an address
type UserUsecase interface {
	CreateUser(ctx context.Context, addressID int64, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	ListAddressUsers(ctx context.Context, addressID int64) ([]*entity.User, error)
	UpdateUser(ctx context.Context, id int64, input *UpdateUserInput) (*entity.User, error)

	// DeleteAddressUser removes the user only when it lives at addressID.
	DeleteAddressUser(ctx context.Context, addressID, userID int64) (*entity.User, error)
}
