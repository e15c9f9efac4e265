package impl

import (
	"context"
	"testing"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/optional"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func johnDoe() *entity.User {
	return &entity.User{
		ID:        4,
		Name:      "John Doe",
		Email:     ptr("john@x.com"),
		Phone:     "555-555-5555",
		AddressID: 1,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	m := newServiceMocks(t)
	srv := m.userService()
	ctx := context.Background()

	m.expectTransaction()
	m.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(mainStreet(), nil)
	m.userRepo.EXPECT().FindUserByEmail(ctx, "john@x.com").Return(nil, repository.ErrUserNotFound)
	m.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = 4 }).
		Return(nil)
	m.expectEvent(service.EventUserCreated, 1, 4)

	user, err := srv.CreateUser(ctx, 1, &usecase.CreateUserInput{
		Name:  "John Doe",
		Email: ptr("john@x.com"),
		Phone: "555-555-5555",
	})
	require.NoError(t, err)
	assert.Equal(t, johnDoe(), user)
}

func TestUserService_CreateUser_WithoutEmailSkipsUniquenessCheck(t *testing.T) {
	m := newServiceMocks(t)
	srv := m.userService()
	ctx := context.Background()

	m.expectTransaction()
	m.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(mainStreet(), nil)
	m.userRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	m.publisher.EXPECT().PublishDirectoryEvent(ctx, mock.Anything).Return(nil)

	user, err := srv.CreateUser(ctx, 1, &usecase.CreateUserInput{Name: "Jane", Phone: "555"})
	require.NoError(t, err)
	assert.Nil(t, user.Email)
}

func TestUserService_CreateUser_AddressNotFound(t *testing.T) {
	m := newServiceMocks(t)
	srv := m.userService()
	ctx := context.Background()

	m.expectTransaction()
	m.addressRepo.EXPECT().FindAddressByID(ctx, int64(7)).Return(nil, repository.ErrAddressNotFound)

	_, err := srv.CreateUser(ctx, 7, &usecase.CreateUserInput{Name: "John Doe", Phone: "555"})
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	m := newServiceMocks(t)
	srv := m.userService()
	ctx := context.Background()

	m.expectTransaction()
	m.addressRepo.EXPECT().FindAddressByID(ctx, int64(2)).Return(&entity.Address{ID: 2}, nil)
	m.userRepo.EXPECT().FindUserByEmail(ctx, "john@x.com").Return(johnDoe(), nil)

	_, err := srv.CreateUser(ctx, 2, &usecase.CreateUserInput{Name: "Johnny", Email: ptr("john@x.com"), Phone: "555"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserEmailConflict))
	assert.Equal(t, "User with given email already exists", domainerrors.ErrUserEmailConflict.Message())
}

func TestUserService_GetUser(t *testing.T) {
	m := newServiceMocks(t)
	srv := m.userService()
	ctx := context.Background()

	m.userRepo.EXPECT().FindUserByID(ctx, int64(1)).Return(johnDoe(), nil)
	m.userRepo.EXPECT().FindUserByID(ctx, int64(2)).Return(nil, repository.ErrUserNotFound)

	user, err := srv.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, johnDoe(), user)

	_, err = srv.GetUser(ctx, 2)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_ListAddressUsers(t *testing.T) {
	m := newServiceMocks(t)
	srv := m.userService()
	ctx := context.Background()

	m.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(mainStreet(), nil)
	m.userRepo.EXPECT().FindUsersByAddressID(ctx, int64(1)).Return([]*entity.User{johnDoe()}, nil)

	users, err := srv.ListAddressUsers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []*entity.User{johnDoe()}, users)
}

func TestUserService_ListAddressUsers_AddressNotFound(t *testing.T) {
	m := newServiceMocks(t)
	srv := m.userService()
	ctx := context.Background()

	m.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(nil, repository.ErrAddressNotFound)

	_, err := srv.ListAddressUsers(ctx, 1)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestUserService_UpdateUser_Rules(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.UpdateUserInput
		setup   func(m *serviceMocks, ctx context.Context)
		wantErr error
	}{
		{
			name:    "no values",
			wantErr: domainerrors.ErrNoValuesToUpdate,
		},
		{
			name:    "same email",
			input:   usecase.UpdateUserInput{Email: optional.Of("john@x.com")},
			wantErr: domainerrors.ErrEmailNotChanged,
		},
		{
			name:  "email used by another user",
			input: usecase.UpdateUserInput{Email: optional.Of("jane@x.com")},
			setup: func(m *serviceMocks, ctx context.Context) {
				m.userRepo.EXPECT().
					FindUserByEmail(ctx, "jane@x.com").
					Return(&entity.User{ID: 5, Email: ptr("jane@x.com")}, nil)
			},
			wantErr: domainerrors.ErrUserEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newServiceMocks(t)
			srv := m.userService()
			ctx := context.Background()

			m.expectTransaction()
			m.userRepo.EXPECT().FindUserByID(ctx, int64(4)).Return(johnDoe(), nil)
			if tt.setup != nil {
				tt.setup(m, ctx)
			}

			_, err := srv.UpdateUser(ctx, 4, &tt.input)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	m := newServiceMocks(t)
	srv := m.userService()
	ctx := context.Background()

	m.expectTransaction()
	m.userRepo.EXPECT().FindUserByID(ctx, int64(4)).Return(nil, repository.ErrUserNotFound)

	_, err := srv.UpdateUser(ctx, 4, &usecase.UpdateUserInput{Name: optional.Of("Jim")})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateUser_AppliesOnlyPresentFields(t *testing.T) {
	m := newServiceMocks(t)
	srv := m.userService()
	ctx := context.Background()

	m.expectTransaction()
	m.userRepo.EXPECT().FindUserByID(ctx, int64(4)).Return(johnDoe(), nil)
	m.userRepo.EXPECT().FindUserByEmail(ctx, "johnny@x.com").Return(nil, repository.ErrUserNotFound)
	m.userRepo.EXPECT().UpdateUser(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	m.expectEvent(service.EventUserUpdated, 1, 4)

	user, err := srv.UpdateUser(ctx, 4, &usecase.UpdateUserInput{
		Email: optional.Of("johnny@x.com"),
		Phone: optional.Of("555-000-0000"),
	})
	require.NoError(t, err)

	want := johnDoe()
	want.Email = ptr("johnny@x.com")
	want.Phone = "555-000-0000"
	assert.Equal(t, want, user)
}

func TestUserService_UpdateUser_SetsEmailWhenAbsent(t *testing.T) {
	m := newServiceMocks(t)
	srv := m.userService()
	ctx := context.Background()

	current := johnDoe()
	current.Email = nil

	m.expectTransaction()
	m.userRepo.EXPECT().FindUserByID(ctx, int64(4)).Return(current, nil)
	m.userRepo.EXPECT().FindUserByEmail(ctx, "john@x.com").Return(nil, repository.ErrUserNotFound)
	m.userRepo.EXPECT().UpdateUser(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	m.expectEvent(service.EventUserUpdated, 1, 4)

	user, err := srv.UpdateUser(ctx, 4, &usecase.UpdateUserInput{Email: optional.Of("john@x.com")})
	require.NoError(t, err)
	assert.Equal(t, ptr("john@x.com"), user.Email)
}

func TestUserService_DeleteAddressUser(t *testing.T) {
	m := newServiceMocks(t)
	srv := m.userService()
	ctx := context.Background()

	m.expectTransaction()
	m.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(mainStreet(), nil)
	m.userRepo.EXPECT().FindUserByID(ctx, int64(4)).Return(johnDoe(), nil)
	m.userRepo.EXPECT().DeleteUser(ctx, int64(4)).Return(nil)
	m.expectEvent(service.EventUserDeleted, 1, 4)

	user, err := srv.DeleteAddressUser(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, johnDoe(), user)
}

func TestUserService_DeleteAddressUser_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *serviceMocks, ctx context.Context)
		wantErr error
	}{
		{
			name: "address does not exist",
			setup: func(m *serviceMocks, ctx context.Context) {
				m.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(nil, repository.ErrAddressNotFound)
			},
			wantErr: domainerrors.ErrAddressNotFound,
		},
		{
			name: "user does not exist",
			setup: func(m *serviceMocks, ctx context.Context) {
				m.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(mainStreet(), nil)
				m.userRepo.EXPECT().FindUserByID(ctx, int64(4)).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
		{
			name: "user lives at another address",
			setup: func(m *serviceMocks, ctx context.Context) {
				other := johnDoe()
				other.AddressID = 2
				m.addressRepo.EXPECT().FindAddressByID(ctx, int64(1)).Return(mainStreet(), nil)
				m.userRepo.EXPECT().FindUserByID(ctx, int64(4)).Return(other, nil)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newServiceMocks(t)
			srv := m.userService()
			ctx := context.Background()

			m.expectTransaction()
			tt.setup(m, ctx)

			_, err := srv.DeleteAddressUser(ctx, 1, 4)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.True(t, domainerrors.IsNotFound(err))
		})
	}
}
