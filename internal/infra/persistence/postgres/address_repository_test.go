package postgres

import (
	"context"
	"testing"

	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/geo"
	"addressbook/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	address := newTestAddress(37.123, -122.123)
	address.Door = ptr("Apt. 1")
	require.NoError(t, repo.CreateAddress(ctx, address))
	assert.Positive(t, address.ID)
	assert.False(t, address.CreatedAt.IsZero())

	found, err := repo.FindAddressByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apt. 1", *found.Door)
	assert.Equal(t, 37.123, found.Latitude)
	assert.Equal(t, -122.123, found.Longitude)

	byCoords, err := repo.FindAddressByCoordinates(ctx, 37.123, -122.123)
	require.NoError(t, err)
	assert.Equal(t, address.ID, byCoords.ID)

	_, err = repo.FindAddressByCoordinates(ctx, 37.123, -122.124)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)

	_, err = repo.FindAddressByID(ctx, address.ID+100)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressRepository_CreateDuplicateCoordinates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	require.NoError(t, repo.CreateAddress(ctx, newTestAddress(37.123, -122.123)))

	err := repo.CreateAddress(ctx, newTestAddress(37.123, -122.123))
	assert.ErrorIs(t, err, domainerrors.ErrAddressCoordinatesConflict)

	// Sharing one coordinate only is fine.
	require.NoError(t, repo.CreateAddress(ctx, newTestAddress(37.123, 0)))
}

func TestAddressRepository_ListAddresses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	for i := range 5 {
		require.NoError(t, repo.CreateAddress(ctx, newTestAddress(float64(i), float64(i))))
	}

	tests := []struct {
		name     string
		offset   int
		limit    int
		wantLats []float64
	}{
		{name: "first page", offset: 0, limit: 2, wantLats: []float64{0, 1}},
		{name: "middle page", offset: 2, limit: 2, wantLats: []float64{2, 3}},
		{name: "short last page", offset: 4, limit: 2, wantLats: []float64{4}},
		{name: "past the end", offset: 10, limit: 2, wantLats: []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListAddresses(ctx, tt.offset, tt.limit)
			require.NoError(t, err)

			lats := make([]float64, 0, len(got))
			for _, address := range got {
				lats = append(lats, address.Latitude)
			}
			assert.Equal(t, tt.wantLats, lats)
		})
	}
}

func TestAddressRepository_FindAddressCandidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	near := newTestAddress(37.125, -122.121)
	far := newTestAddress(40.7128, -74.0060)
	require.NoError(t, repo.CreateAddress(ctx, near))
	require.NoError(t, repo.CreateAddress(ctx, far))

	bound, ok := geo.BoundAround(geo.NewPoint(37.123, -122.123), 10)
	require.True(t, ok)

	got, err := repo.FindAddressCandidates(ctx, &bound)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, near.ID, got[0].ID)

	all, err := repo.FindAddressCandidates(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAddressRepository_UpdateAddress(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewAddressRepository(newTestDB(t))

	first := newTestAddress(1, 1)
	second := newTestAddress(2, 2)
	require.NoError(t, repo.CreateAddress(ctx, first))
	require.NoError(t, repo.CreateAddress(ctx, second))

	first.Street = "456 Elm St"
	first.Door = ptr("B")
	first.Latitude = 3
	require.NoError(t, repo.UpdateAddress(ctx, first))

	stored, err := repo.FindAddressByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "456 Elm St", stored.Street)
	assert.Equal(t, "B", *stored.Door)
	assert.Equal(t, 3.0, stored.Latitude)

	first.Latitude, first.Longitude = 2, 2
	err = repo.UpdateAddress(ctx, first)
	assert.ErrorIs(t, err, domainerrors.ErrAddressCoordinatesTaken)

	missing := newTestAddress(9, 9)
	missing.ID = second.ID + 100
	assert.ErrorIs(t, repo.UpdateAddress(ctx, missing), repository.ErrAddressNotFound)
}

func TestAddressRepository_DeleteAddressCascadesToUsers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	addressRepo := NewAddressRepository(db)
	userRepo := NewUserRepository(db)

	address := newTestAddress(37.123, -122.123)
	require.NoError(t, addressRepo.CreateAddress(ctx, address))
	user := newTestUser(address.ID, "John Doe", ptr("john@example.com"))
	require.NoError(t, userRepo.CreateUser(ctx, user))

	require.NoError(t, addressRepo.DeleteAddress(ctx, address.ID))

	_, err := userRepo.FindUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.ErrorIs(t, addressRepo.DeleteAddress(ctx, address.ID), repository.ErrAddressNotFound)
}
