package postgres

import (
	"context"
	"testing"

	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	addressRepo := NewAddressRepository(db)

	t.Run("commits on success", func(t *testing.T) {
		var created int64
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			address := newTestAddress(1, 1)
			if err := f.AddressRepo().CreateAddress(ctx, address); err != nil {
				return err
			}
			created = address.ID

			return f.UserRepo().CreateUser(ctx, newTestUser(address.ID, "A", nil))
		})
		require.NoError(t, err)

		_, err = addressRepo.FindAddressByID(ctx, created)
		assert.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.AddressRepo().CreateAddress(ctx, newTestAddress(2, 2)); err != nil {
				return err
			}

			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = addressRepo.FindAddressByCoordinates(ctx, 2, 2)
		assert.ErrorIs(t, err, repository.ErrAddressNotFound)
	})

	t.Run("rolls back and repanics", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				_ = f.AddressRepo().CreateAddress(ctx, newTestAddress(3, 3))
				panic("boom")
			})
		})

		_, err := addressRepo.FindAddressByCoordinates(ctx, 3, 3)
		assert.ErrorIs(t, err, repository.ErrAddressNotFound)
	})
}
