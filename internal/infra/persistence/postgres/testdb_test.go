package postgres

import (
	"fmt"
	"testing"

	"addressbook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the directory schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

func newTestAddress(lat, lng float64) *entity.Address {
	return &entity.Address{
		Street:    "123 Main St",
		City:      "Mountain View",
		State:     "CA",
		Country:   "United States",
		Zip:       "94043",
		Latitude:  lat,
		Longitude: lng,
	}
}

func newTestUser(addressID int64, name string, email *string) *entity.User {
	return &entity.User{
		Name:      name,
		Email:     email,
		Phone:     "+1-555-0100",
		AddressID: addressID,
	}
}

func ptr[T any](v T) *T {
	return &v
}
