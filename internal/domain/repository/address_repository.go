// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"

	"github.com/paulmach/orb"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// CreateAddress persists a new address and fills in its ID and timestamps.
	// A coordinate collision reported by the store is returned as a conflict error.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id int64) (*entity.Address, error)

	// FindAddressByCoordinates retrieves the address at exactly (lat, lng).
	// Returns ErrAddressNotFound if no address sits there.
	FindAddressByCoordinates(ctx context.Context, lat, lng float64) (*entity.Address, error)

	// ListAddresses returns addresses ordered by ID, skipping offset rows.
	ListAddresses(ctx context.Context, offset, limit int) ([]*entity.Address, error)

	// FindAddressCandidates returns every address inside bound, ordered by ID.
	// A nil bound returns all addresses.
	FindAddressCandidates(ctx context.Context, bound *orb.Bound) ([]*entity.Address, error)

	// UpdateAddress saves every field of an existing address.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id int64) error
}
