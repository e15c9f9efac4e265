// Package usecase declares the application operations exposed to delivery adapters.
package usecase

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/optional"
)

// CreateAddressInput represents the input for creating an address
type CreateAddressInput struct {
	Door      *string
	Street    string
	City      string
	State     string
	Country   string
	Zip       string
	Latitude  float64
	Longitude float64
}

// UpdateAddressInput carries the fields of a partial address update.
// Absent fields are left untouched; a present empty Door clears the door.
type UpdateAddressInput struct {
	Door      optional.Value[string]
	Street    optional.Value[string]
	City      optional.Value[string]
	State     optional.Value[string]
	Country   optional.Value[string]
	Zip       optional.Value[string]
	Latitude  optional.Value[float64]
	Longitude optional.Value[float64]
}

// HasValues reports whether at least one field is present.
func (in *UpdateAddressInput) HasValues() bool {
	return optional.AnySet(in.Door, in.Street, in.City, in.State, in.Country, in.Zip, in.Latitude, in.Longitude)
}

// MovesCoordinates reports whether the update touches latitude or longitude.
func (in *UpdateAddressInput) MovesCoordinates() bool {
	return in.Latitude.IsSet() || in.Longitude.IsSet()
}

// ApplyTo copies the present fields onto address.
func (in *UpdateAddressInput) ApplyTo(address *entity.Address) {
	if door, ok := in.Door.Get(); ok {
		address.Door = &door
	}
	in.Street.Apply(&address.Street)
	in.City.Apply(&address.City)
	in.State.Apply(&address.State)
	in.Country.Apply(&address.Country)
	in.Zip.Apply(&address.Zip)
	in.Latitude.Apply(&address.Latitude)
	in.Longitude.Apply(&address.Longitude)
}

// ListAddressesInput pages through addresses. Absent values take the configured defaults.
type ListAddressesInput struct {
	Skip  optional.Value[int]
	Limit optional.Value[int]
}

// RangeQuery selects the addresses strictly closer than RadiusKm to the center.
type RangeQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// AddressDetails is an address together with the users living there.
type AddressDetails struct {
	Address *entity.Address
	Users   []*entity.User
}

// AddressUsecase defines the interface for address management use cases
type AddressUsecase interface {
	CreateAddress(ctx context.Context, input *CreateAddressInput) (*AddressDetails, error)
	GetAddress(ctx context.Context, id int64) (*AddressDetails, error)
	ListAddresses(ctx context.Context, input *ListAddressesInput) ([]*AddressDetails, error)
	FindAddressesWithinRange(ctx context.Context, query *RangeQuery) ([]*AddressDetails, error)
	UpdateAddress(ctx context.Context, id int64, input *UpdateAddressInput) (*AddressDetails, error)

	// DeleteAddress removes the address together with its users and returns what was removed.
	DeleteAddress(ctx context.Context, id int64) (*AddressDetails, error)
}
