package handler

import (
	"time"

	"addressbook/internal/domain/entity"
	"addressbook/internal/usecase"
)

// UserResponse is the JSON representation of a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     string    `json:"phone"`
	AddressID int64     `json:"address_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddressResponse is the JSON representation of an address and its users.
type AddressResponse struct {
	ID        int64          `json:"id"`
	Door      *string        `json:"door"`
	Street    string         `json:"street"`
	City      string         `json:"city"`
	State     string         `json:"state"`
	Country   string         `json:"country"`
	Zip       string         `json:"zip"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Users     []UserResponse `json:"users"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		AddressID: user.AddressID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func newUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return out
}

func newAddressResponse(details *usecase.AddressDetails) AddressResponse {
	address := details.Address

	return AddressResponse{
		ID:        address.ID,
		Door:      address.Door,
		Street:    address.Street,
		City:      address.City,
		State:     address.State,
		Country:   address.Country,
		Zip:       address.Zip,
		Latitude:  address.Latitude,
		Longitude: address.Longitude,
		Users:     newUserResponses(details.Users),
		CreatedAt: address.CreatedAt,
		UpdatedAt: address.UpdatedAt,
	}
}

func newAddressResponses(details []*usecase.AddressDetails) []AddressResponse {
	out := make([]AddressResponse, 0, len(details))
	for _, d := range details {
		out = append(out, newAddressResponse(d))
	}

	return out
}
