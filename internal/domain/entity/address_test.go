package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_SameCoordinates(t *testing.T) {
	t.Parallel()

	address := &Address{Latitude: 37.123, Longitude: -122.123}

	assert.True(t, address.SameCoordinates(37.123, -122.123))
	assert.False(t, address.SameCoordinates(37.123, -122.124))
	assert.Equal(t, 37.123, address.Point().Lat)
	assert.Equal(t, -122.123, address.Point().Lng)
}

func TestUser_HasEmail(t *testing.T) {
	t.Parallel()

	email := "john@x.com"

	assert.True(t, (&User{Email: &email}).HasEmail("john@x.com"))
	assert.False(t, (&User{Email: &email}).HasEmail("jane@x.com"))
	assert.False(t, (&User{}).HasEmail(""))
}
