// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"addressbook/internal/domain/geo"
)

// Address is a physical location that users live at.
// The (Latitude, Longitude) pair identifies it as uniquely as its ID.
type Address struct {
	ID        int64     // System-assigned identifier.
	Door      *string   // Optional door or apartment designation; nil when never set.
	Street    string    // Street line.
	City      string    // City name.
	State     string    // State or region.
	Country   string    // Country name or code.
	Zip       string    // Postal code.
	Latitude  float64   // Geographic latitude in degrees.
	Longitude float64   // Geographic longitude in degrees.
	CreatedAt time.Time // Timestamp of when this address was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Point returns the address coordinates.
func (a *Address) Point() geo.Point {
	return geo.NewPoint(a.Latitude, a.Longitude)
}

// SameCoordinates reports whether the address sits exactly at (lat, lng).
func (a *Address) SameCoordinates(lat, lng float64) bool {
	return a.Latitude == lat && a.Longitude == lng
}
