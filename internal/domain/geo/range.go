package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// boundPadding widens the pre-filter box so rounding never drops a point that is in range.
	boundPadding = 1e-3

	snapEpsilon = 1e-9

	// Beyond a quarter of the circumference a box no longer narrows anything useful.
	maxBoundRadiusKm = math.Pi / 2 * EarthRadiusKm
)

// BoundAround returns a lat/lng box containing every point closer than radiusKm to center.
// ok is false when no single box can be used (antimeridian wrap, very large or invalid radius),
// in which case callers must scan without a pre-filter.
func BoundAround(center Point, radiusKm float64) (bound orb.Bound, ok bool) {
	if !center.Valid() || math.IsNaN(radiusKm) || radiusKm <= 0 || radiusKm >= maxBoundRadiusKm {
		return orb.Bound{}, false
	}

	// orb works on a sphere of orb.EarthRadius meters, so convert through the angular distance.
	angular := radiusKm / EarthRadiusKm * (1 + boundPadding)
	bound = orbgeo.NewBoundAroundPoint(center.Orb(), angular*orb.EarthRadius)

	if math.IsNaN(bound.Min[0]) || math.IsNaN(bound.Max[0]) ||
		math.IsNaN(bound.Min[1]) || math.IsNaN(bound.Max[1]) {
		return orb.Bound{}, false
	}

	// A wrapped box has Min east of Max and cannot be expressed as two BETWEEN clauses.
	if bound.Min[0] > bound.Max[0] {
		return orb.Bound{}, false
	}

	// Near a pole orb spans every longitude; snap the edges so degree round-trips can't clip them.
	if bound.Max[0]-bound.Min[0] >= 360-snapEpsilon {
		bound.Min[0], bound.Max[0] = -180, 180
	}
	if bound.Min[1] <= -90+snapEpsilon {
		bound.Min[1] = -90
	}
	if bound.Max[1] >= 90-snapEpsilon {
		bound.Max[1] = 90
	}

	return bound, true
}

// FilterWithinRadius keeps the items whose location is strictly closer than radiusKm to center.
// Input order is preserved; the result is never nil.
func FilterWithinRadius[T any](items []T, center Point, radiusKm float64, locate func(T) Point) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if Distance(center, locate(item)) < radiusKm {
			result = append(result, item)
		}
	}

	return result
}
