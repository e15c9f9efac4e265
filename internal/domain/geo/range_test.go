package geo

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type place struct {
	name string
	at   Point
}

func locatePlace(p place) Point { return p.at }

func TestFilterWithinRadius(t *testing.T) {
	t.Parallel()

	center := NewPoint(37.123, -122.123)
	places := []place{
		{name: "same spot", at: center},
		{name: "nearby", at: NewPoint(37.125, -122.121)},
		{name: "far", at: NewPoint(40.7128, -74.0060)},
	}

	got := FilterWithinRadius(places, center, 1, locatePlace)
	require.Len(t, got, 2)
	assert.Equal(t, "same spot", got[0].name)
	assert.Equal(t, "nearby", got[1].name)
}

func TestFilterWithinRadius_BoundaryIsExclusive(t *testing.T) {
	t.Parallel()

	center := NewPoint(0, 0)
	edge := NewPoint(0, 1)
	radius := Distance(center, edge)

	got := FilterWithinRadius([]place{{name: "edge", at: edge}}, center, radius, locatePlace)
	assert.Empty(t, got)

	got = FilterWithinRadius([]place{{name: "edge", at: edge}}, center, math.Nextafter(radius, math.Inf(1)), locatePlace)
	assert.Len(t, got, 1)
}

func TestFilterWithinRadius_EmptyInputs(t *testing.T) {
	t.Parallel()

	got := FilterWithinRadius[place](nil, NewPoint(0, 0), 10, locatePlace)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = FilterWithinRadius([]place{{at: NewPoint(0, 0)}}, NewPoint(0, 0), 0, locatePlace)
	assert.Empty(t, got)
}

func TestFilterWithinRadius_NeverReturnsOutOfRange(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 42))
	places := make([]place, 0, 2000)
	for range 2000 {
		places = append(places, place{at: randomPoint(rng)})
	}

	for range 50 {
		center := randomPoint(rng)
		radius := rng.Float64() * 5000

		for _, p := range FilterWithinRadius(places, center, radius, locatePlace) {
			assert.Less(t, Distance(center, p.at), radius)
		}
	}
}

func TestBoundAround_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		center Point
		radius float64
	}{
		{name: "zero radius", center: NewPoint(10, 10), radius: 0},
		{name: "negative radius", center: NewPoint(10, 10), radius: -1},
		{name: "nan radius", center: NewPoint(10, 10), radius: math.NaN()},
		{name: "huge radius", center: NewPoint(10, 10), radius: 15000},
		{name: "invalid center", center: NewPoint(100, 10), radius: 5},
		{name: "wraps the antimeridian", center: NewPoint(0, 179.99), radius: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := BoundAround(tt.center, tt.radius)
			assert.False(t, ok)
		})
	}
}

func TestBoundAround_ContainsEveryPointInRange(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	checked := 0

	for range 200 {
		center := randomPoint(rng)
		radius := 1 + rng.Float64()*2000

		bound, ok := BoundAround(center, radius)
		if !ok {
			continue
		}

		for range 200 {
			// Sample points close to the center so a good share of them is in range.
			p := NewPoint(
				math.Max(-90, math.Min(90, center.Lat+(rng.Float64()*2-1)*radius/100)),
				math.Max(-180, math.Min(180, center.Lng+(rng.Float64()*2-1)*radius/50)),
			)
			if Distance(center, p) < radius {
				checked++
				assert.True(t, bound.Contains(p.Orb()), "center %+v radius %f point %+v", center, radius, p)
			}
		}
	}

	assert.Positive(t, checked)
}

func TestBoundAround_NearPoleSpansAllLongitudes(t *testing.T) {
	t.Parallel()

	bound, ok := BoundAround(NewPoint(89.9, 0), 100)
	require.True(t, ok)
	assert.InDelta(t, -180, bound.Min[0], 1e-9)
	assert.InDelta(t, 180, bound.Max[0], 1e-9)
	assert.True(t, bound.Contains(NewPoint(89.95, 170).Orb()))
}
