package kernel_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("should create valid coordinates", func(t *testing.T) {
		coords, err := kernel.NewCoordinates(40.0, -73.9)

		require.NoError(t, err)
		require.NoError(t, coords.Validate())
		assert.InDelta(t, 40.0, coords.Latitude(), 0)
		assert.InDelta(t, -73.9, coords.Longitude(), 0)
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lon float64
		}{
			{"south pole", -90, 0},
			{"north pole", 90, 0},
			{"date line west", 0, -180},
			{"date line east", 0, 180},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				coords, err := kernel.NewCoordinates(tc.lat, tc.lon)

				require.NoError(t, err)
				assert.InDelta(t, tc.lat, coords.Latitude(), 0)
				assert.InDelta(t, tc.lon, coords.Longitude(), 0)
			})
		}
	})

	t.Run("should fail with latitude above range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(90.1, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should fail with latitude below range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(-90.1, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with longitude out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(0, 180.5)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("should join both range errors", func(t *testing.T) {
		_, err := kernel.NewCoordinates(120, -200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestCoordinates_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var coords kernel.Coordinates

		err := coords.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrCoordinatesAreNotConstructed, err)
	})

	t.Run("should pass for constructed value", func(t *testing.T) {
		coords, _ := kernel.NewCoordinates(1, 2)

		require.NoError(t, coords.Validate())
	})
}

func TestCoordinates_IsEqual(t *testing.T) {
	t.Run("should report equal coordinates", func(t *testing.T) {
		a, _ := kernel.NewCoordinates(40.0, -73.9)
		b, _ := kernel.NewCoordinates(40.0, -73.9)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should report different coordinates", func(t *testing.T) {
		a, _ := kernel.NewCoordinates(40.0, -73.9)
		b, _ := kernel.NewCoordinates(40.0, -73.8)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should fail when comparing with zero value", func(t *testing.T) {
		a, _ := kernel.NewCoordinates(40.0, -73.9)
		var b kernel.Coordinates

		_, err := a.IsEqual(b)

		require.Error(t, err)
	})
}

func TestCoordinates_String(t *testing.T) {
	coords, _ := kernel.NewCoordinates(40.0, -73.9)

	assert.Equal(t, "Coordinates(40.000000,-73.900000)", coords.String())
}
