package astroglide_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thurmanmarka/astroglide"
)

func TestTwilightFor_Ordering(t *testing.T) {
	phoenix := astroglide.Coordinates{Lat: 33.4484, Lon: -112.0740}
	locPHX, _ := time.LoadLocation("America/Phoenix")
	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, locPHX)

	civil, err := astroglide.TwilightFor(phoenix, date, astroglide.TwilightCivil)
	require.NoError(t, err)
	nautical, err := astroglide.TwilightFor(phoenix, date, astroglide.TwilightNautical)
	require.NoError(t, err)
	astro, err := astroglide.TwilightFor(phoenix, date, astroglide.TwilightAstronomical)
	require.NoError(t, err)

	sunrise, err := astroglide.SlideIntoSunset(phoenix, date)
	require.NoError(t, err)

	// Morning order: astronomical dawn -> nautical dawn -> civil dawn -> sunrise.
	require.True(t, astro.Rise.Before(nautical.Rise), "astronomical dawn should precede nautical dawn")
	require.True(t, nautical.Rise.Before(civil.Rise), "nautical dawn should precede civil dawn")
	require.True(t, civil.Rise.Before(sunrise.Rise), "civil dawn should precede sunrise")

	// Evening order is the mirror image.
	require.True(t, sunrise.Set.Before(civil.Set), "sunset should precede civil dusk")
	require.True(t, civil.Set.Before(nautical.Set), "civil dusk should precede nautical dusk")
	require.True(t, nautical.Set.Before(astro.Set), "nautical dusk should precede astronomical dusk")
}

func TestRiseSetFor_InvalidCoordinates(t *testing.T) {
	locPHX, _ := time.LoadLocation("America/Phoenix")
	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, locPHX)

	_, err := astroglide.RiseSetFor(astroglide.Sun, astroglide.Coordinates{Lat: 123, Lon: 0}, date)
	require.Error(t, err, "expected an error for an out-of-range latitude")

	_, err = astroglide.RiseSetFor(astroglide.Sun, astroglide.Coordinates{Lat: 0, Lon: 999}, date)
	require.Error(t, err, "expected an error for an out-of-range longitude")
}

func TestMoonRiseSet_HasTransit(t *testing.T) {
	phoenix := astroglide.Coordinates{Lat: 33.4484, Lon: -112.0740}
	locPHX, _ := time.LoadLocation("America/Phoenix")
	date := time.Date(2025, time.November, 30, 0, 0, 0, 0, locPHX)

	rs, err := astroglide.RiseSetFor(astroglide.Moon, phoenix, date)
	require.NoError(t, err)
	require.True(t, rs.HasTransit, "expected a lunar transit within the search window")
	require.False(t, rs.Transit.IsZero(), "Transit time should be non-zero when HasTransit is true")
}
