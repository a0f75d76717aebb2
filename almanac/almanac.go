// Package almanac provides sunrise and sunset times for an observer.
package almanac

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// RiseSet returns the sunrise and sunset times, in UTC, for the calendar
// day containing date (in UTC) at the given geodetic coordinates.
//
// Inside the polar circles the Sun may not rise or set at all on a given
// day; both returned times are then the zero value.
func RiseSet(latitude, longitude float64, date time.Time) (rise, set time.Time) {
	y, m, d := date.UTC().Date()
	return sunrise.SunriseSunset(latitude, longitude, y, m, d)
}

// Daylight reports whether the Sun is above the horizon at time t for
// the given geodetic coordinates.
func Daylight(latitude, longitude float64, t time.Time) bool {
	rise, set := RiseSet(latitude, longitude, t)
	if rise.IsZero() && set.IsZero() {
		// Polar day or night. Midnight sun leaves the Sun up all day in
		// the local summer hemisphere.
		summer := t.UTC().Month() >= time.April && t.UTC().Month() <= time.September
		if latitude >= 0 {
			return summer
		}
		return !summer
	}
	return !t.Before(rise) && t.Before(set)
}
