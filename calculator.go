package subsolar

import (
	"errors"
	"math"
	"time"

	"github.com/echoflaresat/subsolar/earth"
	"github.com/echoflaresat/subsolar/ephemeris"
	"github.com/tidwall/geodesic"
)

// ErrNoStation is returned by Bearing when no observer station has been
// configured.
var ErrNoStation = errors.New("subsolar: no station configured")

const secondsPerDay = 86400

// Engine supplies geodetic sub-points of the Sun. ephemeris.Sun is the
// production implementation.
type Engine interface {
	SubPoint(t time.Time) ephemeris.SubPoint
}

// Compute returns the sub-solar fix for the given instant on the given
// ellipsoid. The instant is normalized to UTC; a zero-value ellipsoid is
// replaced with the default (WGS-84).
//
// The fix's Time comes from the engine's canonical epoch, which can
// differ from t in sub-second precision.
func Compute(t time.Time, ell earth.Ellipsoid) Fix {
	return compute(ephemeris.Sun{}, t, ell)
}

func compute(eng Engine, t time.Time, ell earth.Ellipsoid) Fix {
	if ell.IsZero() {
		ell = earth.Default()
	}
	sp := eng.SubPoint(t.UTC())

	// Ground speed models the sub-solar point tracing a circle of radius
	// N(φ)·cosφ once per day. N(φ) is the prime-vertical radius of
	// curvature, not the exact distance to the rotation axis, and the
	// period is a civil day, not a sidereal one. An approximation.
	speed := 2 * math.Pi * ell.PrimeVertical(sp.Lat) * sp.Lat.Cos() / secondsPerDay

	return Fix{
		Time:      float64(sp.Epoch.UnixNano()) / 1e9,
		Latitude:  sp.Lat.Deg(),
		Longitude: sp.Lon.Deg(),
		Altitude:  sp.HeightKm * 1000,
		Speed:     speed,
		Heading:   Heading,
		Quality:   Quality3D,
		Source:    Source,
	}
}

// Calculator is a stateful convenience wrapper around Compute. It holds a
// current instant, a reference ellipsoid, and an optional observer
// station. It is not safe for concurrent use.
type Calculator struct {
	engine  Engine
	ell     earth.Ellipsoid
	instant time.Time
	station *Point
}

// New returns a Calculator with the default ephemeris engine, a WGS-84
// ellipsoid, and the current instant set to now.
func New() *Calculator {
	return &Calculator{
		engine:  ephemeris.Sun{},
		ell:     earth.Default(),
		instant: time.Now(),
	}
}

// SetInstant sets the calculator's current instant and returns the
// calculator for chaining.
func (c *Calculator) SetInstant(t time.Time) *Calculator {
	c.instant = t
	return c
}

// Instant returns the calculator's current instant.
func (c *Calculator) Instant() time.Time {
	return c.instant
}

// SetStation sets the observer station and returns the calculator for
// chaining.
func (c *Calculator) SetStation(p Point) *Calculator {
	c.station = &p
	return c
}

// Station returns the observer station and whether one is configured.
func (c *Calculator) Station() (Point, bool) {
	if c.station == nil {
		return Point{}, false
	}
	return *c.station, true
}

// SetEllipsoid sets the reference ellipsoid and returns the calculator
// for chaining. The zero value is replaced with the default (WGS-84).
func (c *Calculator) SetEllipsoid(ell earth.Ellipsoid) *Calculator {
	if ell.IsZero() {
		ell = earth.Default()
	}
	c.ell = ell
	return c
}

// Ellipsoid returns the calculator's reference ellipsoid.
func (c *Calculator) Ellipsoid() earth.Ellipsoid {
	return c.ell
}

// Point returns the sub-solar fix for the calculator's current instant.
// It does not mutate calculator state.
func (c *Calculator) Point() Fix {
	return compute(c.engine, c.instant, c.ell)
}

// PointAt sets the current instant to t and returns the sub-solar fix
// for it. It is shorthand for SetInstant(t).Point().
func (c *Calculator) PointAt(t time.Time) Fix {
	return c.SetInstant(t).Point()
}

// Bearing returns the initial bearing (forward azimuth) in degrees
// [0, 360) along the geodesic from the station to the sub-solar point at
// the calculator's current instant. It returns ErrNoStation if no
// station is configured.
func (c *Calculator) Bearing() (float64, error) {
	if c.station == nil {
		return 0, ErrNoStation
	}
	fix := c.Point()

	g := geodesic.NewEllipsoid(c.ell.SemiMajorM, c.ell.Flattening())
	var azi float64
	g.Inverse(c.station.Latitude, c.station.Longitude, fix.Latitude, fix.Longitude, nil, &azi, nil)
	if azi < 0 {
		azi += 360
	}
	return azi, nil
}
