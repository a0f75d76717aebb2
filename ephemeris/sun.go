// Package ephemeris computes geodetic sub-points of the Sun.
//
// The solar position comes from the meeus implementation of the
// Astronomical Algorithms: apparent RA/Dec of date, rotated into the
// Earth-fixed frame by apparent sidereal time.
package ephemeris

import (
	"math"
	"time"

	"github.com/echoflaresat/subsolar/vectors"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

const (
	auKm               = 149597870.7 // astronomical unit in km
	equatorialRadiusKm = 6378.137
)

// SubPoint is the geodetic point on the Earth's surface directly beneath
// a body, plus the body's height above that point.
type SubPoint struct {
	// Epoch is the engine's canonical instant for the computation. It is
	// recovered from the Julian date actually used, so it can differ from
	// the queried instant in sub-second precision.
	Epoch time.Time

	Lat unit.Angle // geodetic latitude
	Lon unit.Angle // geodetic longitude, positive east

	// HeightKm is the body's height above the reference surface in km.
	HeightKm float64
}

// Sun computes sub-solar points. The zero value is ready to use.
type Sun struct{}

// SubPoint returns the sub-solar point at time t. The instant is
// normalized to UTC before use.
func (Sun) SubPoint(t time.Time) SubPoint {
	t = t.UTC()
	jd := julian.TimeToJD(t)

	// Apparent RA/Dec of the Sun, as a unit vector in the
	// Earth-centered inertial frame.
	ra, dec := solar.ApparentEquatorial(jd)
	eci := vectors.Vec3{
		X: dec.Cos() * ra.Cos(),
		Y: dec.Cos() * ra.Sin(),
		Z: dec.Sin(),
	}

	// Rotate ECI → ECEF by apparent sidereal time.
	gast := sidereal.Apparent(jd)
	ecef := eci.RotateZ(-gast.Angle().Rad())

	// The sub-point latitude is taken as the geocentric declination;
	// at solar distance the geodetic correction is far below the
	// accuracy of the ephemeris itself.
	lat := unit.Angle(math.Asin(ecef.Z))
	lon := unit.Angle(math.Atan2(ecef.Y, ecef.X))

	dist := solar.Radius(base.J2000Century(jd)) * auKm

	return SubPoint{
		Epoch:    julian.JDToTime(jd).UTC(),
		Lat:      lat,
		Lon:      lon,
		HeightKm: dist - equatorialRadiusKm,
	}
}

// Direction returns the unit vector from the Earth's center toward the
// Sun in the Earth-fixed (ECEF) frame at time t.
func (s Sun) Direction(t time.Time) vectors.Vec3 {
	sp := s.SubPoint(t)
	return vectors.Vec3{
		X: sp.Lat.Cos() * sp.Lon.Cos(),
		Y: sp.Lat.Cos() * sp.Lon.Sin(),
		Z: sp.Lat.Sin(),
	}
}
