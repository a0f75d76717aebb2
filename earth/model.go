// Package earth provides reference ellipsoid models of the Earth's shape.
package earth

import (
	"fmt"
	"math"
	"strings"

	"github.com/soniakeys/unit"
)

// Ellipsoid is a reference ellipsoid, defined by its equatorial radius
// and inverse flattening.
type Ellipsoid struct {
	Name          string
	SemiMajorM    float64 // equatorial radius in meters
	InvFlattening float64
}

// Named reference ellipsoids.
var (
	WGS84 = Ellipsoid{Name: "WGS84", SemiMajorM: 6378137.0, InvFlattening: 298.257223563}
	WGS72 = Ellipsoid{Name: "WGS72", SemiMajorM: 6378135.0, InvFlattening: 298.26}
	GRS80 = Ellipsoid{Name: "GRS80", SemiMajorM: 6378137.0, InvFlattening: 298.257222101}
	IAU76 = Ellipsoid{Name: "IAU76", SemiMajorM: 6378140.0, InvFlattening: 298.257}
)

var models = map[string]Ellipsoid{
	"WGS84": WGS84,
	"WGS72": WGS72,
	"GRS80": GRS80,
	"IAU76": IAU76,
}

// Default returns the default reference ellipsoid, WGS-84.
func Default() Ellipsoid {
	return WGS84
}

// ByName looks up a reference ellipsoid by name, case-insensitively.
// Unknown names are an error, not a silent fallback.
func ByName(name string) (Ellipsoid, error) {
	for n, e := range models {
		if strings.EqualFold(n, name) {
			return e, nil
		}
	}
	return Ellipsoid{}, fmt.Errorf("earth: unknown ellipsoid %q", name)
}

// IsZero reports whether e is the zero value (no model configured).
func (e Ellipsoid) IsZero() bool {
	return e == Ellipsoid{}
}

// Flattening returns the flattening f = (a-b)/a.
func (e Ellipsoid) Flattening() float64 {
	return 1 / e.InvFlattening
}

// eccentricitySquared returns the first eccentricity squared, e² = f(2-f).
func (e Ellipsoid) eccentricitySquared() float64 {
	f := e.Flattening()
	return f * (2 - f)
}

// PrimeVertical returns N(φ), the prime-vertical radius of curvature at
// geodetic latitude lat, in meters: a / sqrt(1 - e²·sin²φ). This is the
// east-west radius of curvature of the ellipsoid.
func (e Ellipsoid) PrimeVertical(lat unit.Angle) float64 {
	s := lat.Sin()
	return e.SemiMajorM / math.Sqrt(1-e.eccentricitySquared()*s*s)
}
