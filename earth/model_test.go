package earth

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"WGS84", "wgs84", "GRS80", "IAU76", "WGS72"} {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q) returned error: %v", name, err)
		}
	}

	if _, err := ByName("CLARKE-1866"); err == nil {
		t.Error("ByName with unknown name succeeded, want error")
	}
}

func TestDefaultIsWGS84(t *testing.T) {
	if got := Default(); got != WGS84 {
		t.Errorf("Default() = %+v, want WGS84", got)
	}
}

func TestPrimeVertical(t *testing.T) {
	cases := []struct {
		name   string
		latDeg float64
		want   float64 // meters
	}{
		// At the equator N(φ) equals the semi-major axis; at the poles it
		// equals a/sqrt(1-e²).
		{"equator", 0, 6378137.0},
		{"pole", 90, 6399593.626},
		{"45N", 45, 6388838.290},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WGS84.PrimeVertical(unit.AngleFromDeg(c.latDeg))
			if math.Abs(got-c.want) > 0.01 {
				t.Errorf("PrimeVertical(%v°) = %.3f m, want %.3f m", c.latDeg, got, c.want)
			}
		})
	}
}

func TestPrimeVerticalSymmetry(t *testing.T) {
	n := WGS84.PrimeVertical(unit.AngleFromDeg(23.44))
	s := WGS84.PrimeVertical(unit.AngleFromDeg(-23.44))
	if n != s {
		t.Errorf("N(φ) not symmetric: %v vs %v", n, s)
	}
}

func TestIsZero(t *testing.T) {
	if WGS84.IsZero() {
		t.Error("WGS84.IsZero() = true, want false")
	}
	if !(Ellipsoid{}).IsZero() {
		t.Error("zero Ellipsoid.IsZero() = false, want true")
	}
}
