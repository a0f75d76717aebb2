// Package subsolar computes the sub-solar point: the geodetic latitude,
// longitude, and altitude of the point on the Earth's surface directly
// beneath the Sun at a given instant, along with the ground-track speed
// of that point and its bearing from an observer station.
package subsolar

// Quality is a GPS-style fix quality.
type Quality int

const (
	QualityNone Quality = iota
	Quality2D
	Quality3D
)

func (q Quality) String() string {
	switch q {
	case Quality2D:
		return "2D"
	case Quality3D:
		return "3D"
	default:
		return "none"
	}
}

// Source labels every fix produced by this package.
const Source = "sun"

// Heading is the reported ground-track heading in degrees clockwise from
// North. The sub-solar point travels westward, so the heading is a fixed
// 270; the small seasonal north-south drift is not modeled.
const Heading = 270.0

// Fix is a GPS-style geodetic fix for the sub-solar point.
type Fix struct {
	Time      float64 `json:"time"`    // seconds since Unix epoch, UTC
	Latitude  float64 `json:"lat"`     // decimal degrees
	Longitude float64 `json:"lon"`     // decimal degrees, positive east
	Altitude  float64 `json:"alt"`     // meters above the reference ellipsoid
	Speed     float64 `json:"speed"`   // ground-track speed, m/s
	Heading   float64 `json:"heading"` // degrees clockwise from North
	Quality   Quality `json:"mode"`
	Source    string  `json:"source"`
}

// Point is a geodetic location on the reference ellipsoid.
type Point struct {
	Latitude  float64 `json:"lat"` // decimal degrees
	Longitude float64 `json:"lon"` // decimal degrees, positive east
	Altitude  float64 `json:"alt"` // meters above the reference ellipsoid
}
