package osm2net

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	pi180    = math.Pi / 180.0
	pi180Rev = 180.0 / math.Pi
)

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// radiansTodegrees r = deg  * 180 / pi
func radiansTodegrees(d float64) float64 {
	return d * pi180Rev
}

// findCentroid returns center point for given set of points (not middle point)
func findCentroid(points []orb.Point) orb.Point {
	totalPoints := len(points)
	if totalPoints == 0 {
		return orb.Point{}
	}
	if totalPoints == 1 {
		return points[0]
	}
	x, y, z := 0.0, 0.0, 0.0
	for i := 0; i < totalPoints; i++ {
		longitude := degreesToRadians(points[i].Lon())
		latitude := degreesToRadians(points[i].Lat())
		c1 := math.Cos(latitude)
		x += c1 * math.Cos(longitude)
		y += c1 * math.Sin(longitude)
		z += math.Sin(latitude)
	}

	x /= float64(totalPoints)
	y /= float64(totalPoints)
	z /= float64(totalPoints)

	centralLongitude := math.Atan2(y, x)
	centralSquareRoot := math.Sqrt(x*x + y*y)
	centralLatitude := math.Atan2(z, centralSquareRoot)

	return orb.Point{
		radiansTodegrees(centralLongitude),
		radiansTodegrees(centralLatitude),
	}
}
