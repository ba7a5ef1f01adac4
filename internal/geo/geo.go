package geo

import (
	"fmt"
	"math"

	"github.com/NicolasCard/RAPZ/internal/models"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two locations in
// kilometres using the Haversine formula.
func DistanceKm(loc1, loc2 models.Location) float64 {
	lat1 := degreesToRadians(loc1.Lat)
	lng1 := degreesToRadians(loc1.Lng)
	lat2 := degreesToRadians(loc2.Lat)
	lng2 := degreesToRadians(loc2.Lng)

	dlat := lat2 - lat1
	dlng := lng2 - lng1
	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlng/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RouteURL builds the external-maps deep link for turn-by-turn routing from
// pickup to dropoff. The link is opened by the client; no response is read.
func RouteURL(pickup, dropoff models.Location) string {
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&origin=%v,%v&destination=%v,%v&travelmode=motorcycle",
		pickup.Lat, pickup.Lng, dropoff.Lat, dropoff.Lng,
	)
}
