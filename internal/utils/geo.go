package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/takerapp/taker-go/internal/pkg/models"
)

// CellOf converts a location to its geohash cell at the given precision
func CellOf(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CellCenter returns the center coordinate of a geohash cell
func CellCenter(cell string) models.Location {
	lat, lng := geohash.DecodeCenter(cell)
	return models.Location{Latitude: lat, Longitude: lng}
}

// Ring returns the cell itself plus all cells within k steps of it,
// deduplicated, in breadth-first order. Ring(cell, 0) is just the cell.
func Ring(cell string, k int) []string {
	ring := []string{cell}
	seen := map[string]bool{cell: true}

	frontier := []string{cell}
	for step := 0; step < k; step++ {
		var next []string
		for _, c := range frontier {
			for _, n := range geohash.Neighbors(c) {
				if seen[n] {
					continue
				}
				seen[n] = true
				ring = append(ring, n)
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	return ring
}

// CalculateDistance calculates the distance between two points in
// kilometers using the Haversine formula
func CalculateDistance(a, b models.Location) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

// TravelEstimate returns the straight-line distance in kilometers and
// the estimated travel time in minutes at the given average speed.
func TravelEstimate(from, to models.Location, avgSpeedKmh float64) (distanceKm, timeMinutes float64) {
	distanceKm = CalculateDistance(from, to)
	if avgSpeedKmh <= 0 {
		return distanceKm, 0
	}
	timeMinutes = distanceKm / avgSpeedKmh * 60
	return distanceKm, timeMinutes
}
