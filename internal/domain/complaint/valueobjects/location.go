package valueobjects

import "fmt"

// GeoPoint is an optional GPS fix attached to a complaint.
type GeoPoint struct {
	lat float64
	lng float64
}

func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < -90 || lat > 90 {
		return GeoPoint{}, fmt.Errorf("latitude %v out of range", lat)
	}
	if lng < -180 || lng > 180 {
		return GeoPoint{}, fmt.Errorf("longitude %v out of range", lng)
	}
	return GeoPoint{lat: lat, lng: lng}, nil
}

func (g GeoPoint) Lat() float64 {
	return g.lat
}

func (g GeoPoint) Lng() float64 {
	return g.lng
}

func (g GeoPoint) String() string {
	return fmt.Sprintf("%.6f,%.6f", g.lat, g.lng)
}
