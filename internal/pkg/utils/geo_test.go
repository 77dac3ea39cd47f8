package utils

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 40.0, -74.0, 40.0, -74.0, 0, 0.001},
		// one degree of latitude is ~111.2 km
		{"one degree latitude", 0, 0, 1, 0, 111195, 100},
		// ~1.1 km north of the office, the geofence scenario
		{"office geofence", 40.01, -74.0, 40.0, -74.0, 1112, 20},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := HaversineDistance(c.lat1, c.lon1, c.lat2, c.lon2)
			if math.Abs(got-c.want) > c.tolerance {
				t.Errorf("HaversineDistance(%v,%v,%v,%v) = %v, want %v ± %v",
					c.lat1, c.lon1, c.lat2, c.lon2, got, c.want, c.tolerance)
			}
		})
	}
}

func TestHaversineDistanceSymmetry(t *testing.T) {
	a := HaversineDistance(40.01, -74.0, 40.0, -74.0)
	b := HaversineDistance(40.0, -74.0, 40.01, -74.0)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance is not symmetric: %v != %v", a, b)
	}
}
