package geo

import "testing"

func TestHaversineKm(t *testing.T) {
	// Jakarta (-6.2, 106.816) to Bandung (-6.9175, 107.6191) ~ 115-120 km
	d := HaversineKm(-6.2, 106.816, -6.9175, 107.6191)
	if d < 100 || d > 140 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestHaversineKmZero(t *testing.T) {
	if d := HaversineKm(38.9482, -104.7312, 38.9482, -104.7312); d != 0 {
		t.Fatalf("expected zero distance, got %v", d)
	}
}

func TestHaversineKmSmallStep(t *testing.T) {
	// One millidegree of latitude is roughly 111 m.
	d := HaversineKm(38.9482, -104.7312, 38.9492, -104.7312) * 1000
	if d < 100 || d > 125 {
		t.Fatalf("unexpected small-step distance: %v m", d)
	}
}
