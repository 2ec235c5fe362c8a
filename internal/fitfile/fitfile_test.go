package fitfile

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/tormoder/fit"
)

var ts = time.Date(2024, time.January, 1, 6, 0, 0, 0, time.UTC)

func TestRecordTrackpointFullRecord(t *testing.T) {
	rec := fit.NewRecordMsg()
	rec.Timestamp = ts
	rec.HeartRate = 132
	rec.PositionLat = fit.NewLatitudeDegrees(38.9482)
	rec.PositionLong = fit.NewLongitudeDegrees(-104.7312)
	rec.Altitude = uint16((2148 + 500) * 5)
	rec.Distance = 250000 // centimeters

	tp := recordTrackpoint(rec)
	if !tp.Time.Equal(ts) {
		t.Fatalf("time %v, want %v", tp.Time, ts)
	}
	if !tp.HasHeartRate() || *tp.HeartRate != 132 {
		t.Fatalf("heart rate %v, want 132", tp.HeartRate)
	}
	if !tp.HasPosition() {
		t.Fatalf("expected position")
	}
	if math.Abs(*tp.Lat-38.9482) > 1e-4 || math.Abs(*tp.Lng+104.7312) > 1e-4 {
		t.Fatalf("position %v,%v off target", *tp.Lat, *tp.Lng)
	}
	if tp.AltitudeM == nil || math.Abs(*tp.AltitudeM-2148) > 1e-9 {
		t.Fatalf("altitude %v, want 2148", tp.AltitudeM)
	}
	if tp.DistanceM == nil || *tp.DistanceM != 2500 {
		t.Fatalf("distance %v, want 2500", tp.DistanceM)
	}
}

func TestRecordTrackpointInvalidSentinels(t *testing.T) {
	// NewRecordMsg initializes every field to its FIT invalid sentinel.
	rec := fit.NewRecordMsg()
	rec.Timestamp = ts

	tp := recordTrackpoint(rec)
	if tp.HasHeartRate() {
		t.Fatalf("0xFF heart rate must map to nil")
	}
	if tp.HasPosition() {
		t.Fatalf("invalid semicircles must map to nil position")
	}
	if tp.AltitudeM != nil || tp.DistanceM != nil {
		t.Fatalf("invalid scaled fields must map to nil")
	}
}

func TestRecordTrackpointZeroHeartRate(t *testing.T) {
	rec := fit.NewRecordMsg()
	rec.Timestamp = ts
	rec.HeartRate = 0

	if tp := recordTrackpoint(rec); tp.HasHeartRate() {
		t.Fatalf("0 bpm is not a live reading and must map to nil")
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	if _, err := Read(strings.NewReader("not a fit file")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("does-not-exist.fit"); err == nil {
		t.Fatalf("expected open error")
	}
}
