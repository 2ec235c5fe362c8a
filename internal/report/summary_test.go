package report

import (
	"strings"
	"testing"
	"time"

	"tcx-compare/internal/reconcile"
	"tcx-compare/internal/series"
	"tcx-compare/internal/trackpoint"
)

var t0 = time.Date(2024, time.January, 1, 6, 0, 0, 0, time.UTC)

func deviceSeries(rates []float64) series.Series {
	points := make([]trackpoint.Trackpoint, len(rates))
	for i, hr := range rates {
		points[i] = trackpoint.Trackpoint{
			Time:      t0.Add(time.Duration(i) * time.Second),
			HeartRate: trackpoint.Float(hr),
		}
	}
	return series.Canonicalize(points)
}

func TestSummaryContent(t *testing.T) {
	dev1 := Device{Name: "watch", Series: deviceSeries([]float64{100, 110, 120})}
	dev2 := Device{Name: "strap", Series: deviceSeries([]float64{105, 115, 125})}
	res := reconcile.Reconcile(dev1.Series, dev2.Series)

	got := Summary(dev1, dev2, res)
	for _, want := range []string{
		"SUMMARY STATISTICS",
		"watch:",
		"strap:",
		"Min HR: 100.0 bpm",
		"Avg HR: 110.0 bpm",
		"Max HR: 120.0 bpm",
		"Records: 3",
		"Difference (watch - strap):",
		"Avg Difference: -5.0 bpm",
		"Avg Absolute Difference: 5.0 bpm",
		"Matching timestamps: 3",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryNoOverlap(t *testing.T) {
	dev1 := Device{Name: "watch", Series: deviceSeries([]float64{100})}

	late := []trackpoint.Trackpoint{{
		Time:      t0.Add(time.Hour),
		HeartRate: trackpoint.Float(100),
	}}
	dev2 := Device{Name: "strap", Series: series.Canonicalize(late)}

	res := reconcile.Reconcile(dev1.Series, dev2.Series)
	got := Summary(dev1, dev2, res)
	if !strings.Contains(got, "No matching timestamps found between devices") {
		t.Fatalf("summary missing no-overlap note:\n%s", got)
	}
	if strings.Contains(got, "Difference (") {
		t.Fatalf("no-overlap summary must not carry a difference block:\n%s", got)
	}
}

func TestSummaryEmptyDevice(t *testing.T) {
	dev1 := Device{Name: "watch"}
	dev2 := Device{Name: "strap", Series: deviceSeries([]float64{100, 120})}
	res := reconcile.Reconcile(dev1.Series, dev2.Series)

	got := Summary(dev1, dev2, res)
	if !strings.Contains(got, "No heart rate records") {
		t.Fatalf("summary missing empty-device note:\n%s", got)
	}
	if !strings.Contains(got, "Records: 2") {
		t.Fatalf("summary must still cover the non-empty side:\n%s", got)
	}
}

func TestSummaryTrailDistance(t *testing.T) {
	// Two points one millidegree of latitude apart, roughly 111 m.
	points := []trackpoint.Trackpoint{
		{Time: t0, HeartRate: trackpoint.Float(100), Lat: trackpoint.Float(38.9482), Lng: trackpoint.Float(-104.7312)},
		{Time: t0.Add(time.Second), HeartRate: trackpoint.Float(101), Lat: trackpoint.Float(38.9492), Lng: trackpoint.Float(-104.7312)},
	}
	dev := Device{Name: "watch", Series: series.Canonicalize(points)}
	res := reconcile.Reconcile(dev.Series, nil)

	got := Summary(dev, Device{Name: "strap"}, res)
	if !strings.Contains(got, "Trail distance: 0.11 km") {
		t.Fatalf("summary missing trail distance:\n%s", got)
	}
}

func TestTrailKm(t *testing.T) {
	noGPS := deviceSeries([]float64{100, 110})
	if km := TrailKm(noGPS); km != 0 {
		t.Fatalf("expected zero distance without GPS, got %v", km)
	}
	if km := TrailKm(nil); km != 0 {
		t.Fatalf("expected zero distance for empty series, got %v", km)
	}
}
