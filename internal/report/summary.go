package report

import (
	"fmt"
	"strings"

	"tcx-compare/internal/reconcile"
	"tcx-compare/internal/series"
	"tcx-compare/internal/shared/geo"
)

// Device names one side of the comparison together with its canonical series.
type Device struct {
	Name   string
	Series series.Series
}

// Summary renders the reconciliation result as a fixed-format text block:
// per-device heart-rate aggregates, trail distance when the device recorded
// GPS, and the difference block when any timestamps matched.
func Summary(dev1, dev2 Device, res reconcile.Result) string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)

	fmt.Fprintf(&b, "%s\nSUMMARY STATISTICS\n%s\n", rule, rule)

	writeDevice(&b, dev1, res.Device1)
	writeDevice(&b, dev2, res.Device2)

	if res.NoOverlap {
		fmt.Fprintf(&b, "\nNo matching timestamps found between devices\n")
		return b.String()
	}
	if res.Diff.Count == 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "\nDifference (%s - %s):\n", dev1.Name, dev2.Name)
	fmt.Fprintf(&b, "  Min Difference: %.1f bpm\n", res.Diff.Min)
	fmt.Fprintf(&b, "  Avg Difference: %.1f bpm\n", res.Diff.Mean)
	fmt.Fprintf(&b, "  Max Difference: %.1f bpm\n", res.Diff.Max)
	fmt.Fprintf(&b, "  Avg Absolute Difference: %.1f bpm\n", res.Diff.MeanAbsolute)
	fmt.Fprintf(&b, "  Matching timestamps: %d\n", res.Diff.Count)

	return b.String()
}

func writeDevice(b *strings.Builder, dev Device, stats reconcile.SeriesStats) {
	fmt.Fprintf(b, "\n%s:\n", dev.Name)
	if stats.Count == 0 {
		fmt.Fprintf(b, "  No heart rate records\n")
		return
	}
	fmt.Fprintf(b, "  Min HR: %.1f bpm\n", stats.Min)
	fmt.Fprintf(b, "  Avg HR: %.1f bpm\n", stats.Mean)
	fmt.Fprintf(b, "  Max HR: %.1f bpm\n", stats.Max)
	fmt.Fprintf(b, "  Records: %d\n", stats.Count)
	if km := TrailKm(dev.Series); km > 0 {
		fmt.Fprintf(b, "  Trail distance: %.2f km\n", km)
	}
}

// TrailKm accumulates great-circle distance over the consecutive GPS samples
// of a canonical series. Samples without a position are skipped, not
// interpolated.
func TrailKm(s series.Series) float64 {
	var total float64
	havePrev := false
	var prevLat, prevLng float64
	for _, sample := range s {
		if sample.Lat == nil || sample.Lng == nil {
			continue
		}
		if havePrev {
			total += geo.HaversineKm(prevLat, prevLng, *sample.Lat, *sample.Lng)
		}
		prevLat, prevLng = *sample.Lat, *sample.Lng
		havePrev = true
	}
	return total
}
