package series

import (
	"log/slog"
	"sort"
	"time"

	"tcx-compare/internal/trackpoint"
)

// Sample is one point of a canonical series. HeartRate is always present;
// the loader discards trackpoints without one. Auxiliary fields stay nil
// when no member of the sample's timestamp group carried them.
type Sample struct {
	Time      time.Time
	HeartRate float64
	Lat       *float64
	Lng       *float64
	AltitudeM *float64
	DistanceM *float64
}

// Series is a canonical heart-rate time series: strictly increasing, unique
// timestamps. An empty series is a normal value, not an error; it is what a
// source with no usable heart-rate records canonicalizes to.
type Series []Sample

func (s Series) Empty() bool {
	return len(s) == 0
}

// Canonicalize turns a raw trackpoint sequence into a canonical series.
// Points without a heart rate are dropped, the rest are stably sorted by
// timestamp, and points sharing an exact timestamp are collapsed into one
// sample: heart rate is the group mean, each auxiliary field takes the first
// non-nil value in original input order.
func Canonicalize(points []trackpoint.Trackpoint) Series {
	usable := make([]trackpoint.Trackpoint, 0, len(points))
	for _, p := range points {
		if p.HasHeartRate() {
			usable = append(usable, p)
		}
	}
	if dropped := len(points) - len(usable); dropped > 0 {
		slog.Warn("discarded trackpoints without heart rate", "count", dropped)
	}
	if len(usable) == 0 {
		return nil
	}

	// Stable sort keeps equal timestamps in input order, so the first
	// non-nil auxiliary value seen inside a group is the first in
	// pre-sort order as well.
	sort.SliceStable(usable, func(i, j int) bool {
		return usable[i].Time.Before(usable[j].Time)
	})

	out := make(Series, 0, len(usable))
	for start := 0; start < len(usable); {
		end := start
		for end < len(usable) && usable[end].Time.Equal(usable[start].Time) {
			end++
		}
		out = append(out, collapse(usable[start:end]))
		start = end
	}
	return out
}

func collapse(group []trackpoint.Trackpoint) Sample {
	sample := Sample{Time: group[0].Time}

	var sum float64
	for _, p := range group {
		sum += *p.HeartRate
		if sample.Lat == nil {
			sample.Lat = p.Lat
		}
		if sample.Lng == nil {
			sample.Lng = p.Lng
		}
		if sample.AltitudeM == nil {
			sample.AltitudeM = p.AltitudeM
		}
		if sample.DistanceM == nil {
			sample.DistanceM = p.DistanceM
		}
	}
	sample.HeartRate = sum / float64(len(group))
	return sample
}

// Trackpoints converts the series back to raw trackpoints, so a canonical
// series can be re-serialized or re-canonicalized. Canonicalize is idempotent
// over this round-trip.
func (s Series) Trackpoints() []trackpoint.Trackpoint {
	points := make([]trackpoint.Trackpoint, 0, len(s))
	for _, sample := range s {
		points = append(points, trackpoint.Trackpoint{
			Time:      sample.Time,
			HeartRate: trackpoint.Float(sample.HeartRate),
			Lat:       sample.Lat,
			Lng:       sample.Lng,
			AltitudeM: sample.AltitudeM,
			DistanceM: sample.DistanceM,
		})
	}
	return points
}

// HeartRates returns the heart-rate column, for statistics.
func (s Series) HeartRates() []float64 {
	values := make([]float64, len(s))
	for i, sample := range s {
		values[i] = sample.HeartRate
	}
	return values
}
