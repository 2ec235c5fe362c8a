package reconcile

import (
	"log/slog"
	"math"
	"time"

	"tcx-compare/internal/series"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Difference is one per-timestamp disagreement between the two devices.
// Diff is signed: positive means device 1 read higher.
type Difference struct {
	Time time.Time
	HR1  float64
	HR2  float64
	Diff float64
}

// SeriesStats are per-device heart-rate aggregates over a full canonical
// series. Count 0 means the device contributed no data; the other fields are
// zero and meaningless in that case.
type SeriesStats struct {
	Min   float64
	Mean  float64
	Max   float64
	Count int
}

// DiffStats aggregate the signed difference series. Mean keeps its sign, so
// it tells which device reads higher on average; MeanAbsolute measures
// overall disagreement regardless of direction.
type DiffStats struct {
	Min          float64
	Mean         float64
	Max          float64
	MeanAbsolute float64
	Count        int
}

// Result is the full reconciliation outcome. NoOverlap is set when both
// inputs were non-empty yet shared no timestamp, which usually means the
// device clocks were skewed; it is distinct from one side simply being
// empty, and neither case is an error.
type Result struct {
	Device1     SeriesStats
	Device2     SeriesStats
	Diff        DiffStats
	Differences []Difference
	NoOverlap   bool
}

// Reconcile aligns two canonical series on exact timestamp equality and
// computes per-timestamp differences plus summary statistics. The join is an
// inner join with no tolerance window: a one-second clock offset between
// devices produces zero matches, and callers needing fuzzy alignment must
// shift their series before calling.
func Reconcile(a, b series.Series) Result {
	result := Result{
		Device1: seriesStats(a),
		Device2: seriesStats(b),
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Time.Before(b[j].Time):
			i++
		case b[j].Time.Before(a[i].Time):
			j++
		default:
			result.Differences = append(result.Differences, Difference{
				Time: a[i].Time,
				HR1:  a[i].HeartRate,
				HR2:  b[j].HeartRate,
				Diff: a[i].HeartRate - b[j].HeartRate,
			})
			i++
			j++
		}
	}

	if len(result.Differences) == 0 {
		if !a.Empty() && !b.Empty() {
			result.NoOverlap = true
			slog.Warn("no matching timestamps between devices",
				"device1_samples", len(a),
				"device2_samples", len(b),
			)
		}
		return result
	}

	diffs := make([]float64, len(result.Differences))
	absSum := 0.0
	for k, d := range result.Differences {
		diffs[k] = d.Diff
		absSum += math.Abs(d.Diff)
	}
	result.Diff = DiffStats{
		Min:          floats.Min(diffs),
		Mean:         stat.Mean(diffs, nil),
		Max:          floats.Max(diffs),
		MeanAbsolute: absSum / float64(len(diffs)),
		Count:        len(diffs),
	}
	return result
}

func seriesStats(s series.Series) SeriesStats {
	if s.Empty() {
		return SeriesStats{}
	}
	values := s.HeartRates()
	return SeriesStats{
		Min:   floats.Min(values),
		Mean:  stat.Mean(values, nil),
		Max:   floats.Max(values),
		Count: len(values),
	}
}
