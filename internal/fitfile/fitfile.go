package fitfile

import (
	"fmt"
	"io"
	"math"
	"os"

	"tcx-compare/internal/trackpoint"

	"github.com/tormoder/fit"
)

// Read decodes a FIT activity file and maps its record messages to
// trackpoints. FIT encodes missing values as in-band sentinels (0xFF heart
// rate, NaN scaled fields); those come back as nil so downstream code sees
// the same shape it gets from TCX.
func Read(r io.Reader) ([]trackpoint.Trackpoint, error) {
	decoded, err := fit.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode fit: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("fit file is not an activity: %w", err)
	}

	out := make([]trackpoint.Trackpoint, 0, len(activity.Records))
	for _, rec := range activity.Records {
		out = append(out, recordTrackpoint(rec))
	}
	return out, nil
}

func ReadFile(path string) ([]trackpoint.Trackpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

func recordTrackpoint(rec *fit.RecordMsg) trackpoint.Trackpoint {
	tp := trackpoint.Trackpoint{Time: rec.Timestamp}

	// 0xFF is the FIT invalid sentinel; 0 bpm is not a live reading either.
	if rec.HeartRate != 0xFF && rec.HeartRate != 0 {
		tp.HeartRate = trackpoint.Float(float64(rec.HeartRate))
	}

	lat := rec.PositionLat.Degrees()
	lng := rec.PositionLong.Degrees()
	if !math.IsNaN(lat) && !math.IsNaN(lng) {
		tp.Lat = trackpoint.Float(lat)
		tp.Lng = trackpoint.Float(lng)
	}
	if alt := rec.GetAltitudeScaled(); !math.IsNaN(alt) {
		tp.AltitudeM = trackpoint.Float(alt)
	}
	if dist := rec.GetDistanceScaled(); !math.IsNaN(dist) {
		tp.DistanceM = trackpoint.Float(dist)
	}
	return tp
}
