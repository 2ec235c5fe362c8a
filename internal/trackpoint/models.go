package trackpoint

import "time"

// Trackpoint is one raw timestamped sample as read from or written to an
// activity file. Optional fields are nil when the source did not record them.
// Duplicate timestamps are allowed here; deduplication happens in the series
// loader, not at this level.
type Trackpoint struct {
	Time      time.Time `json:"time"`
	HeartRate *float64  `json:"heart_rate,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	AltitudeM *float64  `json:"altitude_m,omitempty"`
	DistanceM *float64  `json:"distance_m,omitempty"`
}

// HasHeartRate reports whether the sample carries a usable heart-rate value.
func (t Trackpoint) HasHeartRate() bool {
	return t.HeartRate != nil
}

// HasPosition reports whether the sample carries GPS coordinates.
func (t Trackpoint) HasPosition() bool {
	return t.Lat != nil && t.Lng != nil
}

// Float returns a pointer to v, for filling optional fields.
func Float(v float64) *float64 {
	return &v
}
