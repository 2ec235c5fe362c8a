package tcx

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"tcx-compare/internal/trackpoint"
)

const (
	schemaNamespace = "http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2"
	xsiNamespace    = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation  = schemaNamespace + " http://www.garmin.com/xmlschemas/TrainingCenterDatabasev2.xsd"

	timeLayout = "2006-01-02T15:04:05Z"
)

// Typed document model of the TrainingCenterDatabase v2 subset this tool
// reads and writes. Foreign elements in files produced elsewhere are ignored
// by the decoder; optional elements are pointers so their absence survives a
// round trip.

type document struct {
	XMLName        xml.Name   `xml:"TrainingCenterDatabase"`
	Namespace      string     `xml:"xmlns,attr"`
	XSINamespace   string     `xml:"xmlns:xsi,attr"`
	SchemaLocation string     `xml:"xsi:schemaLocation,attr"`
	Activities     activities `xml:"Activities"`
}

type activities struct {
	Activity []activity `xml:"Activity"`
}

type activity struct {
	Sport   string   `xml:"Sport,attr"`
	ID      string   `xml:"Id"`
	Laps    []lap    `xml:"Lap"`
	Creator *creator `xml:"Creator"`
}

type lap struct {
	StartTime        string  `xml:"StartTime,attr"`
	TotalTimeSeconds float64 `xml:"TotalTimeSeconds"`
	DistanceMeters   float64 `xml:"DistanceMeters"`
	Calories         int     `xml:"Calories"`
	Track            track   `xml:"Track"`
}

type track struct {
	Trackpoints []point `xml:"Trackpoint"`
}

type point struct {
	Time           string    `xml:"Time"`
	Position       *position `xml:"Position"`
	AltitudeMeters *float64  `xml:"AltitudeMeters"`
	DistanceMeters *float64  `xml:"DistanceMeters"`
	HeartRateBpm   *hrValue  `xml:"HeartRateBpm"`
}

type position struct {
	LatitudeDegrees  float64 `xml:"LatitudeDegrees"`
	LongitudeDegrees float64 `xml:"LongitudeDegrees"`
}

type hrValue struct {
	Value int `xml:"Value"`
}

type creator struct {
	XSIType string `xml:"xsi:type,attr"`
	Name    string `xml:"Name"`
}

// Write serializes one device recording as a single-activity, single-lap TCX
// document. Heart rates are rounded to whole bpm (the schema carries them as
// unsignedByte) and timestamps are written as UTC RFC3339 seconds, so output
// is deterministic for deterministic input.
func Write(w io.Writer, deviceName string, start time.Time, points []trackpoint.Trackpoint) error {
	doc := document{
		Namespace:      schemaNamespace,
		XSINamespace:   xsiNamespace,
		SchemaLocation: schemaLocation,
		Activities: activities{
			Activity: []activity{{
				Sport: "Running",
				ID:    start.UTC().Format(timeLayout),
				Laps: []lap{{
					StartTime:        start.UTC().Format(timeLayout),
					TotalTimeSeconds: float64(len(points)),
					DistanceMeters:   lapDistance(points),
					Calories:         lapCalories(points),
					Track:            track{Trackpoints: encodePoints(points)},
				}},
				Creator: &creator{XSIType: "Device_t", Name: deviceName},
			}},
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode tcx: %w", err)
	}
	return enc.Close()
}

func WriteFile(path, deviceName string, start time.Time, points []trackpoint.Trackpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, deviceName, start, points); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodePoints(points []trackpoint.Trackpoint) []point {
	out := make([]point, 0, len(points))
	for _, p := range points {
		enc := point{
			Time:           p.Time.UTC().Format(timeLayout),
			AltitudeMeters: p.AltitudeM,
			DistanceMeters: p.DistanceM,
		}
		if p.HasPosition() {
			enc.Position = &position{LatitudeDegrees: *p.Lat, LongitudeDegrees: *p.Lng}
		}
		if p.HasHeartRate() {
			enc.HeartRateBpm = &hrValue{Value: int(math.Round(*p.HeartRate))}
		}
		out = append(out, enc)
	}
	return out
}

func lapDistance(points []trackpoint.Trackpoint) float64 {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].DistanceM != nil {
			return *points[i].DistanceM
		}
	}
	return 0
}

func lapCalories(points []trackpoint.Trackpoint) int {
	var sum float64
	for _, p := range points {
		if p.HasHeartRate() {
			sum += *p.HeartRate
		}
	}
	return int(sum / 10)
}

// Read decodes a TCX document and flattens every activity's laps into one
// trackpoint sequence in document order. Points without a HeartRateBpm
// element come back with a nil heart rate; the series loader decides what to
// do with them.
func Read(r io.Reader) ([]trackpoint.Trackpoint, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode tcx: %w", err)
	}

	var out []trackpoint.Trackpoint
	for _, act := range doc.Activities.Activity {
		for _, l := range act.Laps {
			for _, p := range l.Track.Trackpoints {
				tp, err := decodePoint(p)
				if err != nil {
					return nil, err
				}
				out = append(out, tp)
			}
		}
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

func decodePoint(p point) (trackpoint.Trackpoint, error) {
	ts, err := time.Parse(time.RFC3339, p.Time)
	if err != nil {
		return trackpoint.Trackpoint{}, fmt.Errorf("parse trackpoint time %q: %w", p.Time, err)
	}

	tp := trackpoint.Trackpoint{
		Time:      ts,
		AltitudeM: p.AltitudeMeters,
		DistanceM: p.DistanceMeters,
	}
	if p.Position != nil {
		tp.Lat = trackpoint.Float(p.Position.LatitudeDegrees)
		tp.Lng = trackpoint.Float(p.Position.LongitudeDegrees)
	}
	if p.HeartRateBpm != nil {
		tp.HeartRate = trackpoint.Float(float64(p.HeartRateBpm.Value))
	}
	return tp, nil
}
