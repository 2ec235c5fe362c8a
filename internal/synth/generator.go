package synth

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"tcx-compare/internal/trackpoint"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// GeneratorConfig parameterizes one fixture-generation run. The seed and the
// start time fully determine the output: two runs with identical configs
// produce identical trackpoint sequences.
type GeneratorConfig struct {
	Duration  time.Duration
	MinHR     float64
	MaxHR     float64
	StartTime time.Time
	Seed      uint64
}

func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Duration: 30 * time.Minute,
		MinHR:    DefaultMinHR,
		MaxHR:    DefaultMaxHR,
	}
}

// DeviceFixture is one simulated device's output: the profile it was drawn
// with and the trackpoints it recorded.
type DeviceFixture struct {
	Name        string
	Profile     DeviceProfile
	Trackpoints []trackpoint.Trackpoint
}

// Fixture is a pair of device recordings of the same session.
type Fixture struct {
	Device1 DeviceFixture
	Device2 DeviceFixture
}

// MeanAbsoluteDifference is a quick divergence preview over the two raw
// emission sequences, paired positionally up to the shorter one. It ignores
// timestamps entirely and exists only for generation-time logging; the real
// comparison is the reconciler's job.
func (f Fixture) MeanAbsoluteDifference() float64 {
	a, b := f.Device1.Trackpoints, f.Device2.Trackpoints
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(*a[i].HeartRate - *b[i].HeartRate)
	}
	return sum / float64(n)
}

type trailPoint struct {
	lat, lng, altitude, distance float64
}

// Generate builds the ground-truth curve, draws two independent device
// profiles, and observes the curve once per device. No process-global
// randomness: a root source derives one child source per purpose (profile
// draws, trail jitter, device 1, device 2), so generation is a pure function
// of the config and the two devices could even be observed concurrently.
func Generate(cfg GeneratorConfig) (Fixture, error) {
	total := int(cfg.Duration / time.Second)
	if total <= 0 {
		return Fixture{}, fmt.Errorf("duration %v yields no samples", cfg.Duration)
	}
	start := cfg.StartTime
	if start.IsZero() {
		start = time.Now().UTC().Truncate(time.Second)
	}

	root := rand.New(rand.NewSource(cfg.Seed))
	profileSrc := rand.NewSource(root.Uint64())
	trailSrc := rand.NewSource(root.Uint64())
	device1Src := rand.NewSource(root.Uint64())
	device2Src := rand.NewSource(root.Uint64())

	curve := Curve{MinHR: cfg.MinHR, MaxHR: cfg.MaxHR}
	truth := curve.Values(total)
	trail := generateTrail(total, trailSrc)

	profile1 := RandomProfile(profileSrc)
	profile2 := RandomProfile(profileSrc)

	device1, err := observeDevice("Synthetic Device 1", truth, trail, profile1, start, device1Src)
	if err != nil {
		return Fixture{}, err
	}
	device2, err := observeDevice("Synthetic Device 2", truth, trail, profile2, start, device2Src)
	if err != nil {
		return Fixture{}, err
	}

	slog.Info("generated fixture",
		"device1_records", len(device1.Trackpoints),
		"device2_records", len(device2.Trackpoints),
		"device1_bias", profile1.Bias,
		"device2_bias", profile2.Bias,
	)
	return Fixture{Device1: device1, Device2: device2}, nil
}

func observeDevice(name string, truth []float64, trail []trailPoint, profile DeviceProfile, start time.Time, src rand.Source) (DeviceFixture, error) {
	observations, err := Observe(truth, profile, src)
	if err != nil {
		return DeviceFixture{}, fmt.Errorf("%s: %w", name, err)
	}

	points := make([]trackpoint.Trackpoint, 0, len(observations))
	for j, obs := range observations {
		tp := trackpoint.Trackpoint{
			Time:      start.Add(time.Duration(obs.Index) * time.Second),
			HeartRate: trackpoint.Float(obs.Value),
		}
		// The trail is attached by emission order, matching how the files
		// under comparison interleave position and heart-rate channels.
		if j < len(trail) {
			tp.Lat = trackpoint.Float(trail[j].lat)
			tp.Lng = trackpoint.Float(trail[j].lng)
			tp.AltitudeM = trackpoint.Float(trail[j].altitude)
			tp.DistanceM = trackpoint.Float(trail[j].distance)
		}
		points = append(points, tp)
	}
	return DeviceFixture{Name: name, Profile: profile, Trackpoints: points}, nil
}

// generateTrail lays down a simple running route: linear drift from a fixed
// origin, jittered altitude around 2148 m, and a steady 2.5 m/s pace. The
// trail is decoration for the serialized files; the analysis never reads it
// beyond reporting total distance.
func generateTrail(total int, src rand.Source) []trailPoint {
	const (
		startLat = 38.9482
		startLng = -104.7312
	)
	altJitter := distuv.Uniform{Min: -5, Max: 5, Src: src}

	trail := make([]trailPoint, total)
	for i := range trail {
		drift := float64(i) / 1000 * 0.001
		trail[i] = trailPoint{
			lat:      startLat + drift,
			lng:      startLng + drift,
			altitude: 2148 + altJitter.Rand(),
			distance: float64(i) * 2.5,
		}
	}
	return trail
}
