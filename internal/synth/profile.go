package synth

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadProfile marks a device profile with parameters outside their valid
// ranges. It is a configuration error and is reported before any sample is
// generated.
var ErrBadProfile = errors.New("invalid device profile")

// DeviceProfile describes how one simulated device deviates from the true
// heart-rate signal. A profile is drawn once per device and never mutated.
type DeviceProfile struct {
	Bias                 float64 `json:"bias"`
	NoiseStd             float64 `json:"noise_std"`
	GapProbability       float64 `json:"gap_probability"`
	MaxGapSeconds        int     `json:"max_gap_seconds"`
	DuplicateProbability float64 `json:"duplicate_probability"`
}

func (p DeviceProfile) Validate() error {
	if p.NoiseStd < 0 {
		return fmt.Errorf("%w: noise std %v is negative", ErrBadProfile, p.NoiseStd)
	}
	if p.GapProbability < 0 || p.GapProbability > 1 {
		return fmt.Errorf("%w: gap probability %v outside [0,1]", ErrBadProfile, p.GapProbability)
	}
	if p.DuplicateProbability < 0 || p.DuplicateProbability > 1 {
		return fmt.Errorf("%w: duplicate probability %v outside [0,1]", ErrBadProfile, p.DuplicateProbability)
	}
	if p.MaxGapSeconds < 1 {
		return fmt.Errorf("%w: max gap seconds %d must be at least 1", ErrBadProfile, p.MaxGapSeconds)
	}
	return nil
}

// RandomProfile draws each parameter independently and uniformly within the
// fixed ranges of a plausible consumer heart-rate sensor.
func RandomProfile(src rand.Source) DeviceProfile {
	uniform := func(lo, hi float64) float64 {
		return distuv.Uniform{Min: lo, Max: hi, Src: src}.Rand()
	}
	return DeviceProfile{
		Bias:                 uniform(-10, 10),
		NoiseStd:             uniform(1, 3),
		GapProbability:       uniform(0.01, 0.05),
		MaxGapSeconds:        3 + rand.New(src).Intn(28),
		DuplicateProbability: uniform(0.05, 0.15),
	}
}
