package synth

import "math"

// Default true heart-rate envelope, matching a moderate 30-minute run.
const (
	DefaultMinHR = 60.0
	DefaultMaxHR = 180.0
)

// Curve is the shared ground-truth heart-rate signal both simulated devices
// observe. It is fully deterministic: an exercise-phase envelope between
// MinHR and MaxHR plus smooth sinusoidal variability, assuming 1 Hz sampling.
type Curve struct {
	MinHR float64
	MaxHR float64
}

// At returns the true heart rate at sample index i of a session that is
// total samples long. The session is split into four phases by normalized
// progress: warmup ramps to half range, the main ramp climbs to MaxHR, the
// second half decays by 20% of range, and the cooldown falls back to MinHR.
func (c Curve) At(i, total int) float64 {
	progress := float64(i) / float64(total)
	span := c.MaxHR - c.MinHR

	var base float64
	switch {
	case progress < 0.2:
		base = c.MinHR + span*(progress/0.2)*0.5
	case progress < 0.5:
		phase := (progress - 0.2) / 0.3
		base = c.MinHR + span*(0.5+0.5*phase)
	case progress < 0.8:
		phase := (progress - 0.5) / 0.3
		base = c.MaxHR - span*0.2*phase
	default:
		phase := (progress - 0.8) / 0.2
		base = c.MaxHR*0.8 - (c.MaxHR*0.8-c.MinHR)*phase
	}

	variability := 3*math.Sin(float64(i)*0.1) + 2*math.Sin(float64(i)*0.05)
	return clamp(base+variability, c.MinHR, c.MaxHR)
}

// Values materializes the whole session, one sample per second.
func (c Curve) Values(total int) []float64 {
	values := make([]float64, total)
	for i := range values {
		values[i] = c.At(i, total)
	}
	return values
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
