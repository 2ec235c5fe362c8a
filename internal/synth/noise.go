package synth

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Physiologically plausible bounds every emitted sample is clamped to,
// regardless of how extreme the profile or the true signal gets.
const (
	ClampMinBPM = 40.0
	ClampMaxBPM = 220.0
)

// Sensor noise persists across nearby samples rather than being independent
// per sample; 0.7 is the first-order autoregression coefficient.
const noiseCorrelation = 0.7

// Observation is one emitted device sample: the ground-truth index it was
// taken at and the observed value. Duplicate observations share an index.
type Observation struct {
	Index int
	Value float64
}

// Observe runs one simulated device over the shared ground-truth curve and
// returns its emissions in emission order. The walk over the curve is a
// single accumulator loop: precomputed AR(1) noise, a chance to skip forward
// over a sampling gap, an emission with bias and noise applied, and a chance
// to re-emit the same index with unit-normal jitter. All randomness comes
// from src, consumed in a fixed order so a seeded source reproduces the same
// emissions.
func Observe(truth []float64, profile DeviceProfile, src rand.Source) ([]Observation, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	noise := autocorrelatedNoise(len(truth), profile.NoiseStd, src)
	rng := rand.New(src)
	jitter := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	var out []Observation
	for i := 0; i < len(truth); {
		if rng.Float64() < profile.GapProbability {
			i += 1 + rng.Intn(profile.MaxGapSeconds)
			continue
		}

		value := clamp(truth[i]+profile.Bias+noise[i], ClampMinBPM, ClampMaxBPM)
		out = append(out, Observation{Index: i, Value: value})

		if rng.Float64() < profile.DuplicateProbability {
			dup := clamp(value+jitter.Rand(), ClampMinBPM, ClampMaxBPM)
			out = append(out, Observation{Index: i, Value: dup})
		}
		i++
	}
	return out, nil
}

// autocorrelatedNoise builds an AR(1) noise sequence: the first sample is
// N(0, std) and each subsequent one is correlation·previous plus an
// innovation scaled so the marginal variance stays std².
func autocorrelatedNoise(n int, std float64, src rand.Source) []float64 {
	if n == 0 {
		return nil
	}
	normal := distuv.Normal{Mu: 0, Sigma: std, Src: src}
	innovation := distuv.Normal{
		Mu:    0,
		Sigma: std * math.Sqrt(1-noiseCorrelation*noiseCorrelation),
		Src:   src,
	}

	noise := make([]float64, n)
	noise[0] = normal.Rand()
	for i := 1; i < n; i++ {
		noise[i] = noiseCorrelation*noise[i-1] + innovation.Rand()
	}
	return noise
}
