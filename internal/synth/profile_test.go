package synth

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func TestRandomProfileRanges(t *testing.T) {
	src := rand.NewSource(1)
	for i := 0; i < 100; i++ {
		p := RandomProfile(src)
		if err := p.Validate(); err != nil {
			t.Fatalf("random profile invalid: %v", err)
		}
		if p.Bias < -10 || p.Bias > 10 {
			t.Fatalf("bias out of range: %v", p.Bias)
		}
		if p.NoiseStd < 1 || p.NoiseStd > 3 {
			t.Fatalf("noise std out of range: %v", p.NoiseStd)
		}
		if p.GapProbability < 0.01 || p.GapProbability > 0.05 {
			t.Fatalf("gap probability out of range: %v", p.GapProbability)
		}
		if p.MaxGapSeconds < 3 || p.MaxGapSeconds > 30 {
			t.Fatalf("max gap seconds out of range: %d", p.MaxGapSeconds)
		}
		if p.DuplicateProbability < 0.05 || p.DuplicateProbability > 0.15 {
			t.Fatalf("duplicate probability out of range: %v", p.DuplicateProbability)
		}
	}
}

func TestProfileValidate(t *testing.T) {
	valid := DeviceProfile{NoiseStd: 1, GapProbability: 0.05, MaxGapSeconds: 5, DuplicateProbability: 0.1}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid profile, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*DeviceProfile)
	}{
		{"negative noise std", func(p *DeviceProfile) { p.NoiseStd = -1 }},
		{"gap probability above one", func(p *DeviceProfile) { p.GapProbability = 1.5 }},
		{"negative gap probability", func(p *DeviceProfile) { p.GapProbability = -0.1 }},
		{"duplicate probability above one", func(p *DeviceProfile) { p.DuplicateProbability = 2 }},
		{"zero max gap", func(p *DeviceProfile) { p.MaxGapSeconds = 0 }},
	}
	for _, tc := range tests {
		p := valid
		tc.mutate(&p)
		err := p.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !errors.Is(err, ErrBadProfile) {
			t.Fatalf("%s: expected ErrBadProfile, got %v", tc.name, err)
		}
	}
}
