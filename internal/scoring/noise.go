package scoring

import "math/rand"

// Noise supplies the post-scoring perturbation and the reported confidence
// value. It is a pluggable stage so scoring stays deterministic by default
// and tests can inject a seeded source.
type Noise interface {
	// Jitter returns an adjustment added to the final risk score before clamping.
	Jitter() float64
	// Confidence returns the confidence value reported alongside the score.
	// It carries no calibrated relationship to score accuracy.
	Confidence() float64
}

// NoNoise is the deterministic default: zero jitter and a fixed confidence.
type NoNoise struct{}

// Jitter returns 0.
func (NoNoise) Jitter() float64 { return 0 }

// Confidence returns a fixed 0.85.
func (NoNoise) Confidence() float64 { return 0.85 }

// RandomNoise reproduces the production presentation behavior: a small
// random perturbation of the score and a confidence drawn from [0.75, 0.95).
type RandomNoise struct {
	rng *rand.Rand
}

// NewRandomNoise creates a RandomNoise backed by the given source.
func NewRandomNoise(rng *rand.Rand) *RandomNoise {
	return &RandomNoise{rng: rng}
}

// Jitter returns a perturbation in (-0.05, 0.05).
func (n *RandomNoise) Jitter() float64 {
	return (n.rng.Float64() - 0.5) * 0.1
}

// Confidence returns a value in [0.75, 0.95).
func (n *RandomNoise) Confidence() float64 {
	return 0.75 + n.rng.Float64()*0.2
}
