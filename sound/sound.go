// Package sound synthesizes the short notification effects played when a
// classification completes. Audio is generated procedurally and returned as
// in-memory WAV data, 22050 Hz 16-bit mono.
package sound

import (
	"fmt"
	"math"
	"math/rand"
)

const SampleRate = 22050

// Kinds lists the available effects.
func Kinds() []string {
	return []string{"bubbles", "splash"}
}

// Generate returns WAV bytes for a named effect kind.
func Generate(kind string) ([]byte, error) {
	switch kind {
	case "bubbles":
		return Bubbles(3.0)
	case "splash":
		return Splash(2.0)
	default:
		return nil, fmt.Errorf("unknown sound kind %q", kind)
	}
}

// Bubbles synthesizes a water-bubble effect: short sine bursts with
// exponentially decaying envelopes at random times and pitches, over a bed
// of smoothed noise.
func Bubbles(duration float64) ([]byte, error) {
	n := int(SampleRate * duration)
	samples := make([]float64, n)

	numBubbles := int(duration * 10)
	for b := 0; b < numBubbles; b++ {
		start := rand.Float64() * duration * 0.9
		bubbleDur := 0.05 + rand.Float64()*0.15
		freq := 100 + rand.Float64()*1900
		amp := 0.1 + rand.Float64()*0.4

		bubbleSamples := int(bubbleDur * SampleRate)
		startIdx := int(start * SampleRate)
		for i := 0; i < bubbleSamples && startIdx+i < n; i++ {
			t := float64(i) / SampleRate
			envelope := math.Exp(-10 * float64(i) / float64(bubbleSamples))
			samples[startIdx+i] += amp * math.Sin(2*math.Pi*freq*t) * envelope
		}
	}

	// Gentle water background: smoothed gaussian noise.
	noise := make([]float64, n)
	for i := range noise {
		noise[i] = rand.NormFloat64() * 0.05
	}
	smoothed := movingAverage(noise, 1000)
	for i := range samples {
		samples[i] += smoothed[i]
	}

	normalize(samples, 0.7)
	return encodeWAV(samples)
}

// Splash synthesizes a gentle splash: enveloped white noise shaped by a
// bank of fixed water-band sines (500-2000 Hz).
func Splash(duration float64) ([]byte, error) {
	n := int(SampleRate * duration)

	noise := make([]float64, n)
	for i := range noise {
		noise[i] = rand.NormFloat64()
	}

	sr := float64(SampleRate)
	attackSamples := int(0.05 * sr)
	for i := range noise {
		var env float64
		if i < attackSamples {
			env = float64(i) / float64(attackSamples)
		} else {
			env = math.Exp(-5 * float64(i-attackSamples) / float64(n-attackSamples))
		}
		noise[i] *= env
	}

	samples := make([]float64, n)
	for _, freq := range []float64{500, 800, 1200, 1600, 2000} {
		for i := range samples {
			t := float64(i) / SampleRate
			samples[i] += math.Sin(2*math.Pi*freq*t) * noise[i]
		}
	}

	normalize(samples, 0.7)
	return encodeWAV(samples)
}

// movingAverage smooths a signal with a flat window of the given size.
func movingAverage(in []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(in))
	var sum float64
	for i := range in {
		sum += in[i]
		if i >= window {
			sum -= in[i-window]
		}
		span := window
		if i+1 < window {
			span = i + 1
		}
		out[i] = sum / float64(span)
	}
	return out
}

// normalize scales samples in place so the peak magnitude equals target.
func normalize(samples []float64, target float64) {
	var peak float64
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return
	}
	scale := target / peak
	for i := range samples {
		samples[i] *= scale
	}
}
