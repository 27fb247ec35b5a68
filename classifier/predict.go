package classifier

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Confidence smoothing constants: a softmax maximum above smoothTrigger is
// capped to smoothCap, with the excess spread over the other classes.
const (
	smoothTrigger = 0.98
	smoothCap     = 0.95
)

// fallbackMarkers identify errors worth one retry on CPU: resource
// exhaustion or device incompatibility. Anything else propagates.
var fallbackMarkers = []string{
	"out of memory",
	"failed to allocate",
	"unsupported",
	"not implemented",
	"device-side assert",
	"invalid device",
}

func shouldFallback(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range fallbackMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// Predict runs a forward pass on the requested device and returns smoothed
// per-class probabilities. On a resource or compatibility error it retries
// exactly once on CPU; any other error, or a failure of the retry itself,
// is returned.
func (m *Model) Predict(input []float32, device string) ([]float32, error) {
	logits, err := m.forward(input, device)
	if err != nil {
		if device == DeviceCPU || !shouldFallback(err) {
			return nil, fmt.Errorf("inference on %s failed: %w", device, err)
		}
		slog.Warn("Device unavailable for inference, falling back to CPU",
			slog.String("device", device), slog.String("error", err.Error()))
		logits, err = m.forward(input, DeviceCPU)
		if err != nil {
			return nil, fmt.Errorf("inference on cpu fallback failed: %w", err)
		}
	}

	probs := Softmax(logits)
	SmoothConfidence(probs)
	return probs, nil
}

// Softmax converts logits to probabilities, shifted by the maximum for
// numerical stability.
func Softmax(logits []float32) []float32 {
	probs := make([]float32, len(logits))
	if len(logits) == 0 {
		return probs
	}

	maxVal := logits[0]
	for _, v := range logits[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	var sum float64
	for i, v := range logits {
		e := math.Exp(float64(v - maxVal))
		probs[i] = float32(e)
		sum += e
	}
	for i := range probs {
		probs[i] = float32(float64(probs[i]) / sum)
	}
	return probs
}

// SmoothConfidence caps an overconfident maximum in place. If the maximum
// probability exceeds 0.98 it is set to 0.95 and the remaining 0.05 is
// redistributed across the other entries in proportion to their values.
// When every other entry is zero the redistribution is skipped and the
// vector sums to 0.95.
func SmoothConfidence(probs []float32) {
	if len(probs) == 0 {
		return
	}

	maxIdx := 0
	for i, v := range probs {
		if v > probs[maxIdx] {
			maxIdx = i
		}
	}
	if probs[maxIdx] <= smoothTrigger {
		return
	}

	var rest float32
	for i, v := range probs {
		if i != maxIdx {
			rest += v
		}
	}

	probs[maxIdx] = smoothCap
	if rest <= 0 {
		return
	}
	excess := float32(1) - smoothCap
	for i := range probs {
		if i != maxIdx {
			probs[i] = probs[i] / rest * excess
		}
	}
}
