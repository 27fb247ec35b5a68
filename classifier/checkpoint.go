package classifier

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ort "github.com/yalue/onnxruntime_go"
)

// labelSidecar is the optional JSON file shipped next to a model, holding
// the class names in output-index order.
type labelSidecar struct {
	ClassNames []string `json:"class_names"`
}

// Resolve returns the first existing path from the candidate list.
func Resolve(paths []string) (string, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no model file found, tried: %s", strings.Join(paths, ", "))
}

// SidecarPath returns the label sidecar path for a model file,
// e.g. models/convnext.onnx -> models/convnext.labels.json.
func SidecarPath(modelPath string) string {
	return strings.TrimSuffix(modelPath, filepath.Ext(modelPath)) + ".labels.json"
}

// ReadLabels loads class names from the model's label sidecar. A missing
// sidecar or a sidecar without class names substitutes the default label
// list; a malformed sidecar is an error.
func ReadLabels(modelPath string) ([]string, error) {
	sidecar := SidecarPath(modelPath)
	data, err := os.ReadFile(sidecar)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Class names not found next to model, using defaults",
				slog.String("sidecar", sidecar))
			return DefaultLabels(), nil
		}
		return nil, fmt.Errorf("failed to read label sidecar: %w", err)
	}

	var sc labelSidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse label sidecar %s: %w", sidecar, err)
	}
	if len(sc.ClassNames) == 0 {
		slog.Warn("Label sidecar has no class names, using defaults",
			slog.String("sidecar", sidecar))
		return DefaultLabels(), nil
	}
	return sc.ClassNames, nil
}

// Load tries each candidate path in order and loads the first existing model
// together with its labels. Sessions are created lazily on first prediction.
func Load(paths ...string) (*Model, error) {
	path, err := Resolve(paths)
	if err != nil {
		return nil, err
	}

	if _, _, err := ort.GetInputOutputInfo(path); err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", path, err)
	}

	labels, err := ReadLabels(path)
	if err != nil {
		return nil, err
	}

	m := &Model{path: path, labels: labels}
	m.forward = m.ortForward
	slog.Info("Model loaded", slog.String("path", path), slog.Int("classes", len(labels)))
	return m, nil
}
