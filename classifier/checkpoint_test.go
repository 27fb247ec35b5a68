package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNoCandidates(t *testing.T) {
	_, err := Resolve([]string{"does/not/exist.onnx", "also/missing.onnx"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no model file found")
}

func TestResolveFirstExistingWins(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "second.onnx")
	third := filepath.Join(dir, "third.onnx")
	require.NoError(t, os.WriteFile(second, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(third, []byte("x"), 0o644))

	path, err := Resolve([]string{filepath.Join(dir, "first.onnx"), second, third})
	require.NoError(t, err)
	assert.Equal(t, second, path)
}

func TestSidecarPath(t *testing.T) {
	assert.Equal(t, "models/convnext.labels.json", SidecarPath("models/convnext.onnx"))
	assert.Equal(t, "m.labels.json", SidecarPath("m.pt"))
}

func TestReadLabelsMissingSidecarUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	labels, err := ReadLabels(filepath.Join(dir, "model.onnx"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLabels(), labels)
}

func TestReadLabelsFromSidecar(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.onnx")
	sidecar := `{"class_names": ["a", "b", "c"]}`
	require.NoError(t, os.WriteFile(SidecarPath(model), []byte(sidecar), 0o644))

	labels, err := ReadLabels(model)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, labels)
}

func TestReadLabelsEmptySidecarUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.onnx")
	require.NoError(t, os.WriteFile(SidecarPath(model), []byte(`{}`), 0o644))

	labels, err := ReadLabels(model)
	require.NoError(t, err)
	assert.Equal(t, DefaultLabels(), labels)
}

func TestReadLabelsMalformedSidecar(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.onnx")
	require.NoError(t, os.WriteFile(SidecarPath(model), []byte("not json"), 0o644))

	_, err := ReadLabels(model)
	assert.Error(t, err)
}

func TestLoadNoModelReturnsError(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "missing.onnx"))
	assert.Error(t, err)
	assert.Nil(t, m)
}
