package server

import (
	"bytes"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/seapix/fishdex/annotate"
	"github.com/seapix/fishdex/classifier"
	"github.com/seapix/fishdex/config"
	"github.com/seapix/fishdex/sound"
	"github.com/seapix/fishdex/species"
)

var errUnauthorized = errors.New("unauthorized")

func authenticate(c *gin.Context) error {
	auth := c.GetHeader("Authorization")

	expectedToken := config.C().Token
	if expectedToken == "" {
		return nil
	}
	providedToken := ""
	if len(auth) > 7 && auth[:7] == "Bearer " {
		providedToken = auth[7:]
	}
	if subtle.ConstantTimeCompare([]byte(providedToken), []byte(expectedToken)) != 1 {
		return errUnauthorized
	}

	return nil
}

// IndexHandler serves the single-page UI.
func IndexHandler(c *gin.Context) {
	m := Model()
	labels := classifier.DefaultLabels()
	if m != nil {
		labels = m.Labels()
	}
	c.HTML(200, "index.html", gin.H{
		"Species":    labels,
		"Devices":    availableDevices(),
		"Device":     config.C().Device,
		"SoundKinds": sound.Kinds(),
		"Samples":    sampleNames(),
		"ModelReady": m != nil,
	})
}

// ClassifyHandler runs the full pipeline for one uploaded or sample image:
// decode, preprocess, predict with device fallback, rank, annotate.
func ClassifyHandler(c *gin.Context) {
	if err := authenticate(c); err != nil {
		c.JSON(401, gin.H{"error": "authentication failed"})
		return
	}

	m := Model()
	if m == nil {
		c.JSON(503, gin.H{
			"error": "no model loaded",
			"hint":  "place a model at one of the configured paths or upload one via /api/model",
		})
		return
	}

	device := c.PostForm("device")
	if device == "" {
		device = config.C().Device
	}
	if device != classifier.DeviceCPU && device != classifier.DeviceCUDA {
		c.JSON(400, gin.H{"error": fmt.Sprintf("unknown device %q", device)})
		return
	}

	imgBytes, err := requestImage(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	key := cacheKey(imgBytes, m.Path(), device)
	if cached, ok := resultCache.Get(key); ok {
		c.JSON(200, cached)
		return
	}

	img, _, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		c.JSON(400, gin.H{"error": "cannot decode image, supported formats: JPEG, PNG, WebP, AVIF"})
		return
	}

	start := time.Now()
	input := classifier.Preprocess(img)
	probs, err := m.Predict(input, device)
	if err != nil {
		slog.Error("Prediction failed", slog.String("error", err.Error()))
		c.JSON(500, gin.H{"error": "inference failed"})
		return
	}

	ranked := classifier.Rank(probs, m.Labels(), config.C().TopK)
	if len(ranked) == 0 {
		c.JSON(500, gin.H{"error": "model produced no predictions"})
		return
	}
	top := ranked[0]

	resp := ClassifyResponse{
		Predictions: ranked,
		TopSpecies:  species.Detail(top.Species),
		Device:      device,
		ElapsedMS:   time.Since(start).Milliseconds(),
	}

	if annotated, err := annotate.PNG(img, top.Species, top.Probability); err == nil {
		resp.AnnotatedPNG = base64.StdEncoding.EncodeToString(annotated)
	} else {
		slog.Warn("Failed to compose annotated image", slog.String("error", err.Error()))
	}

	resultCache.SetDefault(key, resp)
	c.JSON(200, resp)
}

// requestImage returns the raw bytes of the uploaded file, or of the
// selected bundled sample.
func requestImage(c *gin.Context) ([]byte, error) {
	if sample := c.PostForm("sample"); sample != "" {
		name, ok := sampleImages[sample]
		if !ok {
			return nil, fmt.Errorf("unknown sample %q", sample)
		}
		data, err := os.ReadFile(filepath.Join(config.C().SampleDir, name))
		if err != nil {
			return nil, fmt.Errorf("sample image not available: %w", err)
		}
		return data, nil
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, errors.New("no image uploaded, use the 'image' form field or pick a sample")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open uploaded file: %w", err)
	}
	defer file.Close()
	return io.ReadAll(file)
}

func cacheKey(imgBytes []byte, modelPath, device string) string {
	h := sha256.New()
	h.Write(imgBytes)
	h.Write([]byte(modelPath))
	h.Write([]byte(device))
	return hex.EncodeToString(h.Sum(nil))
}

var (
	uploadMu          sync.Mutex
	uploadedModelPath string
)

// retireUploadedModel records the temp path of the now-active uploaded model
// and removes the files of the one it replaced.
func retireUploadedModel(next string) {
	uploadMu.Lock()
	prev := uploadedModelPath
	uploadedModelPath = next
	uploadMu.Unlock()

	if prev == "" {
		return
	}
	if err := os.Remove(prev); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove replaced model file", slog.String("path", prev), slog.String("error", err.Error()))
	}
	if err := os.Remove(classifier.SidecarPath(prev)); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove replaced label file", slog.String("path", prev), slog.String("error", err.Error()))
	}
}

// ModelUploadHandler accepts a replacement .onnx model (and optional label
// sidecar), stores them as temp files and swaps the active classifier.
func ModelUploadHandler(c *gin.Context) {
	if err := authenticate(c); err != nil {
		c.JSON(401, gin.H{"error": "authentication failed"})
		return
	}

	fileHeader, err := c.FormFile("model")
	if err != nil {
		c.JSON(400, gin.H{"error": "no model uploaded, use the 'model' form field"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), "fishdex-"+uuid.NewString()+".onnx")
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		c.JSON(500, gin.H{"error": "failed to store uploaded model"})
		return
	}

	if labelsHeader, err := c.FormFile("labels"); err == nil {
		if err := c.SaveUploadedFile(labelsHeader, classifier.SidecarPath(tmpPath)); err != nil {
			c.JSON(500, gin.H{"error": "failed to store uploaded labels"})
			return
		}
	}

	m, err := classifier.Load(tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		os.Remove(classifier.SidecarPath(tmpPath))
		slog.Error("Uploaded model rejected", slog.String("error", err.Error()))
		c.JSON(400, gin.H{"error": fmt.Sprintf("uploaded model could not be loaded: %v", err)})
		return
	}

	SetModel(m)
	retireUploadedModel(tmpPath)
	resultCache.Flush()
	slog.Info("Custom model installed", slog.String("path", tmpPath))
	c.JSON(200, gin.H{"status": "model loaded", "classes": len(m.Labels())})
}

// SpeciesHandler returns the reference bundle for one species.
func SpeciesHandler(c *gin.Context) {
	name := classifier.DisplayName(c.Param("name"))
	c.JSON(200, species.Detail(name))
}

// SoundHandler synthesizes a notification sound and returns it as WAV.
func SoundHandler(c *gin.Context) {
	data, err := sound.Generate(c.Param("kind"))
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.Data(200, "audio/wav", data)
}

// SampleHandler serves one of the bundled sample images.
func SampleHandler(c *gin.Context) {
	name, ok := sampleImages[c.Param("name")]
	if !ok {
		c.JSON(404, gin.H{"error": "unknown sample"})
		return
	}
	c.File(filepath.Join(config.C().SampleDir, name))
}

func HealthHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy", "model_loaded": Model() != nil})
}
