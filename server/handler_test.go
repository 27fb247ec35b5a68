package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/color"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seapix/fishdex/classifier"
	"github.com/seapix/fishdex/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	// Init prepares the cache; the model load fails because no model file
	// exists in the test environment, which is fine.
	_ = Init(context.Background())
	os.Exit(m.Run())
}

func router() *gin.Engine {
	r := gin.New()
	r.POST("/api/classify", ClassifyHandler)
	r.GET("/api/species/:name", SpeciesHandler)
	r.GET("/api/sound/:kind", SoundHandler)
	r.GET("/health", HealthHandler)
	return r
}

// seaBassModel favors output index 5 ("Sea Bass" in the default labels).
func seaBassModel() *classifier.Model {
	return classifier.New(classifier.DefaultLabels(), func(input []float32, device string) ([]float32, error) {
		logits := make([]float32, 9)
		logits[5] = 5
		return logits, nil
	})
}

func imageForm(t *testing.T, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	img := imaging.New(64, 48, color.NRGBA{R: 30, G: 60, B: 90, A: 255})
	var imgBuf bytes.Buffer
	require.NoError(t, imaging.Encode(&imgBuf, img, imaging.JPEG))

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("image", "fish.jpg")
	require.NoError(t, err)
	_, err = io.Copy(fw, &imgBuf)
	require.NoError(t, err)
	for k, v := range extra {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestClassifyNoModel(t *testing.T) {
	SetModel(nil)

	body, contentType := imageForm(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/classify", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestClassifyHappyPath(t *testing.T) {
	SetModel(seaBassModel())
	resultCache.Flush()

	body, contentType := imageForm(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/classify", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Predictions, 3)
	assert.Equal(t, "Sea Bass", resp.Predictions[0].Species)
	assert.Equal(t, "Sea Bass", resp.TopSpecies.Name)
	assert.Equal(t, "NT", resp.TopSpecies.Conservation.Code)
	assert.Equal(t, "cpu", resp.Device)
	assert.NotEmpty(t, resp.AnnotatedPNG)
}

func TestClassifyCachesResults(t *testing.T) {
	SetModel(seaBassModel())
	resultCache.Flush()

	var bodies []string
	for i := 0; i < 2; i++ {
		body, contentType := imageForm(t, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/classify", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router().ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		bodies = append(bodies, w.Body.String())
	}
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, 1, resultCache.ItemCount())
}

func TestClassifyUnknownDevice(t *testing.T) {
	SetModel(seaBassModel())

	body, contentType := imageForm(t, map[string]string{"device": "tpu"})
	req := httptest.NewRequest(http.MethodPost, "/api/classify", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyMissingImage(t *testing.T) {
	SetModel(seaBassModel())

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/classify", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyUnknownSample(t *testing.T) {
	SetModel(seaBassModel())

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("sample", "kraken"))
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/classify", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyUndecodableImage(t *testing.T) {
	SetModel(seaBassModel())

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("image", "notes.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("this is not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/classify", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSpeciesEndpointNormalizesNames(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/species/trout", nil)
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Trout", resp["name"])
}

func TestSoundEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/sound/bubbles", nil)
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/wav", w.Header().Get("Content-Type"))
	assert.Equal(t, "RIFF", string(w.Body.Bytes()[:4]))
}

func TestSoundEndpointUnknownKind(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/sound/thunder", nil)
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSampleNamesMatchSampleImages(t *testing.T) {
	names := sampleNames()
	require.Len(t, names, len(sampleImages))
	for _, name := range names {
		assert.Contains(t, sampleImages, name)
	}
	assert.IsIncreasing(t, names)
}

func TestRetireUploadedModelRemovesPrevious(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.onnx")
	require.NoError(t, os.WriteFile(first, []byte("m1"), 0o644))
	require.NoError(t, os.WriteFile(classifier.SidecarPath(first), []byte("{}"), 0o644))

	retireUploadedModel(first)
	assert.FileExists(t, first)

	second := filepath.Join(dir, "second.onnx")
	require.NoError(t, os.WriteFile(second, []byte("m2"), 0o644))
	retireUploadedModel(second)

	assert.NoFileExists(t, first)
	assert.NoFileExists(t, classifier.SidecarPath(first))
	assert.FileExists(t, second)

	retireUploadedModel("")
}

func TestIndexShowsActiveModelLabels(t *testing.T) {
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.GET("/", IndexHandler)

	SetModel(classifier.New([]string{"Anchovy"}, nil))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Anchovy")
	assert.NotContains(t, w.Body.String(), "Gilthead Bream")

	SetModel(nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gilthead Bream")
}

func TestHealth(t *testing.T) {
	SetModel(seaBassModel())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, true, resp["model_loaded"])
}
