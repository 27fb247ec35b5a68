package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/patrickmn/go-cache"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/seapix/fishdex/classifier"
	"github.com/seapix/fishdex/config"
)

var (
	modelMu sync.RWMutex
	model   *classifier.Model

	resultCache *cache.Cache

	cudaOnce      sync.Once
	cudaAvailable bool
)

// Init prepares the result cache and loads the classifier from the
// configured candidate paths. A missing model is not fatal: the server
// starts and reports guidance until a model is uploaded.
func Init(ctx context.Context) error {
	resultCache = cache.New(config.C().CacheTTL, 2*config.C().CacheTTL)

	m, err := classifier.Load(config.C().ModelPaths...)
	if err != nil {
		return err
	}
	SetModel(m)

	go func() {
		<-ctx.Done()
		SetModel(nil)
	}()
	return nil
}

// Model returns the active classifier, or nil when none is loaded.
func Model() *classifier.Model {
	modelMu.RLock()
	defer modelMu.RUnlock()
	return model
}

// SetModel swaps the active classifier, closing the previous one.
func SetModel(m *classifier.Model) {
	modelMu.Lock()
	old := model
	model = m
	modelMu.Unlock()
	if old != nil {
		old.Close()
	}
}

// availableDevices reports the compute devices usable for inference. CPU is
// always present; CUDA is probed once by asking the runtime for provider
// options.
func availableDevices() []string {
	cudaOnce.Do(func() {
		opts, err := ort.NewCUDAProviderOptions()
		if err == nil {
			cudaAvailable = true
			opts.Destroy()
		} else {
			slog.Info("CUDA not available for inference", slog.String("reason", err.Error()))
		}
	})
	devices := []string{classifier.DeviceCPU}
	if cudaAvailable {
		devices = append(devices, classifier.DeviceCUDA)
	}
	return devices
}
