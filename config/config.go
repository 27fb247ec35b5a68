package config

import (
	"os"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Token   string `toml:"token" mapstructure:"token"`
	Host    string `toml:"host" mapstructure:"host"`
	Port    string `toml:"port" mapstructure:"port"`
	Libonnx string `toml:"libonnx" mapstructure:"libonnx"`

	// Device is the preferred compute device for inference, "cuda" or "cpu".
	// Inference falls back to CPU once on resource or compatibility errors.
	Device string `toml:"device" mapstructure:"device"`

	// ModelPaths are tried in order; the first existing file is loaded.
	ModelPaths []string `toml:"model_paths" mapstructure:"model_paths"`

	TopK      int    `toml:"top_k" mapstructure:"top_k"`
	SampleDir string `toml:"sample_dir" mapstructure:"sample_dir"`

	// CacheTTL is the lifetime of cached classification results.
	CacheTTL time.Duration `toml:"cache_ttl" mapstructure:"cache_ttl"`
}

var (
	cfg = Config{
		Token:  "",
		Host:   "0.0.0.0",
		Port:   "8000",
		Device: "cpu",
		ModelPaths: []string{
			"models/convnext.onnx",
			"fishdex/models/convnext.onnx",
			"../models/convnext.onnx",
		},
		TopK:      3,
		SampleDir: "samples",
		CacheTTL:  10 * time.Minute,
	}
	loadOnce sync.Once
)

func C() Config {
	loadOnce.Do(func() {
		if _, err := os.Stat("config.toml"); err == nil {
			data, err := os.ReadFile("config.toml")
			if err != nil {
				panic(err)
			}
			if err := toml.Unmarshal(data, &cfg); err != nil {
				panic(err)
			}
		}
	})
	return cfg
}
