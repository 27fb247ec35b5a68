package config

import (
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalOverridesDefaults(t *testing.T) {
	doc := `
host = "127.0.0.1"
port = "9000"
device = "cuda"
model_paths = ["custom/model.onnx"]
top_k = 5
cache_ttl = 60000000000
`
	c := cfg
	require.NoError(t, toml.Unmarshal([]byte(doc), &c))

	assert.Equal(t, "127.0.0.1", c.Host)
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, "cuda", c.Device)
	assert.Equal(t, []string{"custom/model.onnx"}, c.ModelPaths)
	assert.Equal(t, 5, c.TopK)
	assert.Equal(t, time.Minute, c.CacheTTL)
}

func TestDefaults(t *testing.T) {
	c := C()
	assert.Equal(t, "cpu", c.Device)
	assert.Equal(t, 3, c.TopK)
	assert.NotEmpty(t, c.ModelPaths)
	assert.Positive(t, c.CacheTTL)
}
