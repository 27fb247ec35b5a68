package annotate

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGDimensions(t *testing.T) {
	src := imaging.New(200, 150, color.NRGBA{R: 10, G: 80, B: 160, A: 255})

	data, err := PNG(src, "Sea Bass", 0.87)
	require.NoError(t, err)

	out, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 200+2*pad, out.Bounds().Dx())
	assert.Equal(t, 150+2*pad+bannerH, out.Bounds().Dy())
}

func TestPNGBannerDrawn(t *testing.T) {
	src := imaging.New(120, 90, color.White)

	data, err := PNG(src, "Trout", 0.42)
	require.NoError(t, err)

	out, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// The banner area below the image must contain at least one non-white
	// pixel from the rendered label.
	found := false
	for y := 90 + 2*pad; y < out.Bounds().Dy() && !found; y++ {
		for x := 0; x < out.Bounds().Dx(); x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "banner text not rendered")
}
