// Package annotate composes the downloadable result image: the uploaded
// photo on a white card with a banner naming the top prediction.
package annotate

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	pad     = 16
	bannerH = 40
)

var bannerColor = color.RGBA{R: 0x2C, G: 0x42, B: 0x92, A: 0xFF}

// PNG renders the annotated result card and returns it PNG-encoded.
func PNG(img image.Image, speciesName string, confidence float32) ([]byte, error) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	canvas := imaging.New(w+2*pad, h+2*pad+bannerH, color.White)
	canvas = imaging.Paste(canvas, img, image.Pt(pad, pad))

	label := fmt.Sprintf("Predicted: %s (%.1f%% confidence)", speciesName, confidence*100)
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(bannerColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(pad, h+pad+bannerH/2+4),
	}
	d.DrawString(label)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode annotated image: %w", err)
	}
	return buf.Bytes(), nil
}
