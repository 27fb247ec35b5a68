package classifier

import (
	"image"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/gen2brain/avif"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
)

const resizeEdge = 256

// ImageNet channel statistics, matching the model's training transform.
var (
	normMean = [3]float32{0.485, 0.456, 0.406}
	normStd  = [3]float32{0.229, 0.224, 0.225}
)

// Preprocess converts a decoded image into the model's input tensor:
// shortest side resized to 256, center crop to 224x224, CHW float32 planes
// normalized per channel. The leading batch dimension is implied by the
// tensor shape at session time.
func Preprocess(img image.Image) []float32 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// Resize shortest side to resizeEdge, preserving aspect ratio.
	if w < h {
		img = imaging.Resize(img, resizeEdge, 0, imaging.Lanczos)
	} else {
		img = imaging.Resize(img, 0, resizeEdge, imaging.Lanczos)
	}
	img = imaging.CropCenter(img, ImageSize, ImageSize)

	out := make([]float32, 3*ImageSize*ImageSize)
	rBase := 0
	gBase := ImageSize * ImageSize
	bBase := 2 * ImageSize * ImageSize

	for y := 0; y < ImageSize; y++ {
		for x := 0; x < ImageSize; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			fr := float32(r) / 65535.0
			fg := float32(g) / 65535.0
			fb := float32(b) / 65535.0

			out[rBase] = (fr - normMean[0]) / normStd[0]
			out[gBase] = (fg - normMean[1]) / normStd[1]
			out[bBase] = (fb - normMean[2]) / normStd[2]

			rBase++
			gBase++
			bBase++
		}
	}
	return out
}
