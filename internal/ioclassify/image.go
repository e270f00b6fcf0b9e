package ioclassify

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ImageNet statistics the model was trained with.
var (
	mean = [3]float32{0.485, 0.456, 0.406}
	std  = [3]float32{0.229, 0.224, 0.225}
)

// LoadImage decodes a JPEG, PNG or WebP file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// ToTensor resizes img to size x size with bilinear interpolation and
// returns a normalized float32 slice in NHWC order with shape
// (1, size, size, 3).
func ToTensor(img image.Image, size int) []float32 {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	out := make([]float32, size*size*3)
	// rows then columns, so that memory layout matches NHWC
	for y := range size {
		for x := range size {
			i := dst.PixOffset(x, y)
			base := (y*size + x) * 3
			for c := range 3 {
				v := float32(dst.Pix[i+c]) / 255.0
				out[base+c] = (v - mean[c]) / std[c]
			}
		}
	}
	return out
}
