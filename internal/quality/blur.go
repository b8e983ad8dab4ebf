package quality

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat"
)

// LaplacianVariance converts img to grayscale no larger than maxSide on its
// long side and returns the variance of the 4-neighbour discrete Laplacian
// over interior pixels. ok is false when the image is too small to measure.
func LaplacianVariance(img image.Image, maxSide int) (float64, bool) {
	if img == nil {
		return 0, false
	}
	gray := downscaleGray(img, maxSide)
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return 0, false
	}

	values := make([]float64, 0, (w-2)*(h-2))
	for y := 1; y < h-1; y++ {
		row := y * gray.Stride
		for x := 1; x < w-1; x++ {
			i := row + x
			c := float64(gray.Pix[i])
			lap := 4*c -
				float64(gray.Pix[i-1]) -
				float64(gray.Pix[i+1]) -
				float64(gray.Pix[i-gray.Stride]) -
				float64(gray.Pix[i+gray.Stride])
			values = append(values, lap)
		}
	}

	_, variance := stat.MeanVariance(values, nil)
	if math.IsNaN(variance) {
		return 0, false
	}
	return variance, true
}

// downscaleGray returns a zero-origin grayscale copy of img whose long side
// is at most maxSide.
func downscaleGray(img image.Image, maxSide int) *image.Gray {
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	long := max(w, h)
	if maxSide > 0 && long > maxSide {
		scale := float64(maxSide) / float64(long)
		w = max(1, int(math.Round(float64(w)*scale)))
		h = max(1, int(math.Round(float64(h)*scale)))
	}

	gray := image.NewGray(image.Rect(0, 0, w, h))
	if w == src.Dx() && h == src.Dy() {
		draw.Draw(gray, gray.Bounds(), img, src.Min, draw.Src)
		return gray
	}
	draw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, src, draw.Src, nil)
	return gray
}
