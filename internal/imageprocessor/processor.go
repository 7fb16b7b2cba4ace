package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Thumbnails are bounded to this many pixels on the longer side.
const thumbnailMaxDim = 150

// Processor derives the JPEG thumbnails shown in the gallery and on
// the map from uploaded portfolio images.
type Processor struct {
	quality int
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Thumbnail decodes the source image and re-encodes it as a JPEG
// scaled down to fit the thumbnail bounds, aspect ratio preserved.
// Images already within bounds keep their dimensions.
func (p *Processor) Thumbnail(reader io.Reader) (io.Reader, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaleToFit(img, thumbnailMaxDim), &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return &buf, nil
}

func scaleToFit(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxDim && height <= maxDim {
		return img
	}

	newWidth, newHeight := maxDim, maxDim
	if width > height {
		newHeight = height * maxDim / width
	} else {
		newWidth = width * maxDim / height
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
