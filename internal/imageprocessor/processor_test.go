package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestThumbnailScalesDownPreservingAspectRatio(t *testing.T) {
	p := NewProcessor(85)

	out, err := p.Thumbnail(encodePNG(t, 600, 300))
	require.NoError(t, err)

	thumb, err := jpeg.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 150, thumb.Bounds().Dx())
	assert.Equal(t, 75, thumb.Bounds().Dy())
}

func TestThumbnailKeepsSmallImages(t *testing.T) {
	p := NewProcessor(85)

	out, err := p.Thumbnail(encodePNG(t, 100, 80))
	require.NoError(t, err)

	thumb, err := jpeg.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 100, thumb.Bounds().Dx())
	assert.Equal(t, 80, thumb.Bounds().Dy())
}

func TestThumbnailRejectsNonImageData(t *testing.T) {
	p := NewProcessor(85)

	_, err := p.Thumbnail(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestNewProcessorClampsQuality(t *testing.T) {
	assert.Equal(t, 85, NewProcessor(0).quality)
	assert.Equal(t, 85, NewProcessor(101).quality)
	assert.Equal(t, 60, NewProcessor(60).quality)
}
