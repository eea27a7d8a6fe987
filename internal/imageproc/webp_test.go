package imageproc

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestToWebP(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 320, 240))
	require.NoError(t, err)
	require.NotEmpty(t, out)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	// Small images keep their dimensions.
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}

func TestToWebPScalesDownWideImages(t *testing.T) {
	out, err := ToWebP(pngBytes(t, 3200, 1600))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, 1600, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy(), "aspect ratio preserved")
}

func TestToWebPRejectsGarbage(t *testing.T) {
	_, err := ToWebP([]byte("not an image"))
	assert.Error(t, err)
}
