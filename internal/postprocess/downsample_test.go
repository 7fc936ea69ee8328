package postprocess_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stillife-renderer/internal/postprocess"
)

func TestDownsampleSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	out := postprocess.Downsample(src, 64)
	require.Equal(t, 64, out.Bounds().Dx())
	require.Equal(t, 64, out.Bounds().Dy())
}

func TestDownsampleNoopWhenSmallEnough(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	out := postprocess.Downsample(src, 64)
	assert.Same(t, src, out)
}

func TestDownsamplePreservesSolidColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			src.SetNRGBA(x, y, color.NRGBA{180, 90, 45, 255})
		}
	}
	out := postprocess.Downsample(src, 32)
	c := out.NRGBAAt(16, 16)
	assert.InDelta(t, 180, int(c.R), 2)
	assert.InDelta(t, 90, int(c.G), 2)
	assert.InDelta(t, 45, int(c.B), 2)
	assert.Equal(t, uint8(255), c.A)
}
