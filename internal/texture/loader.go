package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// LoadImage reads an image file and returns it as NRGBA together with the
// source channel count. Only 3-channel (RGB) and 4-channel (RGBA) sources
// are accepted; everything else fails explicitly so a bad asset never
// reaches the sampler.
func LoadImage(path string) (*image.NRGBA, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("texture: read %s: %w", path, err)
	}
	defer f.Close()

	img, err := decodeByExt(path, f)
	if err != nil {
		return nil, 0, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	ch := channelCount(img)
	if ch != 3 && ch != 4 {
		return nil, ch, fmt.Errorf("texture: %s: unsupported channel count %d", path, ch)
	}
	return toNRGBA(img), ch, nil
}

// decodeByExt picks the decoder from the file extension. TGA has no
// magic header (its codec registers an empty-prefix sniffer that
// matches any file), so routing through image.Decode would send every
// format to the TGA decoder.
func decodeByExt(path string, r io.Reader) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".png":
		return png.Decode(r)
	case ".tga":
		return tga.Decode(r)
	case ".bmp":
		return bmp.Decode(r)
	default:
		return nil, fmt.Errorf("unsupported image format %q", filepath.Ext(path))
	}
}

// channelCount maps the decoded pixel layout to its source channel count.
// JPEG decodes to YCbCr (3), PNG/TGA/BMP with alpha to NRGBA/RGBA (4).
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.YCbCr:
		return 3
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64:
		return 4
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.Paletted:
		return 1
	case *image.CMYK:
		// More than RGBA; not supported.
		return 5
	default:
		return 0
	}
}

// toNRGBA converts any accepted image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr:
		// No alpha channel, draw and force alpha to 255.
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[dst.PixOffset(x, y)+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
