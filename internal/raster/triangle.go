package raster

import (
	"image"
	"math"
)

// Shade carries the per-face lighting result into the pixel loop:
// an RGB multiplier on the surface color and an additive specular term,
// all in linear space.
type Shade struct {
	DiffR, DiffG, DiffB float64
	SpecR, SpecG, SpecB float64
}

// Unlit passes the surface color through unchanged.
func Unlit() Shade {
	return Shade{DiffR: 1, DiffG: 1, DiffB: 1}
}

// Surface selects the fragment color source for one triangle: a bound
// texture with per-vertex UVs, or a flat fallback color when tex is nil
// (untextured draw or an unresolved texture slot).
type Surface struct {
	Tex       *image.NRGBA
	UVScaleU  float64
	UVScaleV  float64
	FallbackR uint8
	FallbackG uint8
	FallbackB uint8
	FallbackA uint8
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

const invGamma = 1.0 / 2.2

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// DrawTriangle rasterizes one triangle with z-buffering, bilinear texture
// sampling and flat shading.
//
// This is the hot path: no allocation in the pixel loop. px/py/pz are
// screen-space vertex arrays; vi/ti index positions and UVs; sh is the
// face shade computed in world space before projection.
func DrawTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float64,
	vi, ti [3]int,
	surf *Surface,
	sh *Shade,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	hasUV := surf.Tex != nil
	nuv := len(uvs)
	for _, i := range ti {
		if i < 0 || i >= nuv {
			hasUV = false
			break
		}
	}

	var u0, v0, u1, v1, u2, v2 float64
	if hasUV {
		u0, v0 = uvs[ti[0]][0]*surf.UVScaleU, uvs[ti[0]][1]*surf.UVScaleV
		u1, v1 = uvs[ti[1]][0]*surf.UVScaleU, uvs[ti[1]][1]*surf.UVScaleV
		u2, v2 = uvs[ti[2]][0]*surf.UVScaleU, uvs[ti[2]][1]*surf.UVScaleV
	}

	// Clamped screen bounding box.
	w, h := fb.Width, fb.Height
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * w
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			var cr, cg, cb, ca uint8
			if hasUV {
				u := w0*u0 + w1*u1 + w2*u2
				v := w0*v0 + w1*v1 + w2*v2
				cr, cg, cb, ca = SampleTexture(surf.Tex, u, v)
			} else {
				cr, cg, cb, ca = surf.FallbackR, surf.FallbackG, surf.FallbackB, surf.FallbackA
			}

			// Skip transparent texels.
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			// sRGB decode, shade, specular add, sRGB encode.
			lr := srgbToLinear[cr]*sh.DiffR + sh.SpecR
			lg := srgbToLinear[cg]*sh.DiffG + sh.SpecG
			lb := srgbToLinear[cb]*sh.DiffB + sh.SpecB

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(math.Pow(clamp01(lr), invGamma) * 255)
			fb.Color[pxIdx+1] = clamp255(math.Pow(clamp01(lg), invGamma) * 255)
			fb.Color[pxIdx+2] = clamp255(math.Pow(clamp01(lb), invGamma) * 255)
			fb.Color[pxIdx+3] = ca
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
