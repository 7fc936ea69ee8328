// Package camera projects world-space vertices to screen coordinates:
// look-at view transform, perspective divide, viewport mapping.
package camera

import (
	"math"

	"stillife-renderer/internal/mathutil"
)

// Camera describes the viewpoint for one render.
type Camera struct {
	Position mathutil.Vec3
	Target   mathutil.Vec3
	Up       mathutil.Vec3
	FOVDeg   float64
	Near     float64
}

// Default frames the tabletop composition from slightly above and in front,
// matching the viewpoint the scene was authored against.
func Default() Camera {
	return Camera{
		Position: mathutil.Vec3{0, 7.5, 17},
		Target:   mathutil.Vec3{0, 2.8, 0},
		Up:       mathutil.Vec3{0, 1, 0},
		FOVDeg:   45,
		Near:     0.1,
	}
}

// ViewMatrix returns the world→camera transform. The camera looks down
// its local -Z axis.
func (c Camera) ViewMatrix() mathutil.Mat4 {
	fwd := c.Target.Sub(c.Position).Normalize()
	right := fwd.Cross(c.Up).Normalize()
	up := right.Cross(fwd)

	r := mathutil.Mat3{
		right[0], right[1], right[2],
		up[0], up[1], up[2],
		-fwd[0], -fwd[1], -fwd[2],
	}
	t := r.MulVec3(c.Position).Scale(-1)
	return mathutil.FromMat3Translation(r, t)
}

// Project transforms world-space vertices into screen space for a
// width×height viewport. Returned slices hold pixel x, pixel y and a
// depth value where greater means closer, matching the z-buffer
// convention of the rasterizer. Vertices behind the near plane project
// far off-screen so their triangles clip out at the bounding-box stage.
func (c Camera) Project(verts []mathutil.Vec3, width, height int) (px, py, pz []float64) {
	view := c.ViewMatrix()
	n := len(verts)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)

	f := 1 / math.Tan(mathutil.Deg2Rad(c.FOVDeg)/2)
	aspect := float64(width) / float64(height)
	halfW := float64(width) / 2
	halfH := float64(height) / 2

	for i, v := range verts {
		e := view.MulPoint(v)
		depth := -e[2]
		if depth < c.Near {
			// Behind the eye: push it outside the viewport.
			px[i] = -1e9
			py[i] = -1e9
			pz[i] = math.Inf(-1)
			continue
		}
		ndcX := e[0] * f / (aspect * depth)
		ndcY := e[1] * f / depth
		px[i] = (ndcX + 1) * halfW
		py[i] = (1 - ndcY) * halfH
		pz[i] = -depth
	}
	return px, py, pz
}
