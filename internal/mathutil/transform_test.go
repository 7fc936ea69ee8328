package mathutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stillife-renderer/internal/mathutil"
)

func vecNear(t *testing.T, want, got mathutil.Vec3, tol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], tol, "component %d", i)
	}
}

func TestComposeIdentity(t *testing.T) {
	m := mathutil.Compose(mathutil.Vec3{1, 1, 1}, 0, 0, 0, mathutil.Vec3{})
	require.True(t, m.IsIdentity())
}

func TestComposeTranslationOnly(t *testing.T) {
	m := mathutil.Compose(mathutil.Vec3{1, 1, 1}, 0, 0, 0, mathutil.Vec3{2, -3, 4})
	vecNear(t, mathutil.Vec3{2, -3, 4}, m.MulPoint(mathutil.Vec3{}), 1e-12)
}

func TestComposeRotationOrder(t *testing.T) {
	// X then Y then Z: a point on +Z rotated 90° about X lands on -Y,
	// then 90° about Y leaves -Y fixed, then 90° about Z moves -Y to +X.
	m := mathutil.Compose(mathutil.Vec3{1, 1, 1}, 90, 90, 90, mathutil.Vec3{})
	vecNear(t, mathutil.Vec3{1, 0, 0}, m.MulPoint(mathutil.Vec3{0, 0, 1}), 1e-9)
}

func TestComposeScaleBeforeRotation(t *testing.T) {
	// Scale is applied in object space: scaling Y then rotating 90° about X
	// must differ from rotating first. Compose bakes scale-first.
	v := mathutil.Vec3{0, 1, 0}

	scaleFirst := mathutil.Compose(mathutil.Vec3{1, 3, 1}, 90, 0, 0, mathutil.Vec3{})
	got := scaleFirst.MulPoint(v)
	vecNear(t, mathutil.Vec3{0, 0, 3}, got, 1e-9)

	// Hand-built rotate-then-scale for the same parameters.
	rot := mathutil.FromMat3Translation(mathutil.RotX(mathutil.Deg2Rad(90)), mathutil.Vec3{})
	scl := mathutil.FromMat3Translation(mathutil.Mat3Diag(1, 3, 1), mathutil.Vec3{})
	swapped := mathutil.Mat4Mul(scl, rot).MulPoint(v)
	vecNear(t, mathutil.Vec3{0, 0, 1}, swapped, 1e-9)

	assert.Greater(t, got.Sub(swapped).Len(), 1.0, "order swap must change the result")
}

func TestComposeMatchesFactorProduct(t *testing.T) {
	scale := mathutil.Vec3{2, 0.5, 3}
	pos := mathutil.Vec3{1, 2, 3}
	rx, ry, rz := 30.0, -45.0, 120.0

	m := mathutil.Compose(scale, rx, ry, rz, pos)

	t4 := mathutil.FromMat3Translation(mathutil.Mat3Identity(), pos)
	rz4 := mathutil.FromMat3Translation(mathutil.RotZ(mathutil.Deg2Rad(rz)), mathutil.Vec3{})
	ry4 := mathutil.FromMat3Translation(mathutil.RotY(mathutil.Deg2Rad(ry)), mathutil.Vec3{})
	rx4 := mathutil.FromMat3Translation(mathutil.RotX(mathutil.Deg2Rad(rx)), mathutil.Vec3{})
	s4 := mathutil.FromMat3Translation(mathutil.Mat3Diag(scale[0], scale[1], scale[2]), mathutil.Vec3{})
	want := mathutil.Mat4Mul(t4, mathutil.Mat4Mul(rz4, mathutil.Mat4Mul(ry4, mathutil.Mat4Mul(rx4, s4))))

	for i := 0; i < 16; i++ {
		assert.InDelta(t, want[i], m[i], 1e-12, "element %d", i)
	}
}

func TestDeg2Rad(t *testing.T) {
	assert.InDelta(t, math.Pi, mathutil.Deg2Rad(180), 1e-15)
	assert.InDelta(t, -math.Pi/2, mathutil.Deg2Rad(-90), 1e-15)
}

func TestMulDirIgnoresTranslation(t *testing.T) {
	m := mathutil.Compose(mathutil.Vec3{1, 1, 1}, 0, 0, 0, mathutil.Vec3{10, 10, 10})
	vecNear(t, mathutil.Vec3{0, 1, 0}, m.MulDir(mathutil.Vec3{0, 1, 0}), 1e-12)
}
