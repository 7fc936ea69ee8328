package camera_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stillife-renderer/internal/camera"
	"stillife-renderer/internal/mathutil"
)

func testCam() camera.Camera {
	return camera.Camera{
		Position: mathutil.Vec3{0, 0, 10},
		Target:   mathutil.Vec3{0, 0, 0},
		Up:       mathutil.Vec3{0, 1, 0},
		FOVDeg:   90,
		Near:     0.1,
	}
}

func TestLookedAtPointProjectsToCenter(t *testing.T) {
	px, py, _ := testCam().Project([]mathutil.Vec3{{0, 0, 0}}, 200, 200)
	assert.InDelta(t, 100, px[0], 1e-9)
	assert.InDelta(t, 100, py[0], 1e-9)
}

func TestCloserPointHasGreaterDepth(t *testing.T) {
	_, _, pz := testCam().Project([]mathutil.Vec3{{0, 0, 0}, {0, 0, 5}}, 200, 200)
	assert.Greater(t, pz[1], pz[0], "nearer vertex wins the depth test")
}

func TestRightAndUpDirections(t *testing.T) {
	px, py, _ := testCam().Project([]mathutil.Vec3{{1, 0, 0}, {0, 1, 0}}, 200, 200)
	assert.Greater(t, px[0], 100.0, "+X maps right of center")
	assert.Less(t, py[1], 100.0, "+Y maps above center (screen y grows downward)")
}

func TestBehindCameraClips(t *testing.T) {
	px, _, pz := testCam().Project([]mathutil.Vec3{{0, 0, 20}}, 200, 200)
	assert.Less(t, px[0], -1e6)
	assert.True(t, math.IsInf(pz[0], -1))
}

func TestViewMatrixMovesEyeToOrigin(t *testing.T) {
	cam := camera.Default()
	e := cam.ViewMatrix().MulPoint(cam.Position)
	require.InDelta(t, 0, e.Len(), 1e-9)
}

func TestFOVControlsFraming(t *testing.T) {
	wide := testCam()
	narrow := testCam()
	narrow.FOVDeg = 30

	pw, _, _ := wide.Project([]mathutil.Vec3{{2, 0, 0}}, 200, 200)
	pn, _, _ := narrow.Project([]mathutil.Vec3{{2, 0, 0}}, 200, 200)
	assert.Greater(t, pn[0], pw[0], "narrow FOV magnifies off-center points")
}
