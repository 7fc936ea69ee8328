package shader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stillife-renderer/internal/material"
	"stillife-renderer/internal/mathutil"
	"stillife-renderer/internal/shader"
)

func litState() shader.State {
	s := shader.NewState()
	s.UseLighting = true
	s.Material = material.Material{
		Tag:       "test",
		Diffuse:   mathutil.Vec3{1, 1, 1},
		Specular:  mathutil.Vec3{1, 1, 1},
		Shininess: 32,
	}
	s.Lights.Directional = shader.DirectionalLight{
		Direction: mathutil.Vec3{0, -1, 0},
		Ambient:   mathutil.Vec3{0.1, 0.1, 0.1},
		Diffuse:   mathutil.Vec3{0.8, 0.8, 0.8},
		Specular:  mathutil.Vec3{0.5, 0.5, 0.5},
		Active:    true,
	}
	return s
}

func TestLightingDisabledIsUnlit(t *testing.T) {
	s := shader.NewState()
	fs := s.ShadeFace(mathutil.Vec3{0, 1, 0}, mathutil.Vec3{}, mathutil.Vec3{0, 5, 5})
	assert.Equal(t, mathutil.Vec3{1, 1, 1}, fs.Diffuse)
	assert.Equal(t, mathutil.Vec3{}, fs.Specular)
}

func TestInactiveLightsContributeNothing(t *testing.T) {
	s := litState()
	s.Lights.Directional.Active = false
	fs := s.ShadeFace(mathutil.Vec3{0, 1, 0}, mathutil.Vec3{}, mathutil.Vec3{0, 5, 5})
	assert.Equal(t, mathutil.Vec3{}, fs.Diffuse)
	assert.Equal(t, mathutil.Vec3{}, fs.Specular)
}

func TestDirectionalFacingVsGrazing(t *testing.T) {
	s := litState()

	up := s.ShadeFace(mathutil.Vec3{0, 1, 0}, mathutil.Vec3{}, mathutil.Vec3{0, 5, 0})
	side := s.ShadeFace(mathutil.Vec3{1, 0, 0}, mathutil.Vec3{}, mathutil.Vec3{0, 5, 0})

	assert.Greater(t, up.Diffuse[0], side.Diffuse[0],
		"a face turned toward the light is brighter than one edge-on")
	// The grazing face still receives ambient.
	assert.InDelta(t, 0.1, side.Diffuse[0], 1e-9)
}

func TestPointLightReachesFace(t *testing.T) {
	s := litState()
	s.Lights.Directional.Active = false
	s.Lights.Points[0] = shader.PointLight{
		Position: mathutil.Vec3{0, 10, 0},
		Diffuse:  mathutil.Vec3{1, 0.5, 0.25},
		Active:   true,
	}

	fs := s.ShadeFace(mathutil.Vec3{0, 1, 0}, mathutil.Vec3{}, mathutil.Vec3{0, 5, 5})
	assert.InDelta(t, 1.0, fs.Diffuse[0], 1e-9)
	assert.InDelta(t, 0.5, fs.Diffuse[1], 1e-9)
	assert.InDelta(t, 0.25, fs.Diffuse[2], 1e-9)
}

func TestMaterialModulatesLight(t *testing.T) {
	s := litState()
	s.Material.Diffuse = mathutil.Vec3{1, 0, 0}
	fs := s.ShadeFace(mathutil.Vec3{0, 1, 0}, mathutil.Vec3{}, mathutil.Vec3{0, 5, 0})
	assert.Greater(t, fs.Diffuse[0], 0.0)
	assert.Zero(t, fs.Diffuse[1])
	assert.Zero(t, fs.Diffuse[2])
}

func TestSetColorDisablesTexture(t *testing.T) {
	s := shader.NewState()
	s.SetTexture(3)
	assert.True(t, s.UseTexture)
	assert.Equal(t, 3, s.TextureSlot)

	s.SetColor(1, 0, 0, 1)
	assert.False(t, s.UseTexture)
	assert.Equal(t, -1, s.TextureSlot)
	assert.Equal(t, [4]float64{1, 0, 0, 1}, s.ObjectColor)
}

func TestSetTextureKeepsSentinelSlot(t *testing.T) {
	s := shader.NewState()
	s.SetTexture(-1)
	assert.True(t, s.UseTexture)
	assert.Equal(t, -1, s.TextureSlot)
}
