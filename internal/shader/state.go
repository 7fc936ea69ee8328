// Package shader holds the per-draw uniform state: model matrix,
// color/texture selection, UV scale, material fields and the lighting
// block. The scene replay writes State, the rasterizer reads it.
package shader

import (
	"math"

	"stillife-renderer/internal/material"
	"stillife-renderer/internal/mathutil"
)

// MaxPointLights is the size of the fixed point-light array.
const MaxPointLights = 5

// DirectionalLight is a light at infinity shining along Direction.
type DirectionalLight struct {
	Direction mathutil.Vec3
	Ambient   mathutil.Vec3
	Diffuse   mathutil.Vec3
	Specular  mathutil.Vec3
	Active    bool
}

// PointLight radiates from Position without attenuation.
type PointLight struct {
	Position mathutil.Vec3
	Ambient  mathutil.Vec3
	Diffuse  mathutil.Vec3
	Specular mathutil.Vec3
	Active   bool
}

// Lighting is the scene-wide light block, set once before object replay.
type Lighting struct {
	Directional DirectionalLight
	Points      [MaxPointLights]PointLight
	SpotActive  bool
}

// State carries every per-draw uniform. SetColor and SetTexture are
// mutually exclusive: setting one disables the other.
type State struct {
	Model       mathutil.Mat4
	ObjectColor [4]float64
	UseTexture  bool
	TextureSlot int
	UVScale     [2]float64
	Material    material.Material
	UseLighting bool
	Lights      Lighting
}

// NewState returns a draw state with identity transform, opaque white
// color, unit UV scale and the default material.
func NewState() State {
	return State{
		Model:       mathutil.Mat4Identity(),
		ObjectColor: [4]float64{1, 1, 1, 1},
		TextureSlot: -1,
		UVScale:     [2]float64{1, 1},
		Material:    material.Default(),
	}
}

// SetColor selects a solid color and disables texturing for the next draw.
func (s *State) SetColor(r, g, b, a float64) {
	s.UseTexture = false
	s.TextureSlot = -1
	s.ObjectColor = [4]float64{r, g, b, a}
}

// SetTexture selects the sampler slot for the next draw. A sentinel
// (negative) slot still sets UseTexture: an unresolved tag binds an
// invalid slot and the draw falls back to the flat object color
// instead of crashing.
func (s *State) SetTexture(slot int) {
	s.UseTexture = true
	s.TextureSlot = slot
}

// FaceShade is the per-face lighting result: a multiplier applied to the
// surface color and an additive specular term.
type FaceShade struct {
	Diffuse  mathutil.Vec3
	Specular mathutil.Vec3
}

// unlit leaves the surface color untouched.
var unlit = FaceShade{Diffuse: mathutil.Vec3{1, 1, 1}}

// ShadeFace evaluates the Phong model for one face: normal and point in
// world space, viewer at eye. Flat shading: the rasterizer applies the
// result across the whole triangle.
func (s *State) ShadeFace(normal, point, eye mathutil.Vec3) FaceShade {
	if !s.UseLighting {
		return unlit
	}

	viewDir := eye.Sub(point).Normalize()
	var diff, spec mathutil.Vec3

	if d := s.Lights.Directional; d.Active {
		l := d.Direction.Scale(-1).Normalize()
		diff = diff.Add(d.Ambient)
		diff = diff.Add(d.Diffuse.Scale(lambert(normal, l)))
		spec = spec.Add(d.Specular.Scale(phong(normal, l, viewDir, s.Material.Shininess)))
	}
	for i := range s.Lights.Points {
		p := &s.Lights.Points[i]
		if !p.Active {
			continue
		}
		l := p.Position.Sub(point).Normalize()
		diff = diff.Add(p.Ambient)
		diff = diff.Add(p.Diffuse.Scale(lambert(normal, l)))
		spec = spec.Add(p.Specular.Scale(phong(normal, l, viewDir, s.Material.Shininess)))
	}

	return FaceShade{
		Diffuse:  diff.Mul(s.Material.Diffuse),
		Specular: spec.Mul(s.Material.Specular),
	}
}

// lambert is the clamped cosine term. Normals are treated as double-sided
// so thin unclosed shapes light from both faces.
func lambert(n, l mathutil.Vec3) float64 {
	d := n.Dot(l)
	if d < 0 {
		d = -d
	}
	return d
}

// phong is the Blinn specular term for the half vector between l and v.
func phong(n, l, v mathutil.Vec3, shininess float64) float64 {
	h := l.Add(v).Normalize()
	d := n.Dot(h)
	if d < 0 {
		d = -d
	}
	if shininess < 1 {
		shininess = 1
	}
	return math.Pow(d, shininess)
}
