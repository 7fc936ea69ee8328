// Package mesh generates the primitive geometry the scene draws: plane,
// box, cylinder, cone, tapered cylinder and torus variants. Generated
// meshes are cached by a Library so repeated draws share vertices.
package mesh

import "fmt"

// Triangle holds index triples into the vertex and texcoord arrays.
type Triangle struct {
	VI [3]int
	TI [3]int
}

// Mesh holds generated geometry for one primitive.
type Mesh struct {
	Verts [][3]float64
	UVs   [][2]float64
	Tris  []Triangle
}

// Kind names a primitive shape. The torus variants differ only in tube
// radius: the thin one suits plate rims, the thick one cup and basket rims.
type Kind string

const (
	KindPlane           Kind = "plane"
	KindBox             Kind = "box"
	KindCylinder        Kind = "cylinder"
	KindCone            Kind = "cone"
	KindTaperedCylinder Kind = "tapered_cylinder"
	KindTorus           Kind = "torus"
	KindTorusThin       Kind = "torus_thin"
	KindTorusThick      Kind = "torus_thick"
)

// Tube radii for the torus variants.
const (
	torusTube      = 0.25
	torusTubeThin  = 0.12
	torusTubeThick = 0.22
)

// Caps controls which parts of a capped primitive are generated for a
// draw call. The zero value draws nothing; use AllCaps for the common case.
type Caps struct {
	Top    bool `json:"top"`
	Bottom bool `json:"bottom"`
	Sides  bool `json:"sides"`
}

// AllCaps draws every part of the primitive.
func AllCaps() Caps {
	return Caps{Top: true, Bottom: true, Sides: true}
}

// Tessellation density. 32 radial segments keeps silhouettes round at the
// output sizes the renderer targets.
const (
	radialSegments = 32
	tubeSegments   = 16
)

type cacheKey struct {
	kind Kind
	caps Caps
}

// Library lazily builds and caches primitive meshes: each shape is
// generated once and drawn many times.
type Library struct {
	cache map[cacheKey]*Mesh
}

func NewLibrary() *Library {
	return &Library{cache: make(map[cacheKey]*Mesh)}
}

// Get returns the cached mesh for kind and caps, generating it on first use.
func (l *Library) Get(kind Kind, caps Caps) (*Mesh, error) {
	k := cacheKey{kind, caps}
	if m, ok := l.cache[k]; ok {
		return m, nil
	}

	var m *Mesh
	switch kind {
	case KindPlane:
		m = NewPlane()
	case KindBox:
		m = NewBox()
	case KindCylinder:
		m = NewCylinder(radialSegments, caps)
	case KindCone:
		m = NewCone(radialSegments, caps)
	case KindTaperedCylinder:
		m = NewTaperedCylinder(radialSegments, caps)
	case KindTorus:
		m = NewTorus(radialSegments, tubeSegments, torusTube)
	case KindTorusThin:
		m = NewTorus(radialSegments, tubeSegments, torusTubeThin)
	case KindTorusThick:
		m = NewTorus(radialSegments, tubeSegments, torusTubeThick)
	default:
		return nil, fmt.Errorf("mesh: unknown kind %q", kind)
	}

	l.cache[k] = m
	return m, nil
}
