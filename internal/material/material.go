// Package material stores named surface materials for the scene shader.
// The registry is populated once at startup and read-only afterwards.
package material

import (
	"fmt"

	"stillife-renderer/internal/mathutil"
)

// Material holds the lighting response of a surface.
type Material struct {
	Tag       string
	Diffuse   mathutil.Vec3
	Specular  mathutil.Vec3
	Shininess float64
}

// Default is used when a draw call names no material or an unknown tag:
// full diffuse, no highlight.
func Default() Material {
	return Material{
		Tag:       "default",
		Diffuse:   mathutil.Vec3{1, 1, 1},
		Specular:  mathutil.Vec3{0, 0, 0},
		Shininess: 1,
	}
}

// Registry maps tags to materials with enforced uniqueness.
type Registry struct {
	byTag map[string]Material
}

func NewRegistry() *Registry {
	return &Registry{byTag: make(map[string]Material)}
}

// Add registers m under its tag. Duplicate tags are rejected so a later
// definition can never silently shadow an earlier one.
func (r *Registry) Add(m Material) error {
	if m.Tag == "" {
		return fmt.Errorf("material: empty tag")
	}
	if _, dup := r.byTag[m.Tag]; dup {
		return fmt.Errorf("material: duplicate tag %q", m.Tag)
	}
	r.byTag[m.Tag] = m
	return nil
}

// Find returns the material registered under tag. The boolean is the
// single source of truth for hit/miss; on a miss the zero Material is
// returned and callers fall back to Default.
func (r *Registry) Find(tag string) (Material, bool) {
	m, ok := r.byTag[tag]
	return m, ok
}

// Len returns the number of registered materials.
func (r *Registry) Len() int {
	return len(r.byTag)
}
