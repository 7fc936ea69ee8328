// Package scene holds the declarative description of a composition and
// replays it through the shader state into the rasterizer. A scene is
// plain data (mesh kinds, transforms, texture and material tags) so
// compositions can live in JSON files as well as in code.
package scene

import "stillife-renderer/internal/mesh"

// DirLight mirrors the shader's directional light block.
type DirLight struct {
	Direction [3]float64 `json:"direction"`
	Ambient   [3]float64 `json:"ambient"`
	Diffuse   [3]float64 `json:"diffuse"`
	Specular  [3]float64 `json:"specular"`
	Active    bool       `json:"active"`
}

// PointLight mirrors one entry of the shader's point-light array.
type PointLight struct {
	Position [3]float64 `json:"position"`
	Ambient  [3]float64 `json:"ambient"`
	Diffuse  [3]float64 `json:"diffuse"`
	Specular [3]float64 `json:"specular"`
	Active   bool       `json:"active"`
}

// Lights is the scene-wide lighting setup, applied once before replay.
// Point lights beyond the shader's fixed array are ignored.
type Lights struct {
	Enabled     bool         `json:"enabled"`
	Directional DirLight     `json:"directional"`
	Points      []PointLight `json:"points"`
	SpotActive  bool         `json:"spot_active"`
}

// Material is a named (diffuse, specular, shininess) triple registered
// before replay.
type Material struct {
	Tag       string     `json:"tag"`
	Diffuse   [3]float64 `json:"diffuse"`
	Specular  [3]float64 `json:"specular"`
	Shininess float64    `json:"shininess"`
}

// TextureRef names an image file to load under a tag.
type TextureRef struct {
	Tag  string `json:"tag"`
	File string `json:"file"`
}

// Object is one draw record: mesh selection, transform, surface.
// Execution order is draw order; depth resolution is left entirely to
// the z-buffer.
type Object struct {
	Name        string      `json:"name"`
	Mesh        mesh.Kind   `json:"mesh"`
	Caps        *mesh.Caps  `json:"caps,omitempty"` // nil = draw all parts
	Scale       [3]float64  `json:"scale"`
	RotationDeg [3]float64  `json:"rotation_deg"` // applied X, then Y, then Z
	Position    [3]float64  `json:"position"`
	Texture     string      `json:"texture,omitempty"` // tag; empty = solid color
	UVScale     [2]float64  `json:"uv_scale"`          // zero value = (1,1)
	Color       *[4]float64 `json:"color,omitempty"`   // fallback / untextured color
	Material    string      `json:"material,omitempty"`
	Unlit       bool        `json:"unlit,omitempty"` // opt out of scene lighting
}

// Scene is a complete composition.
type Scene struct {
	Name       string       `json:"name"`
	Background [3]uint8     `json:"background"`
	Textures   []TextureRef `json:"textures,omitempty"`
	Materials  []Material   `json:"materials,omitempty"`
	Lighting   Lights       `json:"lighting"`
	Objects    []Object     `json:"objects"`
}
