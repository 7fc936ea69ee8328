package scene

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"stillife-renderer/internal/camera"
	"stillife-renderer/internal/material"
	"stillife-renderer/internal/mathutil"
	"stillife-renderer/internal/mesh"
	"stillife-renderer/internal/raster"
	"stillife-renderer/internal/shader"
	"stillife-renderer/internal/texture"
)

// Renderer owns the registries and replays scenes into images.
type Renderer struct {
	Textures  *texture.Registry
	Materials *material.Registry
	Meshes    *mesh.Library
	Camera    camera.Camera
}

func NewRenderer() *Renderer {
	return &Renderer{
		Textures:  texture.NewRegistry(),
		Materials: material.NewRegistry(),
		Meshes:    mesh.NewLibrary(),
		Camera:    camera.Default(),
	}
}

// Prepare loads the scene's textures from textureDir and registers its
// materials, then binds the texture slots. A failed texture load is
// logged and absorbed: setup continues and later draws that reference
// the tag fall back to their flat color.
func (r *Renderer) Prepare(sc Scene, textureDir string) {
	for _, tr := range sc.Textures {
		path := tr.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(textureDir, tr.File)
		}
		if err := r.Textures.Load(path, tr.Tag); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	r.Textures.BindAll()

	for _, m := range sc.Materials {
		err := r.Materials.Add(material.Material{
			Tag:       m.Tag,
			Diffuse:   mathutil.Vec3(m.Diffuse),
			Specular:  mathutil.Vec3(m.Specular),
			Shininess: m.Shininess,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
}

// lightingState maps the scene's light block into the shader.
func lightingState(l Lights) shader.Lighting {
	var out shader.Lighting
	out.Directional = shader.DirectionalLight{
		Direction: mathutil.Vec3(l.Directional.Direction),
		Ambient:   mathutil.Vec3(l.Directional.Ambient),
		Diffuse:   mathutil.Vec3(l.Directional.Diffuse),
		Specular:  mathutil.Vec3(l.Directional.Specular),
		Active:    l.Directional.Active,
	}
	for i, p := range l.Points {
		if i >= shader.MaxPointLights {
			break
		}
		out.Points[i] = shader.PointLight{
			Position: mathutil.Vec3(p.Position),
			Ambient:  mathutil.Vec3(p.Ambient),
			Diffuse:  mathutil.Vec3(p.Diffuse),
			Specular: mathutil.Vec3(p.Specular),
			Active:   p.Active,
		}
	}
	out.SpotActive = l.SpotActive
	return out
}

// Render replays the scene at size×size, supersampled by the given
// factor. Objects draw in record order; visibility is resolved by the
// z-buffer alone.
func (r *Renderer) Render(sc Scene, size, supersample int) (*image.NRGBA, error) {
	if supersample < 1 {
		supersample = 1
	}
	rs := size * supersample

	fb := raster.NewFrameBuffer(rs, rs)
	fb.Fill(sc.Background[0], sc.Background[1], sc.Background[2])

	lights := lightingState(sc.Lighting)

	for i := range sc.Objects {
		if err := r.drawObject(fb, &sc.Objects[i], sc.Lighting.Enabled, lights, rs); err != nil {
			return nil, fmt.Errorf("scene: object %q: %w", sc.Objects[i].Name, err)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, rs, rs))
	copy(img.Pix, fb.Color)
	return img, nil
}

func (r *Renderer) drawObject(fb *raster.FrameBuffer, obj *Object, lit bool, lights shader.Lighting, rs int) error {
	caps := mesh.AllCaps()
	if obj.Caps != nil {
		caps = *obj.Caps
	}
	m, err := r.Meshes.Get(obj.Mesh, caps)
	if err != nil {
		return err
	}

	// Per-draw uniform state.
	st := shader.NewState()
	st.Model = mathutil.Compose(
		mathutil.Vec3(obj.Scale),
		obj.RotationDeg[0], obj.RotationDeg[1], obj.RotationDeg[2],
		mathutil.Vec3(obj.Position),
	)
	st.UseLighting = lit && !obj.Unlit
	st.Lights = lights
	st.UVScale = obj.UVScale
	if st.UVScale == ([2]float64{}) {
		st.UVScale = [2]float64{1, 1}
	}
	if obj.Color != nil {
		st.SetColor(obj.Color[0], obj.Color[1], obj.Color[2], obj.Color[3])
	}
	if obj.Texture != "" {
		// An unknown tag binds the sentinel slot: the draw proceeds and
		// falls back to the flat color, visibly wrong but never fatal.
		st.SetTexture(r.Textures.FindSlot(obj.Texture))
	}
	if obj.Material != "" {
		if mat, ok := r.Materials.Find(obj.Material); ok {
			st.Material = mat
		}
	}

	// Object space → world space.
	world := make([]mathutil.Vec3, len(m.Verts))
	for i, v := range m.Verts {
		world[i] = st.Model.MulPoint(mathutil.Vec3(v))
	}
	px, py, pz := r.Camera.Project(world, rs, rs)

	var tex *image.NRGBA
	if st.UseTexture {
		tex = r.Textures.Bound(st.TextureSlot)
	}
	surf := raster.Surface{
		Tex:       tex,
		UVScaleU:  st.UVScale[0],
		UVScaleV:  st.UVScale[1],
		FallbackR: colorByte(st.ObjectColor[0]),
		FallbackG: colorByte(st.ObjectColor[1]),
		FallbackB: colorByte(st.ObjectColor[2]),
		FallbackA: colorByte(st.ObjectColor[3]),
	}

	for _, tri := range m.Tris {
		a := world[tri.VI[0]]
		b := world[tri.VI[1]]
		c := world[tri.VI[2]]
		normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
		centroid := a.Add(b).Add(c).Scale(1.0 / 3.0)

		fs := st.ShadeFace(normal, centroid, r.Camera.Position)
		sh := raster.Shade{
			DiffR: fs.Diffuse[0], DiffG: fs.Diffuse[1], DiffB: fs.Diffuse[2],
			SpecR: fs.Specular[0], SpecG: fs.Specular[1], SpecB: fs.Specular[2],
		}
		raster.DrawTriangle(fb, px, py, pz, m.UVs, tri.VI, tri.TI, &surf, &sh)
	}
	return nil
}

func colorByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
