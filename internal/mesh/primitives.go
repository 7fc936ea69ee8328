package mesh

import "math"

// NewPlane builds a unit plane in XZ, spanning [-1,1] on both axes at y=0.
func NewPlane() *Mesh {
	return &Mesh{
		Verts: [][3]float64{
			{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1},
		},
		UVs: [][2]float64{
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
		},
		Tris: []Triangle{
			{VI: [3]int{0, 1, 2}, TI: [3]int{0, 1, 2}},
			{VI: [3]int{0, 2, 3}, TI: [3]int{0, 2, 3}},
		},
	}
}

// NewBox builds a unit cube centered at the origin with per-face UVs.
func NewBox() *Mesh {
	m := &Mesh{}
	h := 0.5
	// Each face: four corners counter-clockwise seen from outside.
	faces := [6][4][3]float64{
		{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},     // front (+Z)
		{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, // back (-Z)
		{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}},     // top (+Y)
		{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, // bottom (-Y)
		{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}},     // right (+X)
		{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, // left (-X)
	}
	uv := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		base := len(m.Verts)
		for i := 0; i < 4; i++ {
			m.Verts = append(m.Verts, f[i])
			m.UVs = append(m.UVs, uv[i])
		}
		m.Tris = append(m.Tris,
			Triangle{VI: [3]int{base, base + 1, base + 2}, TI: [3]int{base, base + 1, base + 2}},
			Triangle{VI: [3]int{base, base + 2, base + 3}, TI: [3]int{base, base + 2, base + 3}},
		)
	}
	return m
}

// NewCylinder builds a radius-1 cylinder from y=0 to y=1, so a scaled
// instance sits on its base. Caps selects side wall and end caps.
func NewCylinder(segments int, caps Caps) *Mesh {
	return newLathe(segments, 1, 1, caps)
}

// NewTaperedCylinder builds a cylinder narrowing from radius 1 at the base
// to radius 0.5 at the top.
func NewTaperedCylinder(segments int, caps Caps) *Mesh {
	return newLathe(segments, 1, 0.5, caps)
}

// newLathe builds a capped surface of revolution between a bottom ring of
// radius rBottom at y=0 and a top ring of radius rTop at y=1.
func newLathe(segments int, rBottom, rTop float64, caps Caps) *Mesh {
	m := &Mesh{}

	if caps.Sides {
		// Two rings with duplicated seam vertex for clean UV wrap.
		base := len(m.Verts)
		for i := 0; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			c, s := math.Cos(a), math.Sin(a)
			u := float64(i) / float64(segments)
			m.Verts = append(m.Verts, [3]float64{rBottom * c, 0, rBottom * s})
			m.UVs = append(m.UVs, [2]float64{u, 0})
			m.Verts = append(m.Verts, [3]float64{rTop * c, 1, rTop * s})
			m.UVs = append(m.UVs, [2]float64{u, 1})
		}
		for i := 0; i < segments; i++ {
			b0 := base + 2*i
			t0 := b0 + 1
			b1 := b0 + 2
			t1 := b0 + 3
			m.Tris = append(m.Tris,
				Triangle{VI: [3]int{b0, t0, t1}, TI: [3]int{b0, t0, t1}},
				Triangle{VI: [3]int{b0, t1, b1}, TI: [3]int{b0, t1, b1}},
			)
		}
	}
	if caps.Bottom {
		addDisc(m, 0, rBottom, segments)
	}
	if caps.Top {
		addDisc(m, 1, rTop, segments)
	}
	return m
}

// addDisc appends a triangle-fan disc at height y.
func addDisc(m *Mesh, y, radius float64, segments int) {
	center := len(m.Verts)
	m.Verts = append(m.Verts, [3]float64{0, y, 0})
	m.UVs = append(m.UVs, [2]float64{0.5, 0.5})
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		c, s := math.Cos(a), math.Sin(a)
		m.Verts = append(m.Verts, [3]float64{radius * c, y, radius * s})
		m.UVs = append(m.UVs, [2]float64{(c + 1) / 2, (s + 1) / 2})
	}
	for i := 0; i < segments; i++ {
		m.Tris = append(m.Tris, Triangle{
			VI: [3]int{center, center + 1 + i, center + 2 + i},
			TI: [3]int{center, center + 1 + i, center + 2 + i},
		})
	}
}

// NewCone builds a radius-1 cone with its base at y=0 and apex at y=1.
// caps.Bottom controls the base disc, caps.Sides the lateral surface;
// caps.Top has no meaning for a cone.
func NewCone(segments int, caps Caps) *Mesh {
	m := &Mesh{}

	if caps.Sides {
		base := len(m.Verts)
		for i := 0; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			m.Verts = append(m.Verts, [3]float64{math.Cos(a), 0, math.Sin(a)})
			m.UVs = append(m.UVs, [2]float64{float64(i) / float64(segments), 0})
		}
		// One apex vertex per segment so the UV seam stays straight.
		apexBase := len(m.Verts)
		for i := 0; i < segments; i++ {
			m.Verts = append(m.Verts, [3]float64{0, 1, 0})
			m.UVs = append(m.UVs, [2]float64{(float64(i) + 0.5) / float64(segments), 1})
		}
		for i := 0; i < segments; i++ {
			m.Tris = append(m.Tris, Triangle{
				VI: [3]int{base + i, apexBase + i, base + i + 1},
				TI: [3]int{base + i, apexBase + i, base + i + 1},
			})
		}
	}
	if caps.Bottom {
		addDisc(m, 0, 1, segments)
	}
	return m
}

// NewTorus builds a torus in the XY plane (hole facing +Z) with main
// radius 1 and the given tube radius. Scene transforms rotate it flat
// where needed.
func NewTorus(segments, rings int, tube float64) *Mesh {
	m := &Mesh{}
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		ct, st := math.Cos(theta), math.Sin(theta)
		for j := 0; j <= rings; j++ {
			phi := 2 * math.Pi * float64(j) / float64(rings)
			cp, sp := math.Cos(phi), math.Sin(phi)
			r := 1 + tube*cp
			m.Verts = append(m.Verts, [3]float64{r * ct, r * st, tube * sp})
			m.UVs = append(m.UVs, [2]float64{
				float64(i) / float64(segments),
				float64(j) / float64(rings),
			})
		}
	}
	stride := rings + 1
	for i := 0; i < segments; i++ {
		for j := 0; j < rings; j++ {
			a := i*stride + j
			b := a + stride
			m.Tris = append(m.Tris,
				Triangle{VI: [3]int{a, b, b + 1}, TI: [3]int{a, b, b + 1}},
				Triangle{VI: [3]int{a, b + 1, a + 1}, TI: [3]int{a, b + 1, a + 1}},
			)
		}
	}
	return m
}
