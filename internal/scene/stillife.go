package scene

import "stillife-renderer/internal/mesh"

func v4(r, g, b, a float64) *[4]float64 {
	return &[4]float64{r, g, b, a}
}

// StillLife returns the built-in tabletop composition: a wooden table
// carrying a stone jug, a plate, a ceramic cup, and a basket with two
// pieces of bread. Warm directional key light plus one orange point fill.
func StillLife() Scene {
	return Scene{
		Name:       "still-life",
		Background: [3]uint8{26, 24, 22},
		Textures: []TextureRef{
			{Tag: "wood", File: "wood.jpg"},
			{Tag: "stone", File: "stone.jpg"},
			{Tag: "ceramic", File: "ceramic.jpg"},
			{Tag: "table", File: "table.jpg"},
			{Tag: "bread1", File: "bread1.jpg"},
			{Tag: "bread2", File: "bread2.jpg"},
			{Tag: "basket", File: "basket.jpg"},
		},
		Materials: []Material{
			// Shiny table so the key light reads as a reflection.
			{Tag: "polished", Diffuse: [3]float64{1, 1, 1}, Specular: [3]float64{0.8, 0.8, 0.8}, Shininess: 64},
			// Matte pottery for everything on the table.
			{Tag: "clay", Diffuse: [3]float64{1, 1, 1}, Specular: [3]float64{0.25, 0.25, 0.25}, Shininess: 16},
		},
		Lighting: Lights{
			Enabled: true,
			Directional: DirLight{
				Direction: [3]float64{-0.35, -1.0, -0.25},
				Ambient:   [3]float64{0.20, 0.18, 0.14},
				Diffuse:   [3]float64{0.90, 0.78, 0.62},
				Specular:  [3]float64{0.90, 0.90, 0.90},
				Active:    true,
			},
			Points: []PointLight{
				{
					Position: [3]float64{4.5, 6.5, 4.5},
					Ambient:  [3]float64{0.10, 0.08, 0.06},
					Diffuse:  [3]float64{0.85, 0.55, 0.30}, // warm orange fill
					Specular: [3]float64{0.60, 0.55, 0.50},
					Active:   true,
				},
				{Active: false},
				{Active: false},
				{Active: false},
				{Active: false},
			},
			SpotActive: false,
		},
		Objects: []Object{
			{
				Name:     "table",
				Mesh:     mesh.KindPlane,
				Scale:    [3]float64{20, 1, 15},
				Texture:  "table",
				UVScale:  [2]float64{4, 4},
				Material: "polished",
			},
			{
				Name:     "jug body",
				Mesh:     mesh.KindCylinder,
				Scale:    [3]float64{1.7, 4.0, 1.7},
				Texture:  "stone",
				Material: "clay",
			},
			{
				Name:     "jug upper body",
				Mesh:     mesh.KindCylinder,
				Scale:    [3]float64{1.0, 2.0, 1.7},
				Position: [3]float64{0, 3.5, 0},
				Texture:  "stone",
				Material: "clay",
			},
			{
				Name:        "jug lip",
				Mesh:        mesh.KindCone,
				Scale:       [3]float64{1.4, 2.0, 1.4},
				RotationDeg: [3]float64{180, 0, 0},
				Position:    [3]float64{0, 6.0, 0},
				Texture:     "stone",
				UVScale:     [2]float64{1, 0.8},
				Material:    "clay",
			},
			{
				Name:        "jug handle",
				Mesh:        mesh.KindTorus,
				Scale:       [3]float64{0.9, 1.6, 0.5},
				RotationDeg: [3]float64{0, 0, 90},
				Position:    [3]float64{1.8, 4.0, 0},
				Texture:     "stone",
				UVScale:     [2]float64{1.2, 1.2},
				Material:    "clay",
			},
			{
				Name:     "plate base",
				Mesh:     mesh.KindCylinder,
				Scale:    [3]float64{3.0, 0.10, 3.0},
				Position: [3]float64{2.2, 0.16, 5.2},
				Texture:  "wood",
				Material: "clay",
			},
			{
				Name:        "plate rim",
				Mesh:        mesh.KindTorusThin,
				Scale:       [3]float64{3.05, 3.0, 3.0},
				RotationDeg: [3]float64{90, 0, 0},
				Position:    [3]float64{2.2, 0.16, 5.2},
				Texture:     "wood",
				Material:    "clay",
			},
			{
				Name:        "cup body",
				Mesh:        mesh.KindTaperedCylinder,
				Caps:        &mesh.Caps{Top: true, Sides: true}, // open underside
				Scale:       [3]float64{1.15, 1.05, 1.15},
				RotationDeg: [3]float64{0, 0, 180},
				Position:    [3]float64{4.2, 1.10, -2.2},
				Texture:     "ceramic",
				UVScale:     [2]float64{2, 2},
				Material:    "clay",
			},
			{
				Name:        "cup rim",
				Mesh:        mesh.KindTorusThick,
				Scale:       [3]float64{0.96, 0.96, 0.96},
				RotationDeg: [3]float64{90, -50, 0},
				Position:    [3]float64{4.2, 0.95, -2.2},
				Texture:     "ceramic",
				UVScale:     [2]float64{2, 2},
				Material:    "clay",
			},
			{
				Name:     "basket body",
				Mesh:     mesh.KindCylinder,
				Caps:     &mesh.Caps{Bottom: true, Sides: true}, // open top
				Scale:    [3]float64{2.2, 1.05, 2.2},
				Position: [3]float64{-4.2, 0.10, 1.2},
				Texture:  "basket",
				UVScale:  [2]float64{2, 1},
				Material: "clay",
			},
			{
				Name:        "basket rim",
				Mesh:        mesh.KindTorusThick,
				Scale:       [3]float64{1.8, 1.8, 1.60},
				RotationDeg: [3]float64{90, -50, 0},
				Position:    [3]float64{-4.2, 1.15, 1.2},
				Texture:     "basket",
				UVScale:     [2]float64{2, 1},
				Material:    "clay",
			},
			{
				Name:        "bread slice",
				Mesh:        mesh.KindBox,
				Scale:       [3]float64{4.5, 0.40, 0.60},
				RotationDeg: [3]float64{180, -25, 25},
				Position:    [3]float64{-4.05, 1.25, 1.10},
				Texture:     "bread1",
				Material:    "clay",
			},
			{
				Name:        "bread slice 2",
				Mesh:        mesh.KindBox,
				Scale:       [3]float64{4.5, 0.55, 0.16},
				RotationDeg: [3]float64{-62, 20, 25},
				Position:    [3]float64{-4.30, 1.18, 1.30},
				Texture:     "bread2",
				Material:    "clay",
				Color:       v4(0.82, 0.68, 0.45, 1), // crust tone if the texture is missing
			},
		},
	}
}
