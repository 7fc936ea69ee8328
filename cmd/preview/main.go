package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"stillife-renderer/internal/camera"
	"stillife-renderer/internal/mathutil"
	"stillife-renderer/internal/scene"
)

func main() {
	sceneFile := flag.String("scene", "", "Scene JSON file (default: built-in still life)")
	textureDir := flag.String("textures", "textures", "Directory containing texture images")
	size := flag.Int("size", 480, "Preview resolution in pixels")

	flag.Parse()

	sc := scene.StillLife()
	if *sceneFile != "" {
		var err error
		sc, err = scene.Load(*sceneFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}

	r := scene.NewRenderer()
	r.Prepare(sc, *textureDir)

	g := newGame(r, sc, *size)
	ebiten.SetWindowTitle("stillife preview: " + sc.Name)
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// game orbits the camera around the scene and re-renders on movement.
// Frames come from the software rasterizer, so a frame is only drawn
// when the view actually changes.
type game struct {
	r    *scene.Renderer
	sc   scene.Scene
	size int

	// Orbit state around the default camera target.
	target mathutil.Vec3
	radius float64
	height float64
	angle  float64

	frame *image.NRGBA
	img   *ebiten.Image
	dirty bool
}

func newGame(r *scene.Renderer, sc scene.Scene, size int) *game {
	def := camera.Default()
	dx := def.Position[0] - def.Target[0]
	dz := def.Position[2] - def.Target[2]
	return &game{
		r:      r,
		sc:     sc,
		size:   size,
		target: def.Target,
		radius: math.Hypot(dx, dz),
		height: def.Position[1],
		angle:  math.Atan2(dx, dz),
		dirty:  true,
	}
}

func (g *game) Update() error {
	const angleStep = 0.06
	const heightStep = 0.25

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.angle -= angleStep
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.angle += angleStep
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.height += heightStep
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		if g.height > 1 {
			g.height -= heightStep
			g.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.dirty {
		g.r.Camera.Position = mathutil.Vec3{
			g.target[0] + g.radius*math.Sin(g.angle),
			g.height,
			g.target[2] + g.radius*math.Cos(g.angle),
		}
		frame, err := g.r.Render(g.sc, g.size, 1)
		if err != nil {
			return err
		}
		g.frame = frame
		g.dirty = false
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	if g.img == nil {
		g.img = ebiten.NewImage(g.size, g.size)
	}
	g.img.WritePixels(g.frame.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}
