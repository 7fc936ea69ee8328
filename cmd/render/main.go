package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stillife-renderer/internal/batch"
	"stillife-renderer/internal/config"
	"stillife-renderer/internal/imgout"
	"stillife-renderer/internal/postprocess"
	"stillife-renderer/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene JSON file (default: built-in still life)")
	sceneDir := flag.String("scenes", "", "Directory of scene JSON files to batch render")
	textureDir := flag.String("textures", "", "Directory containing texture images")
	outputPath := flag.String("output", "", "Output image path (single scene) or directory (batch)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 800)")
	format := flag.String("format", "", "Output format: webp or png (default: webp)")
	workers := flag.Int("workers", 0, "Worker goroutines for batch mode (default: NumCPU)")
	dumpScene := flag.String("dump-scene", "", "Write the built-in still life as JSON to this path and exit")

	flag.Parse()

	if *dumpScene != "" {
		if err := scene.Save(*dumpScene, scene.StillLife()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing scene: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scene written to %s\n", *dumpScene)
		return
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		TextureDir: *textureDir,
		SceneFile:  *sceneFile,
		OutputPath: *outputPath,
		Size:       *size,
		Format:     *format,
		Workers:    *workers,
	})

	if *sceneDir != "" {
		runBatch(cfg, *sceneDir)
		return
	}
	runSingle(cfg)
}

func runSingle(cfg config.Config) {
	sc := scene.StillLife()
	if cfg.SceneFile != "" {
		var err error
		sc, err = scene.Load(cfg.SceneFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Scene: %s (%d objects)\n", sc.Name, len(sc.Objects))
	fmt.Printf("Output: %s (%dpx, %dx supersampled)\n", cfg.OutputPath, cfg.RenderSize, cfg.Supersample)

	r := scene.NewRenderer()
	r.Prepare(sc, cfg.TextureDir)
	fmt.Printf("Textures: %d bound\n", r.Textures.Len())

	start := time.Now()
	img, err := r.Render(sc, cfg.RenderSize, cfg.Supersample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	if err := imgout.Write(cfg.OutputPath, img, cfg.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Done in %.2fs\n", time.Since(start).Seconds())
}

func runBatch(cfg config.Config, sceneDir string) {
	paths, err := filepath.Glob(filepath.Join(sceneDir, "*.json"))
	if err != nil || len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "No scene files in %s\n", sceneDir)
		os.Exit(1)
	}

	outDir := cfg.OutputPath
	if filepath.Ext(outDir) != "" {
		outDir = filepath.Dir(outDir)
	}

	fmt.Printf("Scenes: %d, Workers: %d\n", len(paths), cfg.Workers)
	fmt.Printf("Output: %s\n", outDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batch.Config{
		TextureDir:  cfg.TextureDir,
		OutputDir:   outDir,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Format:      cfg.Format,
		Workers:     cfg.Workers,
	}, paths)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			fmt.Printf("  %s: %s\n", r.Scene, r.Error)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(paths))

	manifestPath := filepath.Join(outDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
