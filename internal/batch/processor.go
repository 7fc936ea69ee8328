// Package batch renders a set of scene files concurrently with a worker
// pool and records a manifest of the outputs.
package batch

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"stillife-renderer/internal/imgout"
	"stillife-renderer/internal/postprocess"
	"stillife-renderer/internal/scene"
)

// Config holds the shared settings for a batch run.
type Config struct {
	TextureDir  string
	OutputDir   string
	RenderSize  int
	Supersample int
	Format      string
	Workers     int
}

// Result holds the outcome of rendering one scene file.
type Result struct {
	Scene   string
	Output  string
	Objects int
	Success bool
	Error   string
}

// Run renders all scene files using a worker pool. Each worker builds its
// own registries, so nothing is shared mutably across goroutines.
func Run(cfg Config, scenePaths []string) []Result {
	total := len(scenePaths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processScene(cfg, scenePaths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range scenePaths {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processScene(cfg Config, path string) Result {
	sc, err := scene.Load(path)
	if err != nil {
		return Result{Scene: path, Error: err.Error()}
	}

	r := scene.NewRenderer()
	r.Prepare(sc, cfg.TextureDir)

	img, err := r.Render(sc, cfg.RenderSize, cfg.Supersample)
	if err != nil {
		return Result{Scene: path, Objects: len(sc.Objects), Error: err.Error()}
	}
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(cfg.OutputDir, base+imgout.Ext(cfg.Format))
	if err := imgout.Write(outPath, img, cfg.Format); err != nil {
		return Result{Scene: path, Objects: len(sc.Objects), Error: err.Error()}
	}

	return Result{
		Scene:   path,
		Output:  outPath,
		Objects: len(sc.Objects),
		Success: true,
	}
}
