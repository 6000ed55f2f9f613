package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"text/tabwriter"
	"time"

	"sandtilt/internal/core"
	"sandtilt/internal/render"
	"sandtilt/internal/sand"
	_ "sandtilt/internal/scenes"
	"sandtilt/internal/stats"
)

func main() {
	d := sand.DefaultConfig()
	scene := flag.String("scene", d.Scene, "scene to load for every run")
	size := flag.Int("size", d.Size, "grid side length in cells")
	seed := flag.Int64("seed", d.Seed, "seed for randomized scenes")
	steps := flag.Int("steps", 200, "ticks to simulate per angle")
	anglesFlag := flag.String("angles", "-360:360:45", "angles as from:to:step or a comma separated list")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	csvPath := flag.String("csv", "", "write a summary CSV to this file")
	chartPath := flag.String("chart", "", "write a PNG chart of grains moved per tick")
	framesDir := flag.String("frames", "", "write rotated and flat PNG snapshots of each final board to this directory")
	cell := flag.Int("cell", 8, "cell size in pixels for -frames")
	flag.Parse()

	if _, ok := core.Scene(*scene); !ok {
		log.Fatalf("unknown scene %q", *scene)
	}
	angles, err := stats.ParseAngles(*anglesFlag)
	if err != nil {
		log.Fatalf("invalid -angles: %v", err)
	}

	base := sand.Config{Size: *size, Scene: *scene, Seed: *seed}
	fmt.Printf("Sweeping %d angles of %q (%d workers, %d steps)\n", len(angles), *scene, *workers, *steps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	start := time.Now()
	results, err := stats.Sweep(ctx, base, angles, *steps, *workers)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "angle\tfilled\tmoved\tsettled\t")
	for _, r := range results {
		settled := "-"
		if r.SettledAt >= 0 {
			settled = fmt.Sprint(r.SettledAt)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t\n", r.Angle, r.Filled, r.TotalMoved, settled)
	}
	tw.Flush()
	fmt.Printf("Completed in %s\n", time.Since(start).Round(time.Millisecond))

	if *csvPath != "" {
		if err := writeFile(*csvPath, func(f *os.File) error { return stats.WriteCSV(f, results) }); err != nil {
			log.Fatalf("csv: %v", err)
		}
	}
	if *chartPath != "" {
		if err := writeFile(*chartPath, func(f *os.File) error { return stats.RenderChart(f, results) }); err != nil {
			log.Fatalf("chart: %v", err)
		}
	}
	if *framesDir != "" {
		if err := writeFrames(*framesDir, results, *cell); err != nil {
			log.Fatalf("frames: %v", err)
		}
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func writeFrames(dir string, results []stats.Result, cell int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	pal := render.DefaultPalette()
	for _, r := range results {
		g := r.Final.Grid()
		view := render.FitViewport(g.Size(), cell)
		img := render.Rasterize(render.Commands(g, r.Angle, view, pal), view.W, view.H, pal)
		path := filepath.Join(dir, fmt.Sprintf("angle_%+04d.png", r.Angle))
		if err := writeFile(path, func(f *os.File) error { return png.Encode(f, img) }); err != nil {
			return err
		}
		flat := render.GridImage(g, pal, cell)
		path = filepath.Join(dir, fmt.Sprintf("angle_%+04d_flat.png", r.Angle))
		if err := writeFile(path, func(f *os.File) error { return png.Encode(f, flat) }); err != nil {
			return err
		}
	}
	return nil
}
