// Package stats runs headless sand simulations and summarises how a scene
// settles under different gravity angles.
package stats

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"sandtilt/internal/sand"
)

// Sample is one tick of a run.
type Sample struct {
	Tick   int
	Filled int
	Moved  int
}

// Result summarises one scenario.
type Result struct {
	Angle      int
	Steps      int
	Filled     int
	TotalMoved int
	// SettledAt is the first tick in which no grain moved, or -1.
	SettledAt int
	History   []Sample
	// Final is a snapshot of the simulation after the last tick.
	Final *sand.Sim
}

// Run simulates cfg for steps ticks and records every tick.
func Run(cfg sand.Config, steps int) Result {
	sim := sand.NewWithConfig(cfg)
	res := Result{
		Angle:     sim.Angle(),
		Steps:     steps,
		SettledAt: -1,
		History:   make([]Sample, 0, steps),
	}
	for i := 0; i < steps; i++ {
		sim.Step()
		c := sim.Counts()
		res.History = append(res.History, Sample{Tick: sim.Ticks(), Filled: c.Filled, Moved: c.Moved})
		res.TotalMoved += c.Moved
		if c.Moved == 0 && res.SettledAt < 0 {
			res.SettledAt = sim.Ticks()
		}
	}
	res.Filled = sim.Counts().Filled
	res.Final = sim
	return res
}

// Sweep runs base once per angle across workers goroutines. Results come
// back in the order of angles. Each worker owns its simulations.
func Sweep(ctx context.Context, base sand.Config, angles []int, steps, workers int) ([]Result, error) {
	if len(angles) == 0 {
		return nil, errors.New("stats: no angles to sweep")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	type job struct {
		index int
		angle int
	}
	jobs := make(chan job)
	results := make([]Result, len(angles))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				cfg := base
				cfg.Angle = j.angle
				results[j.index] = Run(cfg, steps)
			}
		}()
	}

	var err error
feed:
	for i, a := range angles {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case jobs <- job{index: i, angle: a}:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, fmt.Errorf("stats: sweep interrupted: %w", err)
	}
	return results, nil
}

// Angles returns from, from+step, ... up to and including to.
func Angles(from, to, step int) ([]int, error) {
	if step <= 0 {
		return nil, fmt.Errorf("stats: angle step must be positive, got %d", step)
	}
	if from > to {
		return nil, fmt.Errorf("stats: angle range %d..%d is empty", from, to)
	}
	var out []int
	for a := from; a <= to; a += step {
		out = append(out, sand.ClampAngle(a))
	}
	return out, nil
}

// ParseAngles accepts either "from:to:step" or a comma separated list.
func ParseAngles(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("stats: empty angle list")
	}
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("stats: angle range %q must be from:to:step", s)
		}
		var v [3]int
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("stats: angle range %q: %w", s, err)
			}
			v[i] = n
		}
		return Angles(v[0], v[1], v[2])
	}
	var out []int
	for _, p := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("stats: angle list %q: %w", s, err)
		}
		out = append(out, sand.ClampAngle(n))
	}
	return out, nil
}
