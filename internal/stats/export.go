package stats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var summaryHeader = []string{"angle", "steps", "filled", "moved", "settled_at"}

// WriteCSV writes one summary row per result.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("stats: write csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Angle),
			strconv.Itoa(r.Steps),
			strconv.Itoa(r.Filled),
			strconv.Itoa(r.TotalMoved),
			strconv.Itoa(r.SettledAt),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("stats: write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("stats: flush csv: %w", err)
	}
	return nil
}

var seriesColors = []drawing.Color{
	{R: 230, G: 25, B: 75, A: 255},
	{R: 60, G: 180, B: 75, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
	{R: 0, G: 130, B: 200, A: 255},
	{R: 145, G: 30, B: 180, A: 255},
	{R: 70, G: 240, B: 240, A: 255},
	{R: 240, G: 50, B: 230, A: 255},
	{R: 128, G: 128, B: 0, A: 255},
}

// RenderChart plots grains moved per tick, one line per angle, as a PNG.
func RenderChart(w io.Writer, results []Result) error {
	if len(results) == 0 {
		return errors.New("stats: nothing to chart")
	}
	maxY := 1.0
	var series []chart.Series
	for i, r := range results {
		if len(r.History) < 2 {
			return fmt.Errorf("stats: angle %d has %d samples, need at least 2", r.Angle, len(r.History))
		}
		xs := make([]float64, len(r.History))
		ys := make([]float64, len(r.History))
		for j, s := range r.History {
			xs[j] = float64(s.Tick)
			ys[j] = float64(s.Moved)
			maxY = max(maxY, ys[j])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("%d°", r.Angle),
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: seriesColors[i%len(seriesColors)], StrokeWidth: 2.0},
		})
	}

	graph := chart.Chart{
		Width:  960,
		Height: 480,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "tick",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "grains moved",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("stats: render chart: %w", err)
	}
	return nil
}
