// Package prplot renders precision-recall curves to image files using
// gonum/plot. It implements squadeval.PlotSink.
package prplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	squadeval "github.com/jamesainslie/go-squadeval"
)

// Renderer draws step-style precision-recall plots. The zero value is
// ready to use; every call builds a fresh plot, so calls are
// independent and safe to run concurrently.
type Renderer struct{}

// EmitPlot renders points as a post-step line with a shaded area under
// the curve and saves the image to path, creating parent directories
// as needed. The image format follows the path extension.
func (Renderer) EmitPlot(points []squadeval.PRPoint, path, title string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Recall"
	p.Y.Label.Text = "Precision"
	p.X.Min, p.X.Max = 0, 1.05
	p.Y.Min, p.Y.Max = 0, 1.05

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.Recall
		xys[i].Y = pt.Precision
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("building line: %w", err)
	}
	line.StepStyle = plotter.PostStep
	line.Color = color.RGBA{B: 255, A: 255}
	line.FillColor = color.RGBA{B: 255, A: 51}
	p.Add(line)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating plot dir: %w", err)
		}
	}
	if err := p.Save(5*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
