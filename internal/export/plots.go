package export

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func saveLinePlot(outDir, filename, title, xlabel, ylabel string, xs, ys []float64) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return fmt.Errorf("plot data invalid")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2.0)
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p.Save(8*vg.Inch, 6*vg.Inch, filepath.Join(outDir, filename))
}

// SaveFlightPlots writes the standard figure set for a run: each state
// component against time, plus the y-vs-x trajectory. States are rows of the
// results table aligned with times.
func SaveFlightPlots(outDir string, times []float64, states [][]float64) error {
	if len(states) == 0 || len(times) != len(states) {
		return fmt.Errorf("no data to plot")
	}

	labels := []struct{ file, title, unit string }{
		{"x_position.png", "Horizontal Position x(t)", "x (m)"},
		{"y_position.png", "Height y(t)", "y (m)"},
		{"theta.png", "Orientation theta(t)", "theta (rad)"},
		{"vx.png", "Horizontal Velocity vx(t)", "vx (m/s)"},
		{"vy.png", "Vertical Velocity vy(t)", "vy (m/s)"},
		{"omega.png", "Angular Velocity omega(t)", "omega (rad/s)"},
	}

	numVars := len(states[0])
	col := func(idx int) []float64 {
		data := make([]float64, len(states))
		for i := range states {
			if idx < len(states[i]) {
				data[i] = states[i][idx]
			}
		}
		return data
	}

	for idx := 0; idx < numVars; idx++ {
		// Named figures only when the full axe state layout is present.
		file := fmt.Sprintf("x%d.png", idx)
		title := fmt.Sprintf("x%d vs time", idx)
		unit := fmt.Sprintf("x%d", idx)
		if numVars == 6 {
			file, title, unit = labels[idx].file, labels[idx].title, labels[idx].unit
		}
		if err := saveLinePlot(outDir, file, title, "time (s)", unit, times, col(idx)); err != nil {
			return err
		}
	}

	if numVars >= 2 {
		if err := saveLinePlot(outDir, "trajectory.png", "COG Trajectory", "x (m)", "y (m)", col(0), col(1)); err != nil {
			return err
		}
	}

	return nil
}
