package sweep

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoSamples is returned when there is nothing to plot.
var ErrNoSamples = errors.New("sweep: no samples to plot")

// Fprint writes the report summaries as an aligned table.
func Fprint(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "metric\tmean\tstddev\tmin\tmedian\tp90\tmax\t")
	rows := []struct {
		name string
		s    Summary
	}{
		{"ticks", r.Ticks},
		{"reseeds", r.Reseeds},
		{"dead ends", r.DeadEnds},
		{"leaves", r.Leaves},
		{"solution", r.Solution},
	}
	for _, row := range rows {
		s := row.s
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.0f\t%.1f\t%.1f\t%.0f\t\n",
			row.name, s.Mean, s.StdDev, s.Min, s.Median, s.P90, s.Max)
	}
	return tw.Flush()
}

// WriteHistogram saves a histogram of ticks-to-completion as an image. The
// format follows the file extension (png, svg, pdf).
func WriteHistogram(path string, r Report) error {
	if len(r.Samples) == 0 {
		return ErrNoSamples
	}
	vals := make(plotter.Values, len(r.Samples))
	for i, s := range r.Samples {
		vals[i] = float64(s.Ticks)
	}

	bins := len(vals)
	if bins > 20 {
		bins = 20
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Ticks to completion (%d runs)", len(vals))
	p.X.Label.Text = "ticks"
	p.Y.Label.Text = "runs"

	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save histogram: %w", err)
	}
	return nil
}
