//
// timing.go
//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package sweep

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records the sweep phases.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample ends a phase with the label and extra columns.
func (t *Timing) Sample(label string, cols ...string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Cols:  cols,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Total returns the duration from start to the end of the last
// sample.
func (t *Timing) Total() time.Duration {
	if len(t.Samples) == 0 {
		return 0
	}
	return t.Samples[len(t.Samples)-1].End.Sub(t.Start)
}

// Print prints the phase table. Sub-samples are cumulative worker
// times and their percentages are relative to the sum of the
// sub-samples.
func (t *Timing) Print(out io.Writer, style tabulate.Style) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(style)
	tab.Header("Phase").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Count").SetAlign(tabulate.MR)

	total := t.Total()
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.Duration()
		row.Column(duration.String())
		row.Column(percent(duration, total))
		for _, col := range sample.Cols {
			row.Column(col)
		}

		var sum time.Duration
		for _, sub := range sample.Samples {
			sum += sub.Duration()
		}
		for idx, sub := range sample.Samples {
			row := tab.Row()

			prefix := "├╴"
			if idx+1 >= len(sample.Samples) {
				prefix = "╰╴"
			}
			row.Column(prefix + sub.Label).SetFormat(tabulate.FmtItalic)
			row.Column(sub.Duration().String()).SetFormat(tabulate.FmtItalic)
			row.Column(percent(sub.Duration(), sum)).
				SetFormat(tabulate.FmtItalic)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)

	tab.Print(out)
}

func percent(d, total time.Duration) string {
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(d)/float64(total)*100)
}

// Sample contains information about one sweep phase.
type Sample struct {
	Label   string
	Start   time.Time
	End     time.Time
	Abs     time.Duration
	Cols    []string
	Samples []*Sample
}

// Duration returns the sample duration.
func (s *Sample) Duration() time.Duration {
	if s.Abs > 0 {
		return s.Abs
	}
	return s.End.Sub(s.Start)
}

// AbsSubSample adds a sub-sample with an absolute duration.
func (s *Sample) AbsSubSample(label string, duration time.Duration) {
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Abs:   duration,
	})
}
