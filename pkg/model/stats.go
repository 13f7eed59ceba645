package model

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the distribution of every attribution value in a
// snapshot. Shown in the status bar and in export summary blocks so a reader
// can judge whether the [0,1] normalization bounds are sane for the data.
type Stats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
	Q25    float64
	Q75    float64
}

// Summary computes Stats over all input and output attribution values.
// Returns the zero Stats when the snapshot carries no values at all.
func Summary(d *Dataset) Stats {
	var values []float64
	for _, s := range d.Inputs {
		for _, rows := range s.Attributions {
			for _, vec := range rows {
				values = append(values, vec...)
			}
		}
	}
	if d.Outputs != nil {
		for _, row := range d.Outputs.Attributions {
			for _, vec := range row {
				values = append(values, vec...)
			}
		}
	}
	if len(values) == 0 {
		return Stats{}
	}

	sort.Float64s(values)
	mean, std := stat.MeanStdDev(values, nil)
	return Stats{
		Count:  len(values),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, values, nil),
		Q25:    stat.Quantile(0.25, stat.Empirical, values, nil),
		Q75:    stat.Quantile(0.75, stat.Empirical, values, nil),
	}
}
