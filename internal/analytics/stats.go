package analytics

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Thin wrappers around montanaflynn/stats that define every aggregate over
// an empty slice as 0 instead of an error, per the record-store contract.

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	v, _ := stats.Mean(xs)
	return v
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	v, _ := stats.Median(xs)
	return v
}

func minOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	v, _ := stats.Min(xs)
	return v
}

func maxOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	v, _ := stats.Max(xs)
	return v
}

func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	v, _ := stats.StandardDeviationSample(xs)
	return v
}

func percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	v, _ := stats.Percentile(xs, p)
	return v
}

func sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}

// pct renders a share as the fixed one-decimal percentage string used
// throughout the reports, e.g. "30.0%".
func pct(part, total float64) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", part/total*100)
}
