// Package report is the cross-path summarization collaborator. It consumes
// only the finished RunResult and never reaches back into the engine.
package report

import (
	"math"
	"sort"

	"github.com/chrisdamba/marketsim/internal/models"
)

// Summarize reduces the [tick][path] matrix to one row per tick with the
// mean, median and 10th/90th percentile of the metric across paths.
func Summarize(result *models.RunResult) *models.SummaryTable {
	table := &models.SummaryTable{Rows: make([]models.SummaryRow, result.Ticks)}
	scratch := make([]float64, result.Paths)
	for t, row := range result.Matrix {
		copy(scratch, row)
		sort.Float64s(scratch)
		table.Rows[t] = models.SummaryRow{
			Tick:   t,
			Mean:   mean(row),
			Median: percentile(scratch, 50),
			P10:    percentile(scratch, 10),
			P90:    percentile(scratch, 90),
		}
	}
	return table
}

func mean(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// percentile uses the nearest-rank method on an already sorted slice.
func percentile(sorted []float64, p float64) float64 {
	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
