package models

// PathSeries is one path's metric time series, length MaxTimeSteps+1
// (tick 0 included).
type PathSeries struct {
	Path   int       `json:"path"`
	Series []float64 `json:"series"`
}

// RunResult collects every path's series into a tick-major matrix:
// Matrix[tick][path].
type RunResult struct {
	Ticks  int         `json:"ticks"` // rows, MaxTimeSteps+1
	Paths  int         `json:"paths"` // columns
	Matrix [][]float64 `json:"matrix"`
}

func NewRunResult(ticks, paths int) *RunResult {
	matrix := make([][]float64, ticks)
	for t := range matrix {
		matrix[t] = make([]float64, paths)
	}
	return &RunResult{Ticks: ticks, Paths: paths, Matrix: matrix}
}

// SetSeries writes one path's series into its column. Columns are disjoint,
// so concurrent writers for different paths need no locking.
func (r *RunResult) SetSeries(ps PathSeries) {
	for t, v := range ps.Series {
		r.Matrix[t][ps.Path] = v
	}
}

// PathColumn copies one path's series back out of the matrix.
func (r *RunResult) PathColumn(path int) []float64 {
	col := make([]float64, r.Ticks)
	for t := 0; t < r.Ticks; t++ {
		col[t] = r.Matrix[t][path]
	}
	return col
}

// SummaryRow is one tick of the cross-path summary table.
type SummaryRow struct {
	Tick   int     `json:"tick"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P10    float64 `json:"p10"`
	P90    float64 `json:"p90"`
}

// SummaryTable is the reporting collaborator's output, one row per tick.
type SummaryTable struct {
	Rows []SummaryRow `json:"rows"`
}
