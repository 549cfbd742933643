package simulator

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chrisdamba/marketsim/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

// OutputDestination receives the finished run: the raw metric matrix, the
// cross-path summary table and the first path's layout snapshot.
type OutputDestination interface {
	WriteMetrics(result *models.RunResult) error
	WriteSummary(table *models.SummaryTable) error
	WriteSnapshot(snapshot *models.PathSnapshot) error
	Close() error
}

// DetermineOutputDestination picks the sink for the configured format.
func DetermineOutputDestination(config *models.Config) (OutputDestination, error) {
	switch config.OutputFormat {
	case models.OutputFormatCSV:
		return NewCSVOutput(config.OutputPath), nil
	case models.OutputFormatJSON:
		return NewJSONOutput(config.OutputPath), nil
	case models.OutputFormatParquet:
		return NewParquetOutput(config.OutputPath), nil
	case models.OutputFormatConsole, "":
		return &ConsoleOutput{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", config.OutputFormat)
	}
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMetrics(result *models.RunResult) error {
	log.Printf("Collected %d paths x %d ticks", result.Paths, result.Ticks)
	final := result.Matrix[result.Ticks-1]
	unfinished := 0
	for _, v := range final {
		if v > 0 {
			unfinished++
		}
	}
	log.Printf("%d of %d paths ended with items still outstanding", unfinished, result.Paths)
	return nil
}

func (c *ConsoleOutput) WriteSummary(table *models.SummaryTable) error {
	fmt.Println("tick\tmean\tmedian\tp10\tp90")
	for _, row := range table.Rows {
		fmt.Printf("%d\t%.3f\t%.3f\t%.3f\t%.3f\n", row.Tick, row.Mean, row.Median, row.P10, row.P90)
	}
	return nil
}

func (c *ConsoleOutput) WriteSnapshot(snapshot *models.PathSnapshot) error {
	for _, st := range snapshot.Stalls {
		log.Printf("stall %d at x=%.1f stocks %s", st.Index, st.Position.X, strings.Join(st.Inventory, ", "))
	}
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

type CSVOutput struct {
	basePath string
	files    []*os.File
}

func NewCSVOutput(basePath string) *CSVOutput {
	return &CSVOutput{basePath: basePath}
}

func (c *CSVOutput) create(name string) (*csv.Writer, error) {
	if err := os.MkdirAll(c.basePath, os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.Create(filepath.Join(c.basePath, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", name, err)
	}
	c.files = append(c.files, file)
	return csv.NewWriter(file), nil
}

func (c *CSVOutput) WriteMetrics(result *models.RunResult) error {
	w, err := c.create("metrics.csv")
	if err != nil {
		return err
	}
	header := make([]string, 0, result.Paths+1)
	header = append(header, "tick")
	for p := 0; p < result.Paths; p++ {
		header = append(header, fmt.Sprintf("path_%d", p))
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for t, row := range result.Matrix {
		record := make([]string, 0, len(row)+1)
		record = append(record, strconv.Itoa(t))
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (c *CSVOutput) WriteSummary(table *models.SummaryTable) error {
	w, err := c.create("summary.csv")
	if err != nil {
		return err
	}
	if err := w.Write([]string{"tick", "mean", "median", "p10", "p90"}); err != nil {
		return err
	}
	for _, row := range table.Rows {
		record := []string{
			strconv.Itoa(row.Tick),
			strconv.FormatFloat(row.Mean, 'f', -1, 64),
			strconv.FormatFloat(row.Median, 'f', -1, 64),
			strconv.FormatFloat(row.P10, 'f', -1, 64),
			strconv.FormatFloat(row.P90, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (c *CSVOutput) WriteSnapshot(snapshot *models.PathSnapshot) error {
	stalls, err := c.create("stalls.csv")
	if err != nil {
		return err
	}
	if err := stalls.Write([]string{"index", "x", "inventory"}); err != nil {
		return err
	}
	for _, st := range snapshot.Stalls {
		record := []string{
			strconv.Itoa(st.Index),
			strconv.FormatFloat(st.Position.X, 'f', -1, 64),
			strings.Join(st.Inventory, "|"),
		}
		if err := stalls.Write(record); err != nil {
			return err
		}
	}
	stalls.Flush()
	if err := stalls.Error(); err != nil {
		return err
	}

	shoppers, err := c.create("shoppers.csv")
	if err != nil {
		return err
	}
	if err := shoppers.Write([]string{"name", "x", "y", "shopping_list"}); err != nil {
		return err
	}
	for _, sh := range snapshot.Shoppers {
		record := []string{
			sh.Name,
			strconv.FormatFloat(sh.Position.X, 'f', -1, 64),
			strconv.FormatFloat(sh.Position.Y, 'f', -1, 64),
			strings.Join(sh.ShoppingList, "|"),
		}
		if err := shoppers.Write(record); err != nil {
			return err
		}
	}
	shoppers.Flush()
	return shoppers.Error()
}

func (c *CSVOutput) Close() error {
	for _, file := range c.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

type JSONOutput struct {
	basePath string
}

func NewJSONOutput(basePath string) *JSONOutput {
	return &JSONOutput{basePath: basePath}
}

func (j *JSONOutput) writeDocument(name string, v interface{}) error {
	if err := os.MkdirAll(j.basePath, os.ModePerm); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(j.basePath, name), data, 0o644)
}

func (j *JSONOutput) WriteMetrics(result *models.RunResult) error {
	return j.writeDocument("metrics.json", result)
}

func (j *JSONOutput) WriteSummary(table *models.SummaryTable) error {
	return j.writeDocument("summary.json", table)
}

func (j *JSONOutput) WriteSnapshot(snapshot *models.PathSnapshot) error {
	return j.writeDocument("snapshot.json", snapshot)
}

func (j *JSONOutput) Close() error { return nil }

// MetricRow is the parquet record layout for one matrix cell.
type MetricRow struct {
	Tick           int32   `parquet:"name=tick,type=INT32"`
	Path           int32   `parquet:"name=path,type=INT32"`
	ItemsRemaining float64 `parquet:"name=itemsRemaining,type=DOUBLE"`
}

type ParquetOutput struct {
	basePath string
	console  ConsoleOutput
}

func NewParquetOutput(basePath string) *ParquetOutput {
	return &ParquetOutput{basePath: basePath}
}

func (p *ParquetOutput) WriteMetrics(result *models.RunResult) error {
	if err := os.MkdirAll(p.basePath, os.ModePerm); err != nil {
		return err
	}
	fw, err := local.NewLocalFileWriter(filepath.Join(p.basePath, "metrics.parquet"))
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	pw, err := writer.NewParquetWriter(fw, new(MetricRow), 4)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	for t, row := range result.Matrix {
		for path, v := range row {
			record := MetricRow{Tick: int32(t), Path: int32(path), ItemsRemaining: v}
			if err := pw.Write(record); err != nil {
				return fmt.Errorf("failed to write metric row: %w", err)
			}
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return fw.Close()
}

// Summary and snapshot are small enough that the parquet sink falls back to
// console for them; only the matrix needs a columnar file.
func (p *ParquetOutput) WriteSummary(table *models.SummaryTable) error {
	return p.console.WriteSummary(table)
}

func (p *ParquetOutput) WriteSnapshot(snapshot *models.PathSnapshot) error {
	return p.console.WriteSnapshot(snapshot)
}

func (p *ParquetOutput) Close() error { return nil }
