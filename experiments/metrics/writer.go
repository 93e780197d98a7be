package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SearchRecord is one search of one problem within an experiment run.
type SearchRecord struct {
	Run     string
	Problem int
	Result  string
	SearchMetric
}

// ProblemRecord describes one generated problem within an experiment run.
type ProblemRecord struct {
	Run      string
	Problem  int
	Vertices int
	Depth    int
	Agree    bool // Whether every algorithm chose the same action
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp>-<suffix> to hold an
// experiment's records. The suffix keeps runs started within the same second
// apart.
func NewWriter(root, name string) (*Writer, error) {
	parent := filepath.Join(root, name)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir, err := os.MkdirTemp(parent, timestamp+"-")
	if err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	header := []string{"run", "problem", "algorithm", "cutoff", "result", "visits", "prunes", "cutoffs", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Run,
			strconv.Itoa(record.Problem),
			record.Algorithm,
			strconv.Itoa(record.Cutoff),
			record.Result,
			strconv.Itoa(record.Visits),
			strconv.Itoa(record.Prunes),
			strconv.Itoa(record.Cutoffs),
			record.Duration.String(),
		})
	}
	if err := w.write("search_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write search records: %w", err)
	}
	return nil
}

func (w *Writer) WriteProblemRecords(records []ProblemRecord) error {
	header := []string{"run", "problem", "vertices", "depth", "agree"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Run,
			strconv.Itoa(record.Problem),
			strconv.Itoa(record.Vertices),
			strconv.Itoa(record.Depth),
			strconv.FormatBool(record.Agree),
		})
	}
	if err := w.write("problem_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write problem records: %w", err)
	}
	return nil
}

func (w *Writer) write(filename string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, filename))
	if err != nil {
		return err
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
