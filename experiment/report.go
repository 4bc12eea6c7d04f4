package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Report is the tabular outcome of one experiment run.
type Report struct {
	ID        uuid.UUID
	Name      string
	StartedAt time.Time
	Columns   []string
	Rows      [][]string
}

// newReport stamps a fresh report with a run ID.
func newReport(name string, columns []string) *Report {
	return &Report{
		ID:        uuid.New(),
		Name:      name,
		StartedAt: time.Now(),
		Columns:   columns,
	}
}

// append adds one row; values are stringified in column order.
func (r *Report) append(values ...string) {
	r.Rows = append(r.Rows, values)
}

// WriteCSV emits the report as a plain CSV table, header first.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.Columns); err != nil {
		return fmt.Errorf("experiment: writing csv header: %w", err)
	}
	for _, row := range r.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("experiment: writing csv row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteMarkdown emits the report as a GitHub-style table with a small
// header block naming the run.
func (r *Report) WriteMarkdown(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Name)
	fmt.Fprintf(&b, "Run `%s`, started %s.\n\n", r.ID, r.StartedAt.Format(time.RFC3339))

	fmt.Fprintf(&b, "| %s |\n", strings.Join(r.Columns, " | "))
	sep := make([]string, len(r.Columns))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintf(&b, "| %s |\n", strings.Join(sep, " | "))
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "| %s |\n", strings.Join(row, " | "))
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// Save writes both renderings into dir as <name>-<id>.csv and .md,
// creating the directory if needed, and returns the CSV path.
func (r *Report) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("experiment: creating output dir: %w", err)
	}
	base := fmt.Sprintf("%s-%s", r.Name, r.ID)

	csvPath := filepath.Join(dir, base+".csv")
	cf, err := os.Create(csvPath)
	if err != nil {
		return "", fmt.Errorf("experiment: creating %s: %w", csvPath, err)
	}
	defer cf.Close()
	if err := r.WriteCSV(cf); err != nil {
		return "", err
	}

	mdPath := filepath.Join(dir, base+".md")
	mf, err := os.Create(mdPath)
	if err != nil {
		return "", fmt.Errorf("experiment: creating %s: %w", mdPath, err)
	}
	defer mf.Close()
	if err := r.WriteMarkdown(mf); err != nil {
		return "", err
	}

	return csvPath, nil
}
