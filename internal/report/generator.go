// Package report produces the conversion ledger: one line per rewritten cell.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/currency-csv/internal/fileutils"
	"fjacquet/currency-csv/internal/logging"
	"fjacquet/currency-csv/internal/pipeline"

	"github.com/gocarina/gocsv"
)

// Entry is one ledger line.
type Entry struct {
	RunID       string `csv:"run_id" json:"-"`
	Row         int    `csv:"row" json:"row"`
	Source      string `csv:"source" json:"-"`
	Destination string `csv:"destination" json:"-"`
	Multiplier  string `csv:"multiplier" json:"-"`
	Original    string `csv:"original" json:"original"`
	Converted   string `csv:"converted" json:"converted"`
}

// Ledger is the audit trail of one successful run.
type Ledger struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Multiplier  string    `json:"multiplier"`
	Entries     []Entry   `json:"entries"`
}

// NewLedger builds the ledger of a serialized pipeline result.
func NewLedger(res *pipeline.Result, now time.Time) (*Ledger, error) {
	if res == nil || res.State != pipeline.StateSerialized {
		return nil, fmt.Errorf("cannot build a ledger from an unfinished run")
	}
	l := &Ledger{
		RunID:       res.RunID,
		GeneratedAt: now.UTC(),
		Source:      string(res.Source.Code),
		Destination: string(res.Destination.Code),
		Multiplier:  res.Multiplier.StringFixed(2),
		Entries:     make([]Entry, 0, len(res.Changes)),
	}
	for _, c := range res.Changes {
		l.Entries = append(l.Entries, Entry{
			RunID:       l.RunID,
			Row:         c.Row,
			Source:      l.Source,
			Destination: l.Destination,
			Multiplier:  l.Multiplier,
			Original:    c.Original,
			Converted:   c.Converted,
		})
	}
	return l, nil
}

// ReportGenerator renders ledgers as CSV or JSON.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	return &ReportGenerator{
		logger: logging.OrDiscard(logger).WithField(logging.FieldComponent, "ReportGenerator"),
	}
}

// GenerateReport renders the ledger in the given format (csv or json).
func (g *ReportGenerator) GenerateReport(ledger *Ledger, format string) ([]byte, error) {
	switch format {
	case "csv":
		return g.generateCSVReport(ledger)
	case "json":
		return g.generateJSONReport(ledger)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteReport renders the ledger next to the converted file and returns its path.
func (g *ReportGenerator) WriteReport(ledger *Ledger, dir, format string) (string, error) {
	data, err := g.GenerateReport(ledger, format)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("ledger-%s-%s.%s", ledger.Source, ledger.Destination, format))
	if err := fileutils.WriteFileAtomic(path, data, 0644); err != nil {
		return "", err
	}
	g.logger.Info("Ledger written",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldRunID, ledger.RunID),
		logging.F(logging.FieldCount, len(ledger.Entries)))
	return path, nil
}

func (g *ReportGenerator) generateCSVReport(ledger *Ledger) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := gocsv.MarshalCSV(ledger.Entries, gocsv.NewSafeCSVWriter(w)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV ledger")
		return nil, fmt.Errorf("failed to marshal CSV ledger: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) generateJSONReport(ledger *Ledger) ([]byte, error) {
	out, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON ledger")
		return nil, fmt.Errorf("failed to marshal JSON ledger: %w", err)
	}
	return out, nil
}
