package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/currency-csv/internal/logging"
	"fjacquet/currency-csv/internal/pipeline"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func convertedResult(t *testing.T) *pipeline.Result {
	t.Helper()
	res, err := pipeline.New(nil).Run("Name|Price\nApple|$10.00\nBanana|$20.00\n", pipeline.Request{
		Field: 1, Destination: "EUR", Multiplier: decimal.RequireFromString("0.85"),
	})
	require.NoError(t, err)
	return res
}

func TestNewLedger(t *testing.T) {
	res := convertedResult(t)
	ledger, err := NewLedger(res, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, res.RunID, ledger.RunID)
	assert.Equal(t, "USD", ledger.Source)
	assert.Equal(t, "EUR", ledger.Destination)
	assert.Equal(t, "0.85", ledger.Multiplier)
	require.Len(t, ledger.Entries, 2)
	assert.Equal(t, Entry{
		RunID: res.RunID, Row: 2, Source: "USD", Destination: "EUR",
		Multiplier: "0.85", Original: "$20.00", Converted: "17,00 €",
	}, ledger.Entries[1])
}

func TestNewLedger_RejectsFailedRun(t *testing.T) {
	res, err := pipeline.New(nil).Run("Name|Price\n", pipeline.Request{Field: 1, Destination: "EUR", Multiplier: decimal.NewFromInt(1)})
	require.Error(t, err)

	_, err = NewLedger(res, fixedNow)
	assert.Error(t, err)
	_, err = NewLedger(nil, fixedNow)
	assert.Error(t, err)
}

func TestReportGenerator_GenerateReport_CSV(t *testing.T) {
	generator := NewReportGenerator(logging.NewMockLogger())
	ledger, err := NewLedger(convertedResult(t), fixedNow)
	require.NoError(t, err)

	out, err := generator.GenerateReport(ledger, "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "run_id,row,source,destination,multiplier,original,converted", lines[0])
	assert.Contains(t, lines[1], `,1,USD,EUR,0.85,$10.00,"8,50 €"`)

	var entries []Entry
	require.NoError(t, gocsv.UnmarshalBytes(out, &entries))
	assert.Equal(t, ledger.Entries, entries)
}

func TestReportGenerator_GenerateReport_JSON(t *testing.T) {
	generator := NewReportGenerator(nil)
	ledger, err := NewLedger(convertedResult(t), fixedNow)
	require.NoError(t, err)

	out, err := generator.GenerateReport(ledger, "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, ledger.RunID, decoded["run_id"])
	assert.Equal(t, "2024-03-01T12:00:00Z", decoded["generated_at"])
	entries := decoded["entries"].([]interface{})
	require.Len(t, entries, 2)
	first := entries[0].(map[string]interface{})
	assert.Equal(t, "8,50 €", first["converted"])
	assert.NotContains(t, first, "run_id")
}

func TestReportGenerator_GenerateReport_UnsupportedFormat(t *testing.T) {
	_, err := NewReportGenerator(nil).GenerateReport(&Ledger{}, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format: xml")
}

func TestReportGenerator_WriteReport(t *testing.T) {
	logger := logging.NewMockLogger()
	generator := NewReportGenerator(logger)
	ledger, err := NewLedger(convertedResult(t), fixedNow)
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := generator.WriteReport(ledger, dir, "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ledger-USD-EUR.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "run_id,row,"))
	assert.True(t, logger.HasEntry("INFO", "Ledger written"))
}
