// Package pipeline runs one conversion request end to end:
// parse, validate, convert the designated column and serialize.
package pipeline

import (
	"fmt"
	"strings"

	"fjacquet/currency-csv/internal/converter"
	"fjacquet/currency-csv/internal/currency"
	"fjacquet/currency-csv/internal/encoding"
	"fjacquet/currency-csv/internal/fileutils"
	"fjacquet/currency-csv/internal/logging"
	"fjacquet/currency-csv/internal/parsererror"
	"fjacquet/currency-csv/internal/table"
	"fjacquet/currency-csv/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// State is a step of a conversion run.
type State int

const (
	StateNew State = iota
	StateParsed
	StateValidated
	StateConverted
	StateSerialized
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateParsed:
		return "parsed"
	case StateValidated:
		return "validated"
	case StateConverted:
		return "converted"
	case StateSerialized:
		return "serialized"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request is one conversion order.
type Request struct {
	// Field is the 0-based index of the monetary column.
	Field       int
	Destination string
	Multiplier  decimal.Decimal
}

// Change records one rewritten cell.
type Change struct {
	Row       int
	Original  string
	Converted string
}

// Result is the outcome of a run. On failure State is StateFailed and
// FailedAfter is the last state reached.
type Result struct {
	RunID       string
	State       State
	FailedAfter State
	Source      currency.Currency
	Destination currency.Currency
	Multiplier  decimal.Decimal
	Table       *table.Table
	Output      string
	Changes     []Change
}

// Rows returns the number of converted rows.
func (r *Result) Rows() int {
	return len(r.Changes)
}

// Pipeline holds the collaborators shared by every run.
type Pipeline struct {
	separator       string
	inputEncoding   string
	defaultEncoding string
	detector        encoding.Detector
	validator       *validation.Validator
	logger          logging.Logger
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithSeparator sets the cell separator for input and output.
func WithSeparator(sep string) Option {
	return func(p *Pipeline) { p.separator = sep }
}

// WithDetector replaces the encoding detector.
func WithDetector(d encoding.Detector) Option {
	return func(p *Pipeline) { p.detector = d }
}

// WithInputEncoding forces the input encoding, skipping detection.
func WithInputEncoding(name string) Option {
	return func(p *Pipeline) { p.inputEncoding = name }
}

// WithDefaultEncoding sets the fallback when detection gives nothing usable.
func WithDefaultEncoding(name string) Option {
	return func(p *Pipeline) { p.defaultEncoding = name }
}

// New creates a Pipeline. A nil logger discards output.
func New(logger logging.Logger, opts ...Option) *Pipeline {
	logger = logging.OrDiscard(logger)
	p := &Pipeline{
		separator:       table.DefaultSeparator,
		defaultEncoding: encoding.DefaultEncoding,
		detector:        encoding.NewCharsetDetector(),
		logger:          logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.validator = validation.NewValidator(logger)
	return p
}

// Separator returns the configured cell separator.
func (p *Pipeline) Separator() string {
	return p.separator
}

type run struct {
	result *Result
	logger logging.Logger
}

func (p *Pipeline) start(req Request) *run {
	id := uuid.NewString()
	return &run{
		result: &Result{RunID: id, State: StateNew, Multiplier: req.Multiplier},
		logger: p.logger.WithField(logging.FieldRunID, id),
	}
}

func (r *run) advance(s State) {
	r.result.State = s
	r.logger.Debug("Pipeline state changed", logging.F(logging.FieldState, s.String()))
}

func (r *run) fail(err error) (*Result, error) {
	r.result.FailedAfter = r.result.State
	r.result.State = StateFailed
	r.logger.WithError(err).Debug("Pipeline failed",
		logging.F(logging.FieldState, r.result.FailedAfter.String()),
		logging.F(logging.FieldKind, parsererror.KindOf(err).String()))
	return r.result, err
}

// Run converts delimited text.
func (p *Pipeline) Run(text string, req Request) (*Result, error) {
	r := p.start(req)
	t, err := table.Parse(text, p.separator)
	if err != nil {
		return r.fail(err)
	}
	r.advance(StateParsed)
	return p.process(r, t, req)
}

// RunTable converts an already built table. t is converted in place.
func (p *Pipeline) RunTable(t *table.Table, req Request) (*Result, error) {
	r := p.start(req)
	if t == nil {
		t = &table.Table{}
	}
	r.advance(StateParsed)
	return p.process(r, t, req)
}

func (p *Pipeline) process(r *run, t *table.Table, req Request) (*Result, error) {
	r.result.Table = t

	vr, err := p.validator.Validate(t, req.Field)
	if err != nil {
		return r.fail(err)
	}
	r.result.Source = vr.Currency
	r.advance(StateValidated)

	engine, err := p.checkRequest(vr.Currency, req)
	if err != nil {
		return r.fail(err)
	}
	r.result.Destination = engine.Destination()

	changes := make([]Change, 0, len(t.Rows))
	for i, row := range t.Rows {
		original := row[req.Field]
		converted, err := engine.Convert(original)
		if err != nil {
			r.logger.Debug("Cell conversion failed", logging.F(logging.FieldRow, i+1))
			return r.fail(&parsererror.CurrencyFormatError{
				Row: i + 1, Value: original, Reason: "amount could not be converted", Err: err,
			})
		}
		if strings.Contains(converted, p.separator) {
			return r.fail(&parsererror.ConfigurationError{
				Reason: fmt.Sprintf("converted amount %q at row %d contains the separator %q, choose another separator",
					converted, i+1, p.separator),
			})
		}
		row[req.Field] = converted
		changes = append(changes, Change{Row: i + 1, Original: original, Converted: converted})
	}
	r.result.Changes = changes
	r.advance(StateConverted)

	r.result.Output = table.Serialize(t, p.separator)
	r.advance(StateSerialized)

	r.logger.Info("Conversion complete",
		logging.F(logging.FieldSource, string(r.result.Source.Code)),
		logging.F(logging.FieldDestination, string(r.result.Destination.Code)),
		logging.F(logging.FieldMultiplier, req.Multiplier.String()),
		logging.F(logging.FieldCount, len(changes)))
	return r.result, nil
}

func (p *Pipeline) checkRequest(source currency.Currency, req Request) (*converter.Engine, error) {
	if req.Multiplier.IsNegative() {
		return nil, &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("multiplier %s must not be negative", req.Multiplier),
		}
	}
	engine, err := converter.NewEngine(req.Destination, req.Multiplier)
	if err != nil {
		return nil, &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("destination currency %q is not supported", req.Destination),
			Err:    err,
		}
	}
	if engine.Destination().Code == source.Code {
		return nil, &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("destination currency %s is the same as the source currency", source.Code),
		}
	}
	return engine, nil
}

// Load reads, decodes and parses a file. It returns the encoding used.
func (p *Pipeline) Load(path string) (*table.Table, string, error) {
	text, enc, err := p.readText(path)
	if err != nil {
		return nil, "", err
	}
	t, err := table.Parse(text, p.separator)
	if err != nil {
		return nil, "", err
	}
	return t, enc, nil
}

// ValidateFile loads a file and validates it at field without converting.
func (p *Pipeline) ValidateFile(path string, field int) (*validation.Result, error) {
	t, _, err := p.Load(path)
	if err != nil {
		return nil, err
	}
	return p.validator.Validate(t, field)
}

// ConvertFile converts the file at inPath and writes UTF-8 output to outPath.
// Nothing is written unless the run reaches StateSerialized.
func (p *Pipeline) ConvertFile(inPath, outPath string, req Request) (*Result, error) {
	text, enc, err := p.readText(inPath)
	if err != nil {
		return nil, err
	}

	res, err := p.Run(text, req)
	if err != nil {
		return res, err
	}

	if err := p.WriteOutput(outPath, res.Output); err != nil {
		return res, err
	}

	p.logger.Info("Converted file written",
		logging.F(logging.FieldInputFile, inPath),
		logging.F(logging.FieldOutputFile, outPath),
		logging.F(logging.FieldEncoding, enc),
		logging.F(logging.FieldRunID, res.RunID))
	return res, nil
}

// WriteOutput writes serialized text as UTF-8, replacing path atomically.
func (p *Pipeline) WriteOutput(path, text string) error {
	data, err := encoding.Encode(text, encoding.DefaultEncoding)
	if err != nil {
		return err
	}
	return fileutils.WriteFileAtomic(path, data, 0644)
}

func (p *Pipeline) readText(path string) (string, string, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	enc, err := encoding.Resolve(p.detector, data, p.inputEncoding, p.defaultEncoding)
	if err != nil {
		return "", "", &parsererror.IOError{Op: "detect encoding of", Path: path, Err: err}
	}
	text, err := encoding.Decode(data, enc)
	if err != nil {
		if parsererror.KindOf(err) == parsererror.KindConfiguration {
			return "", "", err
		}
		return "", "", &parsererror.IOError{Op: "decode", Path: path, Err: err}
	}

	p.logger.Debug("Input decoded",
		logging.F(logging.FieldInputFile, path),
		logging.F(logging.FieldEncoding, enc),
		logging.F(logging.FieldSeparator, p.separator))
	return text, enc, nil
}

