// Package container provides dependency injection for the currency-csv application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/currency-csv/internal/config"
	"fjacquet/currency-csv/internal/encoding"
	"fjacquet/currency-csv/internal/logging"
	"fjacquet/currency-csv/internal/pipeline"
	"fjacquet/currency-csv/internal/report"
	"fjacquet/currency-csv/internal/validation"
)

// Container holds all application dependencies and provides methods to access them.
// It is immutable after creation.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	detector  encoding.Detector
	validator *validation.Validator
	pipeline  *pipeline.Pipeline
	reports   *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies, building the
// logger from the configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger = logging.OrDiscard(logger)

	detector := encoding.NewCharsetDetector()
	p := pipeline.New(logger,
		pipeline.WithSeparator(cfg.CSV.Separator),
		pipeline.WithDetector(detector),
		pipeline.WithInputEncoding(cfg.CSV.InputEncoding),
		pipeline.WithDefaultEncoding(cfg.CSV.DefaultEncoding),
	)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldSeparator, cfg.CSV.Separator),
		logging.F(logging.FieldEncoding, cfg.CSV.InputEncoding),
		logging.F("report_enabled", cfg.Report.Enabled))

	return &Container{
		logger:    logger,
		config:    cfg,
		detector:  detector,
		validator: validation.NewValidator(logger),
		pipeline:  p,
		reports:   report.NewReportGenerator(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetDetector returns the encoding detector used for input files.
func (c *Container) GetDetector() encoding.Detector {
	return c.detector
}

// GetValidator returns the table validator.
func (c *Container) GetValidator() *validation.Validator {
	return c.validator
}

// GetPipeline returns the conversion pipeline configured from Config.
func (c *Container) GetPipeline() *pipeline.Pipeline {
	return c.pipeline
}

// GetReportGenerator returns the ledger generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reports
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
