package container

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"seqhypo/adapters/casefile"
	"seqhypo/adapters/excel"
	"seqhypo/adapters/rng"
	"seqhypo/app"
	"seqhypo/internal/config"
	"seqhypo/internal/enumeration"
	"seqhypo/internal/verification"
	"seqhypo/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	// Engine
	RNG        ports.RNGPort
	Enumerator *enumeration.Enumerator
	Verifier   *verification.Verifier

	// Services
	Battery *app.BatteryService
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		RNG:    rng.NewAdapter(),
	}
	c.initEngine()
	c.initServices()

	logger.Debug("container initialized",
		zap.Int("workers", cfg.Engine.Workers),
		zap.Int64("parallel_threshold", cfg.Engine.ParallelThreshold),
		zap.Int64("window_radius", cfg.Battery.WindowRadius),
	)
	return c, nil
}

func (c *Container) initEngine() {
	c.Enumerator = enumeration.New(
		enumeration.WithLogger(c.Logger),
		enumeration.WithWorkers(c.Config.Engine.Workers),
	)
	c.Verifier = verification.NewVerifier(
		verification.WithEnumerator(c.Enumerator),
		verification.WithLogger(c.Logger),
		verification.WithSampleSize(c.Config.Engine.SampleSize),
		verification.WithParallelThreshold(c.Config.Engine.ParallelThreshold),
	)
}

func (c *Container) initServices() {
	c.Battery = app.NewBatteryService(c.RNG, c.Verifier,
		app.WithDefaultRadius(c.Config.Battery.WindowRadius),
		app.WithStopOnFailure(c.Config.Battery.StopOnFailure),
		app.WithBatteryLogger(c.Logger),
	)
}

// WithBatteryRadius rebuilds the battery service with a different default
// probe radius
func (c *Container) WithBatteryRadius(radius int64) {
	c.Battery = app.NewBatteryService(c.RNG, c.Verifier,
		app.WithDefaultRadius(radius),
		app.WithStopOnFailure(c.Config.Battery.StopOnFailure),
		app.WithBatteryLogger(c.Logger),
	)
}

// CaseSource returns the configured case file loader, or nil when the
// built-in cases apply
func (c *Container) CaseSource(path string) ports.CaseSourcePort {
	if path == "" {
		path = c.Config.Battery.CasesFile
	}
	if path == "" {
		return nil
	}
	return casefile.NewLoader(path)
}

// ReportSink returns an xlsx writer, or nil when no report path is set
func (c *Container) ReportSink(path string) ports.ReportSinkPort {
	if path == "" {
		path = c.Config.Battery.ReportXLSX
	}
	if path == "" {
		return nil
	}
	return excel.NewReportWriter(path, c.Logger)
}

// MidpointSource returns a spreadsheet reader for path
func (c *Container) MidpointSource(path, sheet string) ports.MidpointSourcePort {
	cfg := excel.DefaultExcelConfig(path)
	cfg.Sheet = sheet
	return excel.NewDataReader(cfg, c.Logger)
}

// Shutdown flushes the logger
func (c *Container) Shutdown(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// Sync on a terminal's stderr returns EINVAL on linux
	_ = c.Logger.Sync()
	return nil
}
