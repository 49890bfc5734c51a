package observability

import (
	"context"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/tornea-league/internal/config"
	"github.com/riskibarqy/tornea-league/internal/platform/logging"
)

// Telemetry owns the tracing exporter, the profiler and the pprof listener
// started for one process.
type Telemetry struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprof           *http.Server
	pprofTimeout    time.Duration
}

// Start brings up every enabled component. Components already started are
// stopped again when a later one fails.
func Start(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{
		logger:          logger,
		shutdownTracing: func(context.Context) error { return nil },
		stopProfiler:    func() error { return nil },
		pprofTimeout:    cfg.ShutdownTimeout,
	}
	if t.pprofTimeout <= 0 {
		t.pprofTimeout = 5 * time.Second
	}

	shutdownTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, crerr.Wrap(err, "init uptrace")
	}
	t.shutdownTracing = shutdownTracing

	stopProfiler, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = t.Shutdown(context.Background())
		return nil, crerr.Wrap(err, "init pyroscope")
	}
	t.stopProfiler = stopProfiler

	srv, err := StartPprofServer(cfg, logger)
	if err != nil {
		_ = t.Shutdown(context.Background())
		return nil, crerr.Wrap(err, "start pprof")
	}
	t.pprof = srv

	return t, nil
}

// Shutdown stops every component and returns all failures combined.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}

	var errs error
	if err := StopPprofServer(t.pprof, t.logger, t.pprofTimeout); err != nil {
		errs = crerr.CombineErrors(errs, crerr.Wrap(err, "stop pprof"))
	}
	if err := t.stopProfiler(); err != nil {
		errs = crerr.CombineErrors(errs, crerr.Wrap(err, "stop pyroscope"))
	}
	if err := t.shutdownTracing(ctx); err != nil {
		errs = crerr.CombineErrors(errs, crerr.Wrap(err, "shutdown uptrace"))
	}
	return errs
}
