package observability

import (
	"context"
	stderrors "errors"
)

// ShutdownFunc flushes and stops the providers started by Setup.
type ShutdownFunc func(ctx context.Context) error

// Setup starts the tracer and meter providers described by cfg and
// creates the stream metrics on the resulting meter. With cfg.Enabled
// false nothing is exported: the metrics are bound to the global no-op
// provider and the shutdown function does nothing.
func Setup(ctx context.Context, cfg *Config, serviceName, serviceVersion, environment string) (*Metrics, ShutdownFunc, error) {
	if !cfg.Enabled {
		m, err := NewMetrics(Meter(instrumentationName))
		return m, func(context.Context) error { return nil }, err
	}

	tracerCfg := cfg.TracerConfig(serviceName, serviceVersion, environment)
	tp, err := InitTracer(ctx, &tracerCfg)
	if err != nil {
		return nil, nil, err
	}
	meterCfg := cfg.MeterConfig(serviceName, serviceVersion, environment)
	mp, err := InitMeter(ctx, &meterCfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, nil, err
	}

	m, err := NewMetrics(mp.Meter(instrumentationName))
	if err != nil {
		_ = stderrors.Join(mp.Shutdown(ctx), tp.Shutdown(ctx))
		return nil, nil, err
	}
	return m, func(ctx context.Context) error {
		return stderrors.Join(mp.Shutdown(ctx), tp.Shutdown(ctx))
	}, nil
}
