package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/gostream/errors"
	"github.com/kbukum/gostream/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The provider should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricElements          = "stream.elements"
	MetricExhausted         = "stream.exhausted"
	MetricOperations        = "stream.operations"
	MetricOperationDuration = "stream.operation.duration"
	MetricErrors            = "stream.errors"
)

// Metrics holds the instruments recorded by Instrument and Traced.
type Metrics struct {
	elements          metric.Int64Counter
	exhausted         metric.Int64Counter
	operations        metric.Int64Counter
	operationDuration metric.Float64Histogram
	errors            metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	elements, err := meter.Int64Counter(MetricElements,
		metric.WithDescription("Elements pulled through an instrumented stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricElements, err)
	}

	exhausted, err := meter.Int64Counter(MetricExhausted,
		metric.WithDescription("Instrumented stages that reached their end"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricExhausted, err)
	}

	operations, err := meter.Int64Counter(MetricOperations,
		metric.WithDescription("Builder applications by operation and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricOperations, err)
	}

	operationDuration, err := meter.Float64Histogram(MetricOperationDuration,
		metric.WithDescription("Duration of builder applications in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricOperationDuration, err)
	}

	errorTotal, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Failed builder applications by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrors, err)
	}

	return &Metrics{
		elements:          elements,
		exhausted:         exhausted,
		operations:        operations,
		operationDuration: operationDuration,
		errors:            errorTotal,
	}, nil
}

// RecordElement counts one element pulled through stage.
func (m *Metrics) RecordElement(ctx context.Context, stage string) {
	m.elements.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrStage, stage)))
}

// RecordExhausted counts stage reaching its end.
func (m *Metrics) RecordExhausted(ctx context.Context, stage string) {
	m.exhausted.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrStage, stage)))
}

// RecordOperation records a builder application.
func (m *Metrics) RecordOperation(ctx context.Context, operation, status string, duration time.Duration) {
	m.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrOperationName, operation),
		attribute.String(AttrStatus, status),
	))
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrOperationName, operation),
	))
}

// RecordError records a failed operation by error code.
func (m *Metrics) RecordError(ctx context.Context, operation string, err error) {
	code := string(errors.ErrCodeInternal)
	if appErr, ok := errors.AsAppError(err); ok {
		code = string(appErr.Code)
	}
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrOperationName, operation),
		attribute.String(AttrErrorCode, code),
	))
}
