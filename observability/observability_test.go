package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/gostream/errors"
	"github.com/kbukum/gostream/stream"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	return m, reader
}

func newTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return exporter
}

// counterValue sums the data points of an int64 counter that carry attr.
func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string, attr attribute.KeyValue) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %s has data %T, want Sum[int64]", name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value(attr.Key); ok && v == attr.Value {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestConfigDerivation(t *testing.T) {
	cfg := Config{Enabled: true, Insecure: true, SampleRate: 0.25}
	cfg.ApplyDefaults()

	tc := cfg.TracerConfig("streamctl", "v1.2.3", "staging")
	if tc.Endpoint != "localhost:4318" || tc.SampleRate != 0.25 || tc.ServiceVersion != "v1.2.3" {
		t.Errorf("unexpected tracer config: %+v", tc)
	}
	mc := cfg.MeterConfig("streamctl", "v1.2.3", "staging")
	if mc.Interval != 15*time.Second || !mc.Insecure || mc.Environment != "staging" {
		t.Errorf("unexpected meter config: %+v", mc)
	}
}

func TestNewMetricsNoop(t *testing.T) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}

	ctx := context.Background()
	metrics.RecordElement(ctx, "range")
	metrics.RecordExhausted(ctx, "range")
	metrics.RecordOperation(ctx, "sum", "ok", 50*time.Millisecond)
	metrics.RecordError(ctx, "sort", fmt.Errorf("plain error"))
}

func TestInstrumentCountsElements(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	s, err := stream.Then(stream.RangeN(10), Instrument[int](ctx, m, "range"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Endless() {
		t.Error("expected instrumented finite stream to stay finite")
	}
	n, err := stream.Then(s, stream.Count[int]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 10 {
		t.Errorf("expected 10 elements, got %d", n)
	}

	stage := attribute.String(AttrStage, "range")
	if got := counterValue(t, reader, MetricElements, stage); got != 10 {
		t.Errorf("expected %s=10, got %d", MetricElements, got)
	}
	if got := counterValue(t, reader, MetricExhausted, stage); got != 1 {
		t.Errorf("expected %s=1, got %d", MetricExhausted, got)
	}
}

func TestInstrumentWithoutMetrics(t *testing.T) {
	s, err := stream.Then(stream.RangeN(4), Instrument[int](context.Background(), nil, "range"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, err := stream.Then(s, stream.Count[int]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 elements, got %d", n)
	}
	if s.Next() {
		t.Error("expected the stage to stay exhausted")
	}
}

func TestInstrumentForwardsEndlessAndClone(t *testing.T) {
	m, _ := newTestMetrics(t)
	ctx := context.Background()

	s, _ := stream.Then(stream.Iota(0, 1), Instrument[int](ctx, m, "iota"))
	if !s.Endless() {
		t.Error("expected instrumented endless stream to stay endless")
	}
	if _, err := stream.Then(s, stream.Count[int]()); !errors.Is(err, stream.ErrEndlessStream) {
		t.Errorf("expected endless rejection, got %v", err)
	}

	looped, err := stream.Then(stream.RangeN(3), Instrument[int](ctx, m, "range"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loop, err := stream.Then(looped, stream.Loop[int]())
	if err != nil {
		t.Fatalf("expected instrumented range to be clonable, got %v", err)
	}
	first, _ := stream.Then(loop, stream.Compose(stream.Take[int](7), stream.ToSlice[int]()))
	want := []int{0, 1, 2, 0, 1, 2, 0}
	if fmt.Sprint(first) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, first)
	}
}

func TestTracedSuccess(t *testing.T) {
	exporter := newTestTracer(t)
	m, reader := newTestMetrics(t)

	run := NewRun("run-1", "sum", nil)
	ctx := WithRun(context.Background(), run)

	sum, err := stream.Then(stream.RangeN(101), Traced(ctx, m, "sum", stream.Fold(0, func(acc, v int) int { return acc + v })))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != 5050 {
		t.Errorf("expected 5050, got %d", sum)
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != "stream.sum" {
		t.Errorf("expected span name stream.sum, got %q", spans[0].Name)
	}
	if !hasAttr(spans[0].Attributes, attribute.String(AttrRunID, "run-1")) {
		t.Errorf("expected run id attribute, got %v", spans[0].Attributes)
	}
	if got := counterValue(t, reader, MetricOperations, attribute.String(AttrStatus, "ok")); got != 1 {
		t.Errorf("expected one ok operation, got %d", got)
	}
}

func TestTracedFailure(t *testing.T) {
	exporter := newTestTracer(t)
	m, reader := newTestMetrics(t)

	_, err := stream.Then(stream.Iota(0, 1), Traced(context.Background(), m, "sort", stream.Sort[int]()))
	if !errors.Is(err, stream.ErrEndlessStream) {
		t.Fatalf("expected endless rejection, got %v", err)
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status)
	}
	if !hasAttr(spans[0].Attributes, attribute.String(AttrErrorCode, string(errors.ErrCodeEndlessStream))) {
		t.Errorf("expected error code attribute, got %v", spans[0].Attributes)
	}
	code := attribute.String(AttrErrorCode, string(errors.ErrCodeEndlessStream))
	if got := counterValue(t, reader, MetricErrors, code); got != 1 {
		t.Errorf("expected one error, got %d", got)
	}
}

func TestTracedWithoutMetrics(t *testing.T) {
	newTestTracer(t)
	first, err := stream.Then(stream.Iota(5, 1), Traced(context.Background(), nil, "first", stream.First[int]()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := first.Get(); !ok || v != 5 {
		t.Errorf("expected Some(5), got %v", first)
	}
}

func TestRunLifecycle(t *testing.T) {
	exporter := newTestTracer(t)
	m, reader := newTestMetrics(t)

	run := NewRun("run-2", "primes", m)
	if run.StartTime.IsZero() {
		t.Fatal("expected StartTime to be set")
	}

	ctx, span := run.Start(context.Background())
	if RunFromContext(ctx) != run {
		t.Fatal("expected run in context")
	}
	run.End(ctx, span, fmt.Errorf("something failed"))

	spans := exporter.GetSpans()
	if len(spans) != 1 || spans[0].Name != SpanRun {
		t.Fatalf("expected one %s span, got %v", SpanRun, spans)
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status)
	}
	internal := attribute.String(AttrErrorCode, string(errors.ErrCodeInternal))
	if got := counterValue(t, reader, MetricErrors, internal); got != 1 {
		t.Errorf("expected plain errors to count as internal, got %d", got)
	}
}

func TestRunFromContextNotSet(t *testing.T) {
	if RunFromContext(context.Background()) != nil {
		t.Error("expected nil when run not set")
	}
}

func TestRunDuration(t *testing.T) {
	run := NewRun("run-3", "sum", nil)
	run.StartTime = time.Now().Add(-50 * time.Millisecond)

	if d := run.Duration(); d < 45*time.Millisecond {
		t.Errorf("expected duration around 50ms, got %v", d)
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, sdktrace.AlwaysSample().Description()},
		{0, sdktrace.NeverSample().Description()},
		{0.5, sdktrace.TraceIDRatioBased(0.5).Description()},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.rate), func(t *testing.T) {
			if got := sampler(tc.rate).Description(); got != tc.want {
				t.Errorf("sampler(%v) = %q, want %q", tc.rate, got, tc.want)
			}
		})
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource("streamctl", "v1.0.0", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := res.Set().Value("service.name"); !ok || v.AsString() != "streamctl" {
		t.Errorf("expected service.name=streamctl, got %v", v)
	}
}

func TestSetupDisabled(t *testing.T) {
	cfg := &Config{}
	m, shutdown, err := Setup(context.Background(), cfg, "streamctl", "dev", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("expected metrics bound to the no-op provider")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}

func TestInitTracer(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")
	tp, err := InitTracer(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("InitTracer failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = tp.Shutdown(ctx)
}

func TestInitMeter(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")
	mp, err := InitMeter(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("InitMeter failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = mp.Shutdown(ctx)
}

func hasAttr(attrs []attribute.KeyValue, want attribute.KeyValue) bool {
	for _, a := range attrs {
		if a.Key == want.Key && a.Value == want.Value {
			return true
		}
	}
	return false
}
