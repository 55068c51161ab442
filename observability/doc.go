// Package observability connects stream pipelines to OpenTelemetry.
//
// Tracing and metrics providers are initialised once per process:
//
//	tp, err := observability.InitTracer(ctx, &tracerCfg)
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, &meterCfg)
//	defer mp.Shutdown(ctx)
//
// Pipelines are observed with two builders. Instrument is an identity stage
// that counts the elements pulled through it; Traced wraps any builder in a
// span and records the operation outcome:
//
//	metrics, _ := observability.NewMetrics(observability.Meter("streamctl"))
//	s, _ := stream.Then(stream.RangeN(100), observability.Instrument[int](ctx, metrics, "range"))
//	sum, err := stream.Then(s, observability.Traced(ctx, metrics, "sum", stream.Fold(0, add)))
package observability
