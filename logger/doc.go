// Package logger provides structured logging for gostream using zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers. The stream engine logs through the "stream"
// component; the CLI configures the global logger at startup.
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("stream")
//	log.Debug("stream materialized", logger.Fields("operation", "sort", "count", 42))
package logger
