// Package logger provides structured logging for seqkit using zerolog.
//
// It supports JSON and console output, per-logger level configuration, and
// component-scoped loggers with structured fields. The sequence combinators
// never log on their own; seq.Trace is the only bridge into this package.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("ingest")
//	log.Info("stage finished", logger.Fields(logger.FieldCount, 42))
package logger
