// Package logger provides structured logging for edukit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("reporting")
//	log.Debug("graded students", logger.Fields(logger.FieldCount, 4))
package logger
