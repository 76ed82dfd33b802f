// Package logger provides structured logging for propkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("bean")
//	log.Debug("field skipped", logger.Fields(logger.FieldField, "Name"))
package logger
