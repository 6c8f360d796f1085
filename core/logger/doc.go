// Package logger provides a structured logging facility based on Zap.
//
// It builds a development logger at debug level and a production logger
// otherwise, with json or console encoding.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the middleware from a Fiber context and
// attaches it to the log entry. WithRun tags every entry of one reconciliation
// run, so findings in a report can be traced back to the logs that produced them.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	l := logger.WithRun(log, runID)
//	l.Warn("Schema load failed", zap.Error(err))
package logger
