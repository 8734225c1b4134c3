// Package logging provides structured logging configuration for mockd-appsync.
//
// Diagnostic output goes through log/slog, configured with New:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//	logger.Debug("function invoked", "function", "getUser")
//
// MultiHandler fans records out to several handlers, which the CLI uses to
// write to stderr and a log file at the same time.
//
// User-facing simulator messages, such as warnings about dropped data sources,
// go through PluginLogger. It prints "AppSync Simulator: <message>" in the
// requested colour and mirrors the line into a slog.Logger.
//
// Components should accept a *slog.Logger in their constructor. If no logger
// is provided, use logging.Nop().
package logging
