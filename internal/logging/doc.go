// Package logging provides structured logging for tipsplit.
//
// This package wraps a zap logger with package-level convenience functions.
// Logging is silent by default so the terminal form and the calc command
// print nothing but their own output. Set TIPSPLIT_LOG_LEVEL (or pass
// --log-level to serve) to enable it.
//
// # Log Levels
//
//   - Debug: every form event with its outcome
//   - Info: connections, HTTP requests, server lifecycle, mDNS
//   - Warn: malformed WebSocket messages, shutdown timeouts
//   - Error: listener and I/O failures
//
// # Usage
//
//	if err := logging.Initialize("debug"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Info("Server listening", zap.String("addr", addr))
//	logging.LogFormEvent(session, "preset(15)", true, "$3.75", "$28.75")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and
// SetLogger are not, and should be called before goroutines start.
package logging
