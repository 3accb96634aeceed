// Package logging provides structured logging for btautolaunch.
//
// This package wraps a global zap logger with convenience functions and a
// few domain helpers for the preview controller and the preview server.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Reduced actions, discovered peers
//   - Info: HTTP requests, subscriber joins and leaves
//   - Warn: Rejected actions, dropped frames
//   - Error: Listener and advertisement failures
//
// # Configuration
//
// Logging is silent unless a level is given, either with --log-level or the
// BTAUTOLAUNCH_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(level); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The interactive preview draws on stdout, so it logs to a file:
//
//	logging.InitializeTo("debug", "/tmp/btautolaunch.log")
//
// # Structured Logging
//
//	logging.LogAction("http", action, state)
//	logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, 200, elapsed)
//	logging.LogSubscriber(conn.RemoteAddr().String(), "subscribed", n)
//
// All logging functions are safe for concurrent use once initialized.
package logging
