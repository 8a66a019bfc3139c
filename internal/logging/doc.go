// Package logging provides structured logging for pioport.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the tool. Interactive prompts never go through
// this package; they write to stdout directly.
//
// # Log Levels
//
//   - Debug: Detailed traces (input coercion, config file resolution)
//   - Info: Normal progress (which file/section is being edited, selection)
//   - Warn: Non-fatal issues (test mode, registry save failures)
//   - Error: Problems that abort or re-prompt
//
// # Configuration
//
// Interactive runs call Setup once at process start:
//
//	if err := logging.Setup(debugFlag); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Setup applies a three-way policy: when PIOPORT_LOG_LEVEL is set the tool
// leaves verbosity to the environment; with --debug everything is logged
// with timestamps and callers; otherwise output is reduced to the message
// text alone at info level, which is what the status lines of a normal
// interactive run look like.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
