// Package log provides structured logging for the datex packages and CLI.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with persistent context fields, a correlation
//              ID, and text or JSON output. Errors from the core/error package
//              are logged with their code, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-08-14 v0.2.0: Trimmed to synchronous text/JSON output, added Discard
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "datex",
//	})
//	logger.Debug("pattern rejected", log.Fields{"pattern": "dd-MM-yyyy"})
package log
