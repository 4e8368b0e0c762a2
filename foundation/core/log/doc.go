// Package log provides the structured logger injected into keywords.
//
// Package: log
// Title: Structured Logging for the String Keyword Library
// Description: Keywords report informational records ("3 lines", "2 out of
//              5 lines matched") through a Logger they receive at construction
//              time instead of writing to a global. Loggers are immutable and
//              safe for concurrent use; With* calls return modified copies.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-08
//
// Formats: JSON (default), text, logfmt and a lipgloss-colored console format.
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatConsole,
//		Name:   "stringx",
//	})
//	logger.Info("3 lines", log.Int("lines", 3))
//
//	timer := logger.StartTimer("Get Line Count")
//	// ... run the keyword
//	timer.Stop()
package log
