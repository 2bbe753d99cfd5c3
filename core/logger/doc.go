// Package logger provides a structured logging facility based on Zap.
//
// The logger is constructed once by the process entry point and handed to
// every collaborator explicitly; no package in this repository keeps a
// global logger. The WithRunID helper tags a logger with a fresh sync run
// identifier so all entries of one run can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (development) or json (production)
package logger
