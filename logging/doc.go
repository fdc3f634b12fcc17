// Package logging builds the slog.Logger used by the hjarta-config App and CLI.
//
// The configuration packages log through the slog default logger; installing the
// logger returned by NewLogger with slog.SetDefault routes filter suppression,
// converter misses and non-convergence warnings into the chosen handler.
package logging
