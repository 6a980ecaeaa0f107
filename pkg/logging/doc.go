// Package logging provides slog.Logger construction helpers shared by the
// CLI and the server. It standardizes level and format parsing so flags and
// config files accept the same values.
package logging
