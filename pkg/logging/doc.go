// Package logging configures structured JSON logging for the archiver.
//
// Every record goes to stderr so stdout stays free for serialized command
// output, and every record carries the module name and version. The CLI
// installs the default logger once at startup; everything else logs
// through plain slog calls.
//
// # Levels
//
// ParseLevel understands debug, info, warn/warning, and error, ignoring
// case and surrounding whitespace. Anything else, including an empty
// string, falls back to info. At debug level each record additionally
// carries the source location that emitted it.
//
// # Usage
//
//	logging.SetDefaultStructuredLogger("ichnos", version, "debug")
//
//	slog.Info("dump started", "root", root)
//	slog.Debug("listing resource type", "kind", "Pod")
//
// A record rendered at info level looks like:
//
//	{"time":"2025-08-22T10:30:00.123Z","level":"INFO","msg":"archive complete","module":"ichnos","version":"0.4.2","objects":412}
package logging
