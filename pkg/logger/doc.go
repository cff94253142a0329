// Package logger builds log/slog loggers with context extraction and optional
// Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithExtractors(requestIDExtractor),
//	)
//	log.InfoContext(ctx, "response sent", slog.Int("status", 200))
//
// # Context Extractors
//
// A [ContextExtractor] pulls a request-scoped attribute out of the context on
// every log call. Return false to skip the attribute for that record.
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// [NewLogHandlerDecorator] wraps any slog.Handler with extractors.
//
// # Sentry
//
// [WithSentry] forwards warnings and errors to Sentry. Errors create issues.
// With an empty DSN, or if initialization fails, the logger writes to its
// output only.
package logger
