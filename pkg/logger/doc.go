// Package logger builds slog.Logger instances for use with the SDK's
// clients. The clients take any *slog.Logger; this package only provides
// a small factory so applications embedding the SDK get consistent
// structured output without wiring slog handlers by hand.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithAttr(slog.String("component", "firetree")),
//	)
//	client, _ := rest.New(url, tok, rest.WithLogger(log))
//
// The SDK itself logs at debug level only; at the default info level it
// is silent.
package logger
