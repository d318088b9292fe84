// Package logger builds log/slog loggers for formkit processes.
//
// New returns a JSON logger writing to stdout at info level. Options change
// the level, format and output, attach static attributes, and register
// ContextExtractors that copy request-scoped values (request id,
// environment, language) into every record logged with that context.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Development, "formkit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form submitted", logger.Form("registerForm"))
//
// The attribute helpers in attr.go keep key names consistent across packages.
package logger
