// Package errors provides classified error primitives used across navinject.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, filesystem, git, ...)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - RetryStrategy: Whether re-running the batch can resolve the error
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing messages for the CLI
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "failed to read layout file").
//		WithContext("path", path).
//		Build()
package errors
