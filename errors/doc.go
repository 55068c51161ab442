// Package errors provides the structured error type used across gostream.
// Every checked failure the engine reports is an *AppError carrying a
// machine-readable ErrorCode, so callers can branch with errors.Is on a
// sentinel or inspect the code and details directly.
package errors
