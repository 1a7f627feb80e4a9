// Package errors provides the classified error primitives used across hidldoc.
//
// A ClassifiedError carries a category (config, filesystem, docs, ...), a
// severity and a retry hint, plus free-form context. Index generation is a
// one-shot batch job, so nearly every error built here is fatal and never
// retried; the CLI adapter maps categories to process exit codes.
//
// Example usage:
//
//	err := errors.FileSystemError("write toc").
//		WithCause(cause).
//		WithContext("path", tocPath).
//		Build()
package errors
