// errors.go: structured error handling for charon collector operations.
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for the collector's ambient-layer failure modes. The five core GC
// contract outcomes (uniqueness violation, dead-target upgrade, duplicate
// attach, detach-of-untracked, tracing misuse) are surfaced as a fatal
// panic, an absent value, or a bare bool, and are never returned as errors;
// the one use of this file among them is GetMut's panic value, built by
// NewErrNotUnique.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package charon

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for charon collector operations.
const (
	// Configuration errors (1xxx)
	ErrCodeInvalidThreshold errors.ErrorCode = "CHARON_INVALID_THRESHOLD"
	ErrCodeInvalidConfig    errors.ErrorCode = "CHARON_INVALID_CONFIG"

	// Contract violation (2xxx) -- only ever panicked with, never returned.
	ErrCodeNotUnique errors.ErrorCode = "CHARON_NOT_UNIQUE"

	// Hot-reload errors (3xxx)
	ErrCodeWatchFailed errors.ErrorCode = "CHARON_WATCH_FAILED"

	// Journal errors (4xxx)
	ErrCodeJournalOpenFailed  errors.ErrorCode = "CHARON_JOURNAL_OPEN_FAILED"
	ErrCodeJournalWriteFailed errors.ErrorCode = "CHARON_JOURNAL_WRITE_FAILED"

	// Internal errors (5xxx)
	ErrCodeInternalError errors.ErrorCode = "CHARON_INTERNAL_ERROR"
)

const (
	msgInvalidThreshold  = "invalid threshold: must be non-negative"
	msgNotUnique         = "exclusive access requested on a payload with outstanding shared references"
	msgWatchFailed       = "failed to start configuration watcher"
	msgJournalOpenFailed = "failed to open collection journal"
	msgJournalWrite      = "failed to write collection journal entry"
	msgInternalError     = "internal collector error"
)

// NewErrInvalidThreshold reports a negative percentage or memory threshold
// supplied via Config.
func NewErrInvalidThreshold(field string, value interface{}) error {
	return errors.NewWithContext(ErrCodeInvalidThreshold, msgInvalidThreshold, map[string]interface{}{
		"field": field,
		"value": value,
	})
}

// NewErrNotUnique builds the structured error GetMut panics with on a
// uniqueness violation -- exclusive access requested while other strong or
// weak handles remain outstanding.
func NewErrNotUnique(strongCount, weakCount int64) error {
	return errors.NewWithContext(ErrCodeNotUnique, msgNotUnique, map[string]interface{}{
		"strong_count": strongCount,
		"weak_count":   weakCount,
	})
}

// NewErrWatchFailed wraps an underlying argus error encountered starting a
// hot-reload watcher.
func NewErrWatchFailed(path string, cause error) error {
	return errors.Wrap(cause, ErrCodeWatchFailed, msgWatchFailed).
		WithContext("path", path).
		AsRetryable()
}

// NewErrJournalOpenFailed wraps a sqlite open/migration failure.
func NewErrJournalOpenFailed(path string, cause error) error {
	return errors.Wrap(cause, ErrCodeJournalOpenFailed, msgJournalOpenFailed).
		WithContext("path", path)
}

// NewErrJournalWriteFailed wraps a sqlite insert failure recording a pass.
func NewErrJournalWriteFailed(cause error) error {
	return errors.Wrap(cause, ErrCodeJournalWriteFailed, msgJournalWrite).
		AsRetryable()
}

// NewErrInternal is a generic internal error, used only for conditions that
// indicate a bug in this library rather than caller misuse.
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternalError, msgInternalError).
			WithContext("operation", operation).
			WithSeverity("warning")
	}
	return errors.NewWithField(ErrCodeInternalError, msgInternalError, "operation", operation).
		WithSeverity("warning")
}

// IsConfigError reports whether err is a configuration validation error.
func IsConfigError(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidThreshold) || errors.HasCode(err, ErrCodeInvalidConfig)
}

// IsRetryable reports whether err can be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the structured error code from err, if any.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts the structured context map from err, if any.
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var charonErr *errors.Error
	if goerrors.As(err, &charonErr) {
		return charonErr.Context
	}
	return nil
}
