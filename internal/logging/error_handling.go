package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// SafeCloseWithLogging closes a resource and logs any errors that occur
func SafeCloseWithLogging(closer io.Closer, logger *slog.Logger, operation string) {
	if closer == nil {
		return
	}

	if err := closer.Close(); err != nil {
		LogError(logger, "failed to close resource", err,
			slog.String("operation", operation),
			Component("resource_management"))
	}
}

// HandleDeferredError handles errors from deferred operations
// It modifies the original error to include deferred operation failures
func HandleDeferredError(originalErr *error, deferredOp func() error, logger *slog.Logger, operation string) {
	if deferredOp == nil {
		return
	}

	if err := deferredOp(); err != nil {
		LogError(logger, "deferred operation failed", err,
			slog.String("operation", operation),
			Component("deferred_cleanup"))

		// The original error takes precedence when both failed.
		if *originalErr == nil {
			*originalErr = fmt.Errorf("%s failed: %w", operation, err)
		}
	}
}
