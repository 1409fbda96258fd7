package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an error that cannot be returned to a caller, with optional key/value context
func Handle(ctx context.Context, err error, args ...any) {
	if err == nil {
		return
	}
	logger := ctxlog.From(ctx)
	logger.Error("application error", append([]any{"error", err}, args...)...)
}
