package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Handlers set the user and date once; every log line below them
// carries the scheduling context without threading it by hand.
type LogFields struct {
	UserID    *int64  // owner of the gap set being mutated
	GapID     *int64  // gap targeted by a split
	Date      *string // calendar date (YYYY-MM-DD) of the operation
	Operation *string // e.g. "initialize_day", "schedule_task", "reconcile"
	Component string  // component name, e.g. "scheduler.service.gap"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.GapID != nil {
		result.GapID = next.GapID
	}
	if next.Date != nil {
		result.Date = next.Date
	}
	if next.Operation != nil {
		result.Operation = next.Operation
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
