package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment, so request-scoped context (workspace_id,
// actor_id, etc.) is included in every log statement without manual plumbing.
type LogFields struct {
	WorkspaceID  *int64  // Workspace the request operates on
	ActorID      *int64  // Authenticated user performing the request
	ActivityType *string // Activity type for audit-producing operations
	Component    string  // Component name (e.g., "taskboard.http", "taskboard.queue")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
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

	if next.WorkspaceID != nil {
		result.WorkspaceID = next.WorkspaceID
	}
	if next.ActorID != nil {
		result.ActorID = next.ActorID
	}
	if next.ActivityType != nil {
		result.ActivityType = next.ActivityType
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
func Ptr[T any](v T) *T {
	return &v
}
