// Package attr provides slog attribute helpers used across services and
// handlers, including correlation-ID plumbing between watermill messages,
// contexts, and log records.
package attr

import (
	"context"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

type correlationIDKey struct{}

// String returns a string attribute.
func String(key, value string) slog.Attr { return slog.String(key, value) }

// Int returns an int attribute.
func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

// Float64 returns a float64 attribute.
func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }

// Bool returns a bool attribute.
func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

// Time returns a time attribute.
func Time(key string, value time.Time) slog.Attr { return slog.Time(key, value) }

// Any returns an attribute for an arbitrary value.
func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

// Error returns the conventional "error" attribute.
func Error(err error) slog.Attr { return slog.Any("error", err) }

// TournamentID returns a tournament-ID attribute.
func TournamentID(key string, id sharedtypes.TournamentID) slog.Attr {
	return slog.String(key, id.String())
}

// AthleteID returns an athlete-ID attribute.
func AthleteID(key string, id sharedtypes.AthleteID) slog.Attr {
	return slog.String(key, id.String())
}

// ShootOffID returns a shoot-off-ID attribute.
func ShootOffID(key string, id sharedtypes.ShootOffID) slog.Attr {
	return slog.String(key, id.String())
}

// WithCorrelationID stores a correlation ID on the context for later
// extraction by ExtractCorrelationID.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// ExtractCorrelationID returns the correlation-ID attribute from the context,
// or an empty attribute when none is present.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		return slog.String("correlation_id", id)
	}
	return slog.String("correlation_id", "")
}

// CorrelationIDFromMsg returns the correlation-ID attribute from a watermill
// message's metadata.
func CorrelationIDFromMsg(msg *message.Message) slog.Attr {
	return slog.String("correlation_id", middleware.MessageCorrelationID(msg))
}
