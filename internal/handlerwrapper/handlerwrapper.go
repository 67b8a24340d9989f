// Package handlerwrapper adapts typed event handlers to watermill
// message.HandlerFunc, adding tracing, metrics, and payload unmarshalling in
// one place so individual handlers stay business-only.
package handlerwrapper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/utils"
)

// Result is one message a handler wants published: the topic and the payload
// to marshal. The router resolves publishing; handlers never touch the bus.
type Result struct {
	Topic   string
	Payload any
}

// Deps carries the cross-cutting dependencies every wrapped handler needs.
type Deps struct {
	Module  string
	Logger  *slog.Logger
	Metrics observability.OperationMetrics
	Tracer  trace.Tracer
	Helpers utils.Helpers
}

// Wrap converts a typed handler into a message.HandlerFunc. The payload is
// unmarshalled into T, the handler runs under a span, and returned Results
// become messages with their topic in metadata.
func Wrap[T any](deps Deps, handlerName string, fn func(ctx context.Context, payload *T) ([]Result, error)) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx, span := deps.Tracer.Start(msg.Context(), handlerName, trace.WithAttributes(
			attribute.String("module", deps.Module),
			attribute.String("message_id", msg.UUID),
		))
		defer span.End()

		deps.Metrics.RecordHandlerAttempt(deps.Module, handlerName)
		start := time.Now()
		defer func() {
			deps.Metrics.RecordHandlerDuration(deps.Module, handlerName, time.Since(start))
		}()

		deps.Logger.InfoContext(ctx, handlerName+" triggered",
			attr.CorrelationIDFromMsg(msg),
			attr.String("message_id", msg.UUID),
		)

		payload := new(T)
		if err := deps.Helpers.UnmarshalPayload(msg, payload); err != nil {
			deps.Logger.ErrorContext(ctx, "Failed to unmarshal payload",
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			deps.Metrics.RecordHandlerFailure(deps.Module, handlerName)
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		results, err := fn(ctx, payload)
		if err != nil {
			deps.Logger.ErrorContext(ctx, "Error in "+handlerName,
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			span.RecordError(err)
			deps.Metrics.RecordHandlerFailure(deps.Module, handlerName)
			return nil, err
		}

		out := make([]*message.Message, 0, len(results))
		for _, res := range results {
			m, err := deps.Helpers.CreateResultMessage(ctx, res.Payload, res.Topic)
			if err != nil {
				deps.Metrics.RecordHandlerFailure(deps.Module, handlerName)
				return nil, err
			}
			out = append(out, m)
		}

		deps.Logger.InfoContext(ctx, handlerName+" completed", attr.CorrelationIDFromMsg(msg))
		deps.Metrics.RecordHandlerSuccess(deps.Module, handlerName)
		return out, nil
	}
}
