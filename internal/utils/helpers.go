// Package utils holds the watermill plumbing helpers shared by module
// routers and handlers: payload (un)marshalling with metadata propagation
// and the common middleware set.
package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/clay-target-club/claybot/internal/observability/attr"
)

// Helpers marshals and unmarshals event payloads while keeping correlation
// metadata flowing between messages.
type Helpers interface {
	UnmarshalPayload(msg *message.Message, target any) error
	CreateResultMessage(ctx context.Context, payload any, topic string) (*message.Message, error)
}

type helpers struct{}

// NewHelpers returns the JSON-based Helpers implementation.
func NewHelpers() Helpers { return helpers{} }

func (helpers) UnmarshalPayload(msg *message.Message, target any) error {
	if err := json.Unmarshal(msg.Payload, target); err != nil {
		return fmt.Errorf("failed to unmarshal payload into %T: %w", target, err)
	}
	return nil
}

func (helpers) CreateResultMessage(ctx context.Context, payload any, topic string) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for topic %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("topic", topic)
	if corr := attr.ExtractCorrelationID(ctx).Value.String(); corr != "" {
		middleware.SetCorrelationID(corr, msg)
	}
	return msg, nil
}

// MiddlewareHelpers builds the shared router middleware.
type MiddlewareHelpers interface {
	CommonMetadataMiddleware(module string) message.HandlerMiddleware
}

type middlewareHelpers struct{}

// NewMiddlewareHelper returns the standard middleware helpers.
func NewMiddlewareHelper() MiddlewareHelpers { return middlewareHelpers{} }

// CommonMetadataMiddleware stamps the handling module on every produced
// message and copies the correlation ID into the handler context.
func (middlewareHelpers) CommonMetadataMiddleware(module string) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			corr := middleware.MessageCorrelationID(msg)
			msg.SetContext(attr.WithCorrelationID(msg.Context(), corr))

			produced, err := h(msg)
			if err != nil {
				return nil, err
			}
			for _, m := range produced {
				m.Metadata.Set("handled_by", module)
				if middleware.MessageCorrelationID(m) == "" && corr != "" {
					middleware.SetCorrelationID(corr, m)
				}
			}
			return produced, nil
		}
	}
}
