// Package statsservice computes athlete aggregates and division averages on
// demand. Nothing here is persisted; every read recomputes from shoots.
package statsservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

const module = "stats"

// StatsService computes aggregates from the shoot and athlete stores.
type StatsService struct {
	shoots   shootdb.Repository
	athletes athletedb.Repository
	logger   *slog.Logger
	metrics  observability.OperationMetrics
	tracer   trace.Tracer
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	shoots shootdb.Repository,
	athletes athletedb.Repository,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) *StatsService {
	return &StatsService{
		shoots:   shoots,
		athletes: athletes,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
	}
}

type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

func withTelemetry[S any, F any](
	s *StatsService,
	ctx context.Context,
	operationName string,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, module, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, module, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, module, operationName)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, module, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.metrics.RecordOperationFailure(ctx, module, operationName)
	}
	if result.IsSuccess() {
		s.metrics.RecordOperationSuccess(ctx, module, operationName)
	}
	return result, nil
}
