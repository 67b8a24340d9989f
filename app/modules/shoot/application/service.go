package shootservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

const module = "shoot"

// ShootService records shoots and imports score-sheet workbooks.
type ShootService struct {
	repo        shootdb.Repository
	tournaments tournamentdb.Repository
	logger      *slog.Logger
	metrics     observability.OperationMetrics
	tracer      trace.Tracer
	limiter     *importLimiter
	maxSheet    int
}

// NewShootService creates a new ShootService.
func NewShootService(
	repo shootdb.Repository,
	tournaments tournamentdb.Repository,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	importRatePerMinute int,
	maxSheetBytes int,
) *ShootService {
	if maxSheetBytes <= 0 {
		maxSheetBytes = 5 << 20
	}
	return &ShootService{
		repo:        repo,
		tournaments: tournaments,
		logger:      logger,
		metrics:     metrics,
		tracer:      tracer,
		limiter:     newImportLimiter(importRatePerMinute),
		maxSheet:    maxSheetBytes,
	}
}

type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func withTelemetry[S any, F any](
	s *ShootService,
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
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Any("failure_payload", *result.Failure),
		)
		s.metrics.RecordOperationFailure(ctx, module, operationName)
	}

	if result.IsSuccess() {
		s.metrics.RecordOperationSuccess(ctx, module, operationName)
	}

	return result, nil
}
