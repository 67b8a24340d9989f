// Package shootoffservice drives the shoot-off lifecycle. Every mutating
// operation loads the aggregate under a row lock inside a transaction, so
// concurrent submissions for the same shoot-off serialize instead of
// interleaving.
package shootoffservice

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	shootoffdb "github.com/clay-target-club/claybot/app/modules/shootoff/infrastructure/repositories"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

const module = "shootoff"

// TxRunner runs a function inside a database transaction. *bun.DB satisfies
// it.
type TxRunner interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
}

// ShootOffService manages shoot-off aggregates.
type ShootOffService struct {
	db          TxRunner
	idb         bun.IDB
	repo        shootoffdb.Repository
	tournaments tournamentdb.Repository
	athletes    athletedb.Repository
	logger      *slog.Logger
	metrics     observability.OperationMetrics
	tracer      trace.Tracer
}

// NewShootOffService creates a new ShootOffService. idb is the non-
// transactional handle used for reads.
func NewShootOffService(
	db TxRunner,
	idb bun.IDB,
	repo shootoffdb.Repository,
	tournaments tournamentdb.Repository,
	athletes athletedb.Repository,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) *ShootOffService {
	return &ShootOffService{
		db:          db,
		idb:         idb,
		repo:        repo,
		tournaments: tournaments,
		athletes:    athletes,
		logger:      logger,
		metrics:     metrics,
		tracer:      tracer,
	}
}

func (s *ShootOffService) runInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	return s.db.RunInTx(ctx, &sql.TxOptions{}, fn)
}

type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

func withTelemetry[S any, F any](
	s *ShootOffService,
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
