// Package leaderboardservice rebuilds standings, runs tie detection, and
// exports the leaderboard as a workbook.
package leaderboardservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	athletedb "github.com/clay-target-club/claybot/app/modules/athlete/infrastructure/repositories"
	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
	leaderboarddb "github.com/clay-target-club/claybot/app/modules/leaderboard/infrastructure/repositories"
	shootdb "github.com/clay-target-club/claybot/app/modules/shoot/infrastructure/repositories"
	tournamentdb "github.com/clay-target-club/claybot/app/modules/tournament/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

const module = "leaderboard"

// ShootOffLookup exposes the shoot-off state tie detection needs without
// importing the shoot-off module directly.
type ShootOffLookup interface {
	ActiveForTournament(ctx context.Context, tournamentID sharedtypes.TournamentID) ([]leaderboarddomain.ExistingShootOff, error)
}

// LeaderboardService builds standings and proposes shoot-offs.
type LeaderboardService struct {
	repo        leaderboarddb.Repository
	shoots      shootdb.Repository
	tournaments tournamentdb.Repository
	athletes    athletedb.Repository
	shootOffs   ShootOffLookup
	logger      *slog.Logger
	metrics     observability.OperationMetrics
	tracer      trace.Tracer
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(
	repo leaderboarddb.Repository,
	shoots shootdb.Repository,
	tournaments tournamentdb.Repository,
	athletes athletedb.Repository,
	shootOffs ShootOffLookup,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) *LeaderboardService {
	return &LeaderboardService{
		repo:        repo,
		shoots:      shoots,
		tournaments: tournaments,
		athletes:    athletes,
		shootOffs:   shootOffs,
		logger:      logger,
		metrics:     metrics,
		tracer:      tracer,
	}
}

type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

func withTelemetry[S any, F any](
	s *LeaderboardService,
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
