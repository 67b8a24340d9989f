package shootservice

import (
	"context"
	"fmt"

	"github.com/clay-target-club/claybot/app/modules/shoot/application/parsers"
	tournamentdomain "github.com/clay-target-club/claybot/app/modules/tournament/domain"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// ImportScoreSheet parses an XLSX score sheet and records a shoot for each
// valid row. Rows that fail to parse or validate are reported individually
// and do not abort the import.
func (s *ShootService) ImportScoreSheet(ctx context.Context, req ImportSheetRequest) (results.OperationResult[*ImportSheetSuccess, *ImportSheetFailure], error) {
	return withTelemetry(s, ctx, "ImportScoreSheet", func(ctx context.Context) (results.OperationResult[*ImportSheetSuccess, *ImportSheetFailure], error) {
		if !s.limiter.allow(req.SubmittedBy) {
			return results.Failure[*ImportSheetSuccess](&ImportSheetFailure{Reason: ErrImportRateLimited.Error()}), nil
		}
		if len(req.Sheet) > s.maxSheet {
			return results.Failure[*ImportSheetSuccess](&ImportSheetFailure{Reason: ErrSheetTooLarge.Error()}), nil
		}

		tournament, err := s.tournaments.Get(ctx, req.TournamentID)
		if err != nil {
			return results.OperationResult[*ImportSheetSuccess, *ImportSheetFailure]{}, fmt.Errorf("loading tournament: %w", err)
		}
		if tournament.Status == tournamentdomain.StatusCompleted {
			return results.Failure[*ImportSheetSuccess](&ImportSheetFailure{
				Reason: "tournament is completed and no longer accepts scores",
			}), nil
		}
		if _, ok := tournament.Discipline(req.DisciplineID); !ok {
			return results.Failure[*ImportSheetSuccess](&ImportSheetFailure{
				Reason: fmt.Sprintf("tournament has no discipline %q", req.DisciplineID),
			}), nil
		}

		rows, rowErrors, err := parsers.ParseScoreSheet(req.Sheet)
		if err != nil {
			return results.Failure[*ImportSheetSuccess](&ImportSheetFailure{Reason: err.Error()}), nil
		}

		summary := &ImportSheetSuccess{}
		for _, re := range rowErrors {
			summary.RowErrors = append(summary.RowErrors, ImportRowError{Row: re.Row, Reason: re.Reason})
			summary.Skipped++
		}

		for _, row := range rows {
			result, err := s.LogShootScores(ctx, LogScoresRequest{
				AthleteID:    row.AthleteID,
				TournamentID: req.TournamentID,
				DisciplineID: req.DisciplineID,
				Date:         row.Date,
				Scores:       row.Scores,
				Source:       "sheet_import",
				Overwrite:    req.Overwrite,
			})
			if err != nil {
				return results.OperationResult[*ImportSheetSuccess, *ImportSheetFailure]{}, fmt.Errorf("recording row %d: %w", row.RowNumber, err)
			}
			if result.IsFailure() {
				summary.RowErrors = append(summary.RowErrors, ImportRowError{Row: row.RowNumber, Reason: (*result.Failure).Reason})
				summary.Skipped++
				continue
			}
			summary.Imported++
		}

		s.logger.InfoContext(ctx, "Score sheet imported",
			attr.ExtractCorrelationID(ctx),
			attr.TournamentID("tournament_id", req.TournamentID),
			attr.String("discipline_id", string(req.DisciplineID)),
			attr.Int("imported", summary.Imported),
			attr.Int("skipped", summary.Skipped),
		)

		return results.Success[*ImportSheetSuccess, *ImportSheetFailure](summary), nil
	})
}
