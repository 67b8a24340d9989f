package leaderboardservice

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	athletedomain "github.com/clay-target-club/claybot/app/modules/athlete/domain"
	leaderboarddomain "github.com/clay-target-club/claybot/app/modules/leaderboard/domain"
	leaderboarddb "github.com/clay-target-club/claybot/app/modules/leaderboard/infrastructure/repositories"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
	"github.com/clay-target-club/claybot/internal/observability/attr"
	"github.com/clay-target-club/claybot/internal/results"
)

// ExportStandings renders the stored leaderboard snapshot as an XLSX
// workbook. The snapshot must have been built first.
func (s *LeaderboardService) ExportStandings(ctx context.Context, tournamentID sharedtypes.TournamentID) (results.OperationResult[[]byte, *LeaderboardFailure], error) {
	return withTelemetry(s, ctx, "ExportStandings", func(ctx context.Context) (results.OperationResult[[]byte, *LeaderboardFailure], error) {
		standings, generatedAt, err := s.repo.GetCurrent(ctx, tournamentID)
		if err != nil {
			if errors.Is(err, leaderboarddb.ErrSnapshotNotFound) {
				return results.Failure[[]byte](&LeaderboardFailure{
					Reason: "no standings have been built for this tournament yet",
				}), nil
			}
			return results.OperationResult[[]byte, *LeaderboardFailure]{}, fmt.Errorf("loading snapshot: %w", err)
		}

		athletes, err := s.athletesFor(ctx, standings)
		if err != nil {
			return results.OperationResult[[]byte, *LeaderboardFailure]{}, err
		}

		workbook, err := renderWorkbook(standings, athletes, generatedAt.Format("2006-01-02 15:04"))
		if err != nil {
			return results.OperationResult[[]byte, *LeaderboardFailure]{}, fmt.Errorf("rendering workbook: %w", err)
		}

		s.logger.InfoContext(ctx, "Standings exported",
			attr.ExtractCorrelationID(ctx),
			attr.TournamentID("tournament_id", tournamentID),
			attr.Int("rows", len(standings)),
		)

		return results.Success[[]byte, *LeaderboardFailure](workbook), nil
	})
}

func (s *LeaderboardService) athletesFor(ctx context.Context, standings []leaderboarddomain.Standing) (map[sharedtypes.AthleteID]athletedomain.Athlete, error) {
	ids := make([]sharedtypes.AthleteID, 0, len(standings))
	for _, st := range standings {
		ids = append(ids, st.AthleteID)
	}
	athletes, err := s.athletes.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading athletes: %w", err)
	}
	byID := make(map[sharedtypes.AthleteID]athletedomain.Athlete, len(athletes))
	for _, a := range athletes {
		byID[a.ID] = a
	}
	return byID, nil
}

func renderWorkbook(standings []leaderboarddomain.Standing, athletes map[sharedtypes.AthleteID]athletedomain.Athlete, generatedAt string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []any{"Rank", "Athlete", "Division", "Total Targets", "Total Possible", "Percentage"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, st := range standings {
		name := st.AthleteID.String()
		division := ""
		if a, ok := athletes[st.AthleteID]; ok {
			name = a.Name
			division = string(a.EffectiveDivision())
		}
		row := []any{st.Rank, name, division, st.TotalTargets, st.TotalPossible, fmt.Sprintf("%.1f%%", st.Percentage)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	footer := []any{fmt.Sprintf("Generated %s", generatedAt)}
	cell, err := excelize.CoordinatesToCellName(1, len(standings)+3)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &footer); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
