package shoothandlers

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	shootservice "github.com/clay-target-club/claybot/app/modules/shoot/application"
	shootevents "github.com/clay-target-club/claybot/app/modules/shoot/events"
	"github.com/clay-target-club/claybot/internal/handlerwrapper"
)

// HandleSheetImportRequested parses an uploaded score sheet and publishes the
// imported or failed event. Per-row errors ride along on the success payload;
// only whole-sheet rejections fail the import.
func (h *ShootHandlers) HandleSheetImportRequested() message.HandlerFunc {
	return handlerwrapper.Wrap(h.deps, "HandleSheetImportRequested",
		func(ctx context.Context, payload *shootevents.SheetImportRequestedPayloadV1) ([]handlerwrapper.Result, error) {
			result, err := h.service.ImportScoreSheet(ctx, shootservice.ImportSheetRequest{
				TournamentID: payload.TournamentID,
				DisciplineID: payload.DisciplineID,
				Sheet:        payload.Sheet,
				SubmittedBy:  payload.SubmittedBy,
			})
			if err != nil {
				return nil, err
			}

			if result.IsFailure() {
				return []handlerwrapper.Result{{
					Topic: shootevents.SheetImportFailedV1,
					Payload: shootevents.SheetImportFailedPayloadV1{
						TournamentID: payload.TournamentID,
						DisciplineID: payload.DisciplineID,
						Reason:       (*result.Failure).Reason,
					},
				}}, nil
			}

			return []handlerwrapper.Result{{
				Topic: shootevents.SheetImportedV1,
				Payload: shootevents.SheetImportedPayloadV1{
					TournamentID: payload.TournamentID,
					DisciplineID: payload.DisciplineID,
					ShootsLogged: (*result.Success).Imported,
				},
			}}, nil
		})
}
