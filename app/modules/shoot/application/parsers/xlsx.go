// Package parsers turns uploaded score-sheet workbooks into shoot rows.
package parsers

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	shootdomain "github.com/clay-target-club/claybot/app/modules/shoot/domain"
	sharedtypes "github.com/clay-target-club/claybot/app/shared/types"
)

// SheetRow is one athlete's line from a score sheet.
type SheetRow struct {
	RowNumber int
	AthleteID sharedtypes.AthleteID
	Date      time.Time
	Scores    []shootdomain.StationScore
}

// RowError reports a sheet row that could not be parsed.
type RowError struct {
	Row    int
	Reason string
}

// ErrNoScoreColumns is returned when the header row defines no station columns.
var ErrNoScoreColumns = errors.New("sheet header defines no station columns")

// Expected layout: row 1 is a header of "Athlete ID", "Date", then one column
// per station titled "Station N (possible)", e.g. "Station 1 (25)". Each
// following row carries the athlete UUID, an ISO date, and hit counts.
func ParseScoreSheet(data []byte) ([]SheetRow, []RowError, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("reading rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, errors.New("sheet is empty")
	}

	possibles, err := parseHeader(rows[0])
	if err != nil {
		return nil, nil, err
	}

	var (
		parsed    []SheetRow
		rowErrors []RowError
	)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if isBlank(row) {
			continue
		}
		sr, err := parseRow(rowNum, row, possibles)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Row: rowNum, Reason: err.Error()})
			continue
		}
		parsed = append(parsed, sr)
	}
	return parsed, rowErrors, nil
}

func parseHeader(header []string) ([]int, error) {
	if len(header) < 3 {
		return nil, ErrNoScoreColumns
	}
	possibles := make([]int, 0, len(header)-2)
	for _, cell := range header[2:] {
		open := strings.Index(cell, "(")
		end := strings.Index(cell, ")")
		if open < 0 || end <= open {
			return nil, fmt.Errorf("station header %q missing possible count", cell)
		}
		possible, err := strconv.Atoi(strings.TrimSpace(cell[open+1 : end]))
		if err != nil || possible <= 0 {
			return nil, fmt.Errorf("station header %q has invalid possible count", cell)
		}
		possibles = append(possibles, possible)
	}
	if len(possibles) == 0 {
		return nil, ErrNoScoreColumns
	}
	return possibles, nil
}

func parseRow(rowNum int, row []string, possibles []int) (SheetRow, error) {
	if len(row) < 2 {
		return SheetRow{}, errors.New("row is missing athlete and date cells")
	}

	athleteUUID, err := uuid.Parse(strings.TrimSpace(row[0]))
	if err != nil {
		return SheetRow{}, fmt.Errorf("invalid athlete id %q", row[0])
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(row[1]))
	if err != nil {
		// Excel renders dates in m-d-y by default.
		date, err = time.Parse("1-2-06", strings.TrimSpace(row[1]))
		if err != nil {
			return SheetRow{}, fmt.Errorf("invalid date %q", row[1])
		}
	}

	scores := make([]shootdomain.StationScore, 0, len(possibles))
	for station, possible := range possibles {
		col := station + 2
		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			return SheetRow{}, fmt.Errorf("station %d has no score", station+1)
		}
		hits, err := strconv.Atoi(strings.TrimSpace(row[col]))
		if err != nil {
			return SheetRow{}, fmt.Errorf("station %d score %q is not a number", station+1, row[col])
		}
		scores = append(scores, shootdomain.StationScore{
			Station:  station + 1,
			Hits:     hits,
			Possible: possible,
		})
	}

	return SheetRow{
		RowNumber: rowNum,
		AthleteID: sharedtypes.AthleteID(athleteUUID),
		Date:      date.UTC(),
		Scores:    scores,
	}, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
