package shootservice

import "errors"

var (
	// ErrImportRateLimited is returned when a submitter exceeds the sheet
	// import rate.
	ErrImportRateLimited = errors.New("sheet import rate limit exceeded")

	// ErrSheetTooLarge is returned when an uploaded workbook exceeds the
	// configured size cap.
	ErrSheetTooLarge = errors.New("score sheet exceeds maximum size")
)
