package athletedb

import "errors"

// ErrAthleteNotFound indicates the requested athlete does not exist.
var ErrAthleteNotFound = errors.New("athlete not found")
