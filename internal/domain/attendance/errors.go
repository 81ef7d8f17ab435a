package attendance

import "errors"

// Attendance domain errors
var (
	ErrConfirmationRequired = errors.New("you must confirm attendance")
	ErrDuplicateRecord      = errors.New("attendance already marked for this date")
	ErrPersistenceFailure   = errors.New("something went wrong while marking attendance")
)
