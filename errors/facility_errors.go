// api/errors/facility_errors.go
package errors

import "errors"

var (
	ErrFloorNotFound   = errors.New("floor not found")
	ErrFloorHasBeds    = errors.New("floor still owns beds")
	ErrInvalidCount    = errors.New("count must be at least 1")
	ErrBedNotFound     = errors.New("bed not found")
	ErrBedNotDeletable = errors.New("bed cannot be deleted")
	ErrBedOccupied     = errors.New("bed already occupied")
)
