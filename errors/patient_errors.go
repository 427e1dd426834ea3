// api/errors/patient_errors.go
package errors

import "errors"

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrInvalidPatientData = errors.New("invalid patient data")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
