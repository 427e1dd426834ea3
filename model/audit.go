package model

import "time"

// LogEntry is one append-only audit record produced by the backend for every
// mutating action. Read-only on this side.
type LogEntry struct {
	Timestamp   time.Time `json:"fechamovimiento"`
	HTTPMethod  string    `json:"movimiento"`
	Description string    `json:"metodo"`
	Username    string    `json:"nombreUsuario"`
}
