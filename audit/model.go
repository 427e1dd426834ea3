// api/audit/model.go
package audit

import (
	"time"

	"github.com/hospicore/facility/api/model"
)

// Entry mirrors one row of the backend's movement log into Elasticsearch so
// administrators can search it by time range, user or verb.
type Entry struct {
	Timestamp   time.Time `json:"timestamp"`
	Username    string    `json:"username"`
	HTTPMethod  string    `json:"http_method"`
	Description string    `json:"description"`
}

// FromLogEntry lifts a backend feed row into an indexable entry. Rows with no
// timestamp keep the mirror time.
func FromLogEntry(e model.LogEntry, now time.Time) Entry {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = now
	}
	return Entry{
		Timestamp:   ts,
		Username:    e.Username,
		HTTPMethod:  e.HTTPMethod,
		Description: e.Description,
	}
}
