// api/directory/audit.go
package directory

import (
	"context"
	"encoding/json"

	"github.com/hospicore/facility/api/model"
)

// auditFeed covers the shapes the backend has answered with over time:
// a bare array, {"data": [...]} or {"data": {"body": {"data": [...]}}}.
type auditFeed struct {
	Data json.RawMessage `json:"data"`
}

type auditFeedBody struct {
	Body struct {
		Data []model.LogEntry `json:"data"`
	} `json:"body"`
}

// ListLogEntries fetches the append-only audit feed, newest first.
func (c *Client) ListLogEntries(ctx context.Context, sess model.Session) ([]model.LogEntry, error) {
	resp, err := c.request(ctx, sess).
		Get("/bitacora/lista/")
	if err := wrap(resp, err); err != nil {
		return nil, err
	}

	entries, err := decodeAuditFeed(resp.Body())
	if err != nil {
		return nil, err
	}

	// The backend appends; the screens read newest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func decodeAuditFeed(body []byte) ([]model.LogEntry, error) {
	var entries []model.LogEntry
	if err := json.Unmarshal(body, &entries); err == nil {
		return entries, nil
	}

	var feed auditFeed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(feed.Data, &entries); err == nil {
		return entries, nil
	}

	var nested auditFeedBody
	if err := json.Unmarshal(feed.Data, &nested); err != nil {
		return nil, err
	}
	return nested.Body.Data, nil
}
