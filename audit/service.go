// api/audit/service.go
package audit

import (
	"context"
	"time"

	"github.com/hospicore/facility/api/model"
)

type Service interface {
	Mirror(ctx context.Context, entries []model.LogEntry) error
	Query(ctx context.Context, from, to time.Time, username, httpMethod string) ([]Entry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Mirror indexes a batch of feed rows. Indexing is idempotent, so overlapping
// batches from successive feed reads are harmless.
func (s *service) Mirror(ctx context.Context, entries []model.LogEntry) error {
	now := time.Now()
	for _, e := range entries {
		if err := s.repo.Index(ctx, FromLogEntry(e, now)); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Query(ctx context.Context, from, to time.Time, username, httpMethod string) ([]Entry, error) {
	return s.repo.Query(ctx, from, to, username, httpMethod)
}
