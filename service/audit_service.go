// api/service/audit_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hospicore/facility/api/audit"
	"github.com/hospicore/facility/api/directory"
	logger "github.com/hospicore/facility/api/logging"
	"github.com/hospicore/facility/api/model"
)

// IAuditService defines the interface for the movement log
type IAuditService interface {
	Feed(ctx context.Context, sess model.Session) ([]model.LogEntry, error)
	Search(ctx context.Context, from, to time.Time, username, httpMethod string) ([]audit.Entry, error)
}

// AuditService reads the backend's movement log and mirrors it into
// Elasticsearch so it stays searchable after the backend trims its own feed.
type AuditService struct {
	api    directory.API
	mirror audit.Service
}

var _ IAuditService = &AuditService{}

func NewAuditService(api directory.API, mirror audit.Service) *AuditService {
	return &AuditService{api: api, mirror: mirror}
}

// Feed returns the movement log newest first. Each read is mirrored into the
// search index in the background; mirroring failures never block the feed.
func (s *AuditService) Feed(ctx context.Context, sess model.Session) ([]model.LogEntry, error) {
	entries, err := s.api.ListLogEntries(ctx, sess)
	if err != nil {
		return nil, err
	}

	go func() {
		mirrorCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.mirror.Mirror(mirrorCtx, entries); err != nil {
			logger.Warn("Failed to mirror movement log", zap.Error(err), zap.Int("count", len(entries)))
		}
	}()

	return entries, nil
}

func (s *AuditService) Search(ctx context.Context, from, to time.Time, username, httpMethod string) ([]audit.Entry, error) {
	return s.mirror.Query(ctx, from, to, username, httpMethod)
}
