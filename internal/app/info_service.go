package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/demo-bd/internal/domain"
	"github.com/jsamuelsen11/demo-bd/internal/ports"
)

// Compile-time check that InfoService implements ports.InfoService.
var _ ports.InfoService = (*InfoService)(nil)

// AppInfo is the static identity of the service.
type AppInfo struct {
	Name        string
	Title       string
	Version     string
	Environment string
}

// InfoService implements ports.InfoService.
type InfoService struct {
	app       AppInfo
	startedAt time.Time
	now       func() time.Time
}

// NewInfoService creates an InfoService whose uptime counts from startedAt.
func NewInfoService(app AppInfo, startedAt time.Time) *InfoService {
	return &InfoService{app: app, startedAt: startedAt, now: time.Now}
}

// Info describes the running service instance.
func (s *InfoService) Info(_ context.Context) domain.ServiceInfo {
	return domain.ServiceInfo{
		AppName:     s.app.Name,
		AppTitle:    s.app.Title,
		Version:     s.app.Version,
		Environment: s.app.Environment,
		StartedAt:   s.startedAt,
		Now:         s.now().UTC(),
	}
}

// StatusMessage returns the greeting of the status endpoint.
func (s *InfoService) StatusMessage(_ context.Context) string {
	return fmt.Sprintf("Hello, Welcome to %s Status API!", s.app.Title)
}
