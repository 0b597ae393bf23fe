package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/config"
	"github.com/JKM6230/roun-app/internal/repository"
	"github.com/JKM6230/roun-app/pkg/jwt"
)

// Service 모든 Service 의 집합 진입점
type Service struct {
	Auth         AuthService
	Roster       RosterService
	Leave        LeaveService
	Manifest     ManifestService
	Archive      ArchiveService
	TestSchedule TestScheduleService
	Guide        GuideService
	Export       ExportService
}

// NewService Service 집합 생성.
// Validate 를 통과한 설정이므로 시간대 로드는 실패하지 않는다
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) *Service {
	loc, err := time.LoadLocation(cfg.Roster.Timezone)
	if err != nil {
		loc = time.Local
	}
	clock := Clock(time.Now)

	leave := NewLeaveService(repo, loc, clock, logger)
	manifest := NewManifestService(repo, leave, loc, clock, logger)

	return &Service{
		Auth:         NewAuthService(cfg, jwtMgr, blacklist, logger),
		Roster:       NewRosterService(repo, leave, loc, clock, logger),
		Leave:        leave,
		Manifest:     manifest,
		Archive:      NewArchiveService(repo, loc, clock, logger),
		TestSchedule: NewTestScheduleService(repo, loc, clock, logger),
		Guide:        NewGuideService(repo, logger),
		Export:       NewExportService(manifest, logger),
	}
}
