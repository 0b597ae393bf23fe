package handler

import "github.com/JKM6230/roun-app/internal/service"

// Handler 모든 Handler 의 집합 진입점
type Handler struct {
	Auth         *AuthHandler
	Roster       *RosterHandler
	Leave        *LeaveHandler
	Manifest     *ManifestHandler
	Archive      *ArchiveHandler
	TestSchedule *TestScheduleHandler
	Guide        *GuideHandler
	Export       *ExportHandler
}

// NewHandler Handler 집합 생성
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Roster:       NewRosterHandler(svc.Roster),
		Leave:        NewLeaveHandler(svc.Leave),
		Manifest:     NewManifestHandler(svc.Manifest),
		Archive:      NewArchiveHandler(svc.Archive),
		TestSchedule: NewTestScheduleHandler(svc.TestSchedule),
		Guide:        NewGuideHandler(svc.Guide),
		Export:       NewExportHandler(svc.Export),
	}
}
