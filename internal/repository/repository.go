package repository

import (
	"time"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/sheet"
)

// Repository 모든 Repository 의 집합 진입점
type Repository struct {
	Roster       RosterRepository
	Ledger       LedgerRepository
	TestSchedule TestScheduleRepository
	Guide        GuideRepository
}

// NewRepository 시트 저장소 위에 Repository 집합을 만든다
func NewRepository(store sheet.TableStore, cacheTTL, retryDelay time.Duration, logger *zap.Logger) *Repository {
	return &Repository{
		Roster:       NewRosterRepo(store, cacheTTL, retryDelay, logger),
		Ledger:       NewLedgerRepo(store, logger),
		TestSchedule: NewTestScheduleRepo(store, logger),
		Guide:        NewGuideRepo(store),
	}
}
