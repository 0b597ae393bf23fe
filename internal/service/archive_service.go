package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/dto"
	"github.com/JKM6230/roun-app/internal/repository"
)

// ArchiveService 하루치 출석 보관과 작업 필드 초기화 업무 인터페이스.
// 보관과 초기화는 별도 연산이다. 보관이 실패하면 명단은 그대로 남아
// 원인을 고친 뒤 다시 보관할 수 있다
type ArchiveService interface {
	// Archive 오늘자 표식을 출석부에 날짜 열 하나로 추가한다
	Archive(ctx context.Context) (*dto.ArchiveResponse, error)
	// Reset 전 원생의 출석/구간/비고 작업 필드를 비운다
	Reset(ctx context.Context) (*dto.ResetResponse, error)
}

type archiveService struct {
	repo   *repository.Repository
	loc    *time.Location
	clock  Clock
	logger *zap.Logger
}

// NewArchiveService ArchiveService 인스턴스 생성
func NewArchiveService(repo *repository.Repository, loc *time.Location, clock Clock, logger *zap.Logger) ArchiveService {
	return &archiveService{repo: repo, loc: loc, clock: clock, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Archive — 하루치 출석 보관
// ════════════════════════════════════════════════════════════
//
// 표식 규칙: 출석 'O', 결석인데 비고가 있으면 비고 원문, 결석 'X',
// 미표기는 빈 칸. 열 헤더는 MM/DD. 명단 순서 그대로 기록한다.

func (s *archiveService) Archive(ctx context.Context) (*dto.ArchiveResponse, error) {
	today := s.clock().In(s.loc)

	students, err := s.repo.Roster.Load(ctx)
	if err != nil {
		s.logger.Error("명단 조회 실패", zap.Error(err))
		return nil, err
	}

	names := make([]string, 0, len(students))
	marks := make([]string, 0, len(students))
	for i := range students {
		names = append(names, students[i].Name)
		marks = append(marks, students[i].DayMark())
	}

	dateHeader := today.Format("01/02")
	if err := s.repo.Ledger.AppendColumn(ctx, names, marks, dateHeader); err != nil {
		s.logger.Error("출석부 보관 실패", zap.String("date", dateHeader), zap.Error(err))
		return nil, err
	}

	s.logger.Info("출석부 보관 완료", zap.String("date", dateHeader), zap.Int("count", len(names)))
	return &dto.ArchiveResponse{
		OK:       true,
		Message:  dateHeader + " 열에 보관했습니다",
		Date:     today.Format("2006-01-02"),
		Archived: len(names),
	}, nil
}

func (s *archiveService) Reset(ctx context.Context) (*dto.ResetResponse, error) {
	students, err := s.repo.Roster.Load(ctx)
	if err != nil {
		s.logger.Error("명단 조회 실패", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Roster.ResetDay(ctx); err != nil {
		s.logger.Error("작업 필드 초기화 실패", zap.Error(err))
		return nil, err
	}

	s.logger.Info("작업 필드 초기화 완료", zap.Int("count", len(students)))
	return &dto.ResetResponse{
		OK:      true,
		Message: "오늘 작업 필드를 비웠습니다",
		Cleared: len(students),
	}, nil
}
