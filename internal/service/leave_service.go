package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/dto"
	"github.com/JKM6230/roun-app/internal/model"
	"github.com/JKM6230/roun-app/internal/repository"
	"github.com/JKM6230/roun-app/pkg/apperr"
)

// ── 장기 결석 모듈 업무 오류 ──

var (
	ErrLeaveBadDate      = errors.New("날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)")
	ErrLeaveInvalidRange = errors.New("종료일이 시작일보다 앞설 수 없습니다")
)

// LeaveService 장기 결석 등록/해제와 자동 반영 업무 인터페이스
type LeaveService interface {
	// Register 장기 결석 구간 등록. 오늘이 구간 안이면 즉시 결석 처리한다
	Register(ctx context.Context, name string, req *dto.RegisterLeaveRequest) error
	// Clear 장기 결석 해제（셀 비움）. 이미 찍힌 출석 표기는 건드리지 않는다
	Clear(ctx context.Context, name string) error
	// ApplyAutoMarking 오늘 기준으로 전 원생의 장기 결석을 반영한다.
	// 미표기 원생만 결석 처리하고, 만료된 구간은 셀을 비운다.
	// 몇 번을 불러도 결과가 같다
	ApplyAutoMarking(ctx context.Context, today time.Time) error
}

type leaveService struct {
	repo   *repository.Repository
	loc    *time.Location
	clock  Clock
	logger *zap.Logger
}

// NewLeaveService LeaveService 인스턴스 생성
func NewLeaveService(repo *repository.Repository, loc *time.Location, clock Clock, logger *zap.Logger) LeaveService {
	return &leaveService{repo: repo, loc: loc, clock: clock, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Register — 장기 결석 등록
// ════════════════════════════════════════════════════════════

func (s *leaveService) Register(ctx context.Context, name string, req *dto.RegisterLeaveRequest) error {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return ErrLeaveBadDate
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return ErrLeaveBadDate
	}
	if end.Before(start) {
		return ErrLeaveInvalidRange
	}

	leave := model.LongTermLeave{Start: start, End: end, Reason: req.Reason}
	if err := s.repo.Roster.UpdateLeave(ctx, name, leave.Format()); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("장기 결석 기록 실패", zap.String("name", name), zap.Error(err))
		return err
	}

	// 오늘이 이미 구간 안이면 다음 조회를 기다리지 않고 바로 반영한다
	return s.ApplyAutoMarking(ctx, s.clock().In(s.loc))
}

func (s *leaveService) Clear(ctx context.Context, name string) error {
	if err := s.repo.Roster.UpdateLeave(ctx, name, ""); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("장기 결석 해제 실패", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// ApplyAutoMarking — 장기 결석 자동 반영
// ════════════════════════════════════════════════════════════
//
// 규칙:
//   - 만료된 구간（종료일 < 오늘）은 장기 결석 셀을 비운다.
//   - 오늘이 구간 안이고 출석이 미표기인 원생만 결석으로 찍는다.
//     이미 손으로 찍은 출석/결석은 절대 덮지 않는다.
//   - 결석 처리 시 비고가 비어 있으면 사유를 비고에 옮겨 적는다.
//     출석부 보관 때 'X' 대신 사유가 남도록.

func (s *leaveService) ApplyAutoMarking(ctx context.Context, today time.Time) error {
	students, err := s.repo.Roster.Load(ctx)
	if err != nil {
		return err
	}

	for i := range students {
		st := &students[i]
		if st.Leave == nil {
			continue
		}

		if st.Leave.Expired(today) {
			if err := s.repo.Roster.UpdateLeave(ctx, st.Name, ""); err != nil {
				s.logger.Error("만료된 장기 결석 해제 실패", zap.String("name", st.Name), zap.Error(err))
				return err
			}
			continue
		}

		if !st.Leave.Covers(today) || st.Attendance != model.AttendanceUnmarked {
			continue
		}

		st.ApplyAttendance(model.AttendanceAbsent)
		if err := s.repo.Roster.UpdateAttendance(ctx, st.Name, st.Attendance, st.Pickup.Confirm, st.Dropoff.Confirm); err != nil {
			s.logger.Error("장기 결석 출석 반영 실패", zap.String("name", st.Name), zap.Error(err))
			return err
		}
		if st.Note == "" && st.Leave.Reason != "" {
			if err := s.repo.Roster.UpdateNote(ctx, st.Name, st.Leave.Reason); err != nil {
				s.logger.Error("장기 결석 사유 기록 실패", zap.String("name", st.Name), zap.Error(err))
				return err
			}
		}
	}
	return nil
}
