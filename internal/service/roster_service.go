package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/dto"
	"github.com/JKM6230/roun-app/internal/model"
	"github.com/JKM6230/roun-app/internal/repository"
	"github.com/JKM6230/roun-app/internal/schedule"
	"github.com/JKM6230/roun-app/pkg/apperr"
)

// ── 명단 모듈 업무 오류 ──

var (
	ErrStudentNotFound = errors.New("원생을 찾을 수 없습니다")
	ErrUnknownState    = errors.New("알 수 없는 상태 값입니다")
	ErrUnknownLeg      = errors.New("알 수 없는 차량 구간입니다")
)

// Clock 현재 시각 공급자. 테스트에서 고정 시각을 주입한다
type Clock func() time.Time

// RosterService 오늘자 명단 조회와 출석/구간/비고 변경 업무 인터페이스
type RosterService interface {
	// GetToday 장기 결석 자동 반영 후 오늘 요일 기준으로 해석한 전체 명단
	GetToday(ctx context.Context) (*dto.RosterResponse, error)
	// SetAttendance 출석 상태 변경. 결석/미표기는 두 구간에 연동된다
	SetAttendance(ctx context.Context, name, state string) error
	// SetLegConfirm 단일 구간 확인 변경. 출석 상태로는 역전파하지 않는다
	SetLegConfirm(ctx context.Context, name, leg, state string) error
	// SetNote 비고 덮어쓰기. 빈 문자열이면 지운다
	SetNote(ctx context.Context, name, note string) error
}

type rosterService struct {
	repo   *repository.Repository
	leave  LeaveService
	loc    *time.Location
	clock  Clock
	logger *zap.Logger
}

// NewRosterService RosterService 인스턴스 생성
func NewRosterService(repo *repository.Repository, leave LeaveService, loc *time.Location, clock Clock, logger *zap.Logger) RosterService {
	return &rosterService{repo: repo, leave: leave, loc: loc, clock: clock, logger: logger}
}

func (s *rosterService) today() time.Time {
	return s.clock().In(s.loc)
}

// ════════════════════════════════════════════════════════════
// GetToday — 오늘자 명단 뷰
// ════════════════════════════════════════════════════════════

func (s *rosterService) GetToday(ctx context.Context) (*dto.RosterResponse, error) {
	today := s.today()
	dayCode := schedule.WeekdayCode(today)

	// 조회 전에 장기 결석을 먼저 반영한다.
	// 반영 실패는 조회 자체를 막지 않는다
	if err := s.leave.ApplyAutoMarking(ctx, today); err != nil {
		s.logger.Warn("장기 결석 자동 반영 실패", zap.Error(err))
	}

	students, err := s.repo.Roster.Load(ctx)
	if err != nil {
		s.logger.Error("명단 조회 실패", zap.Error(err))
		return nil, err
	}

	resp := &dto.RosterResponse{
		Date:     today.Format("2006-01-02"),
		Weekday:  dayCode,
		Students: make([]dto.StudentResponse, 0, len(students)),
	}
	for i := range students {
		resp.Students = append(resp.Students, toStudentResponse(&students[i], dayCode))
	}
	return resp, nil
}

func toStudentResponse(st *model.Student, dayCode string) dto.StudentResponse {
	r := dto.StudentResponse{
		Name:          st.Name,
		Cohort:        st.Cohort,
		AttendsToday:  st.AttendsOn(dayCode),
		UsesTransport: st.UsesTransport,
		Attendance:    attendanceToken(st.Attendance),
		Note:          st.Note,
		Pickup:        toLegView(&st.Pickup, dayCode),
		Dropoff:       toLegView(&st.Dropoff, dayCode),
	}
	if st.Leave != nil {
		r.Leave = &dto.LeaveView{
			StartDate: st.Leave.Start.Format("2006-01-02"),
			EndDate:   st.Leave.End.Format("2006-01-02"),
			Reason:    st.Leave.Reason,
		}
	}
	return r
}

// toLegView 반복 표기를 오늘 요일로 해석한 구간 뷰.
// 해석값은 응답에만 존재하며 시트에는 되쓰지 않는다
func toLegView(leg *model.TransportLeg, dayCode string) dto.LegView {
	return dto.LegView{
		Vehicle:  schedule.Resolve(leg.VehicleRaw, dayCode),
		Time:     schedule.Resolve(leg.TimeRaw, dayCode),
		Location: schedule.Resolve(leg.LocationRaw, dayCode),
		Confirm:  confirmToken(leg.Confirm),
	}
}

// ════════════════════════════════════════════════════════════
// SetAttendance — 출석 변경（구간 연동）
// ════════════════════════════════════════════════════════════

func (s *rosterService) SetAttendance(ctx context.Context, name, state string) error {
	target, ok := parseAttendanceToken(state)
	if !ok {
		return ErrUnknownState
	}

	st, err := s.findStudent(ctx, name)
	if err != nil {
		return err
	}

	st.ApplyAttendance(target)
	if err := s.repo.Roster.UpdateAttendance(ctx, name, st.Attendance, st.Pickup.Confirm, st.Dropoff.Confirm); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("출석 기록 실패", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}

func (s *rosterService) SetLegConfirm(ctx context.Context, name, leg, state string) error {
	kind, ok := model.ParseLegKind(leg)
	if !ok {
		return ErrUnknownLeg
	}
	target, ok := parseConfirmToken(state)
	if !ok {
		return ErrUnknownState
	}

	if err := s.repo.Roster.UpdateLegConfirm(ctx, name, kind, target); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("구간 확인 기록 실패", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}

func (s *rosterService) SetNote(ctx context.Context, name, note string) error {
	if err := s.repo.Roster.UpdateNote(ctx, name, note); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("비고 기록 실패", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}

// findStudent 이름으로 현재 캐시 시점의 원생 사본을 찾는다
func (s *rosterService) findStudent(ctx context.Context, name string) (*model.Student, error) {
	students, err := s.repo.Roster.Load(ctx)
	if err != nil {
		s.logger.Error("명단 조회 실패", zap.Error(err))
		return nil, err
	}
	for i := range students {
		if students[i].Name == name {
			return &students[i], nil
		}
	}
	return nil, ErrStudentNotFound
}

// ── API 토큰 ↔ 시트 상태 변환 ──

func attendanceToken(s model.AttendanceState) string {
	switch s {
	case model.AttendancePresent:
		return dto.AttendancePresent
	case model.AttendanceAbsent:
		return dto.AttendanceAbsent
	default:
		return dto.AttendanceUnmarked
	}
}

func parseAttendanceToken(s string) (model.AttendanceState, bool) {
	switch s {
	case dto.AttendanceUnmarked:
		return model.AttendanceUnmarked, true
	case dto.AttendancePresent:
		return model.AttendancePresent, true
	case dto.AttendanceAbsent:
		return model.AttendanceAbsent, true
	}
	return model.AttendanceUnmarked, false
}

func confirmToken(s model.ConfirmState) string {
	switch s {
	case model.ConfirmBoarded:
		return dto.ConfirmBoarded
	case model.ConfirmAbsent:
		return dto.ConfirmAbsent
	default:
		return dto.ConfirmNone
	}
}

func parseConfirmToken(s string) (model.ConfirmState, bool) {
	switch s {
	case dto.ConfirmNone:
		return model.ConfirmNone, true
	case dto.ConfirmBoarded:
		return model.ConfirmBoarded, true
	case dto.ConfirmAbsent:
		return model.ConfirmAbsent, true
	}
	return model.ConfirmNone, false
}
