package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/model"
	"github.com/JKM6230/roun-app/internal/repository"
)

// 테스트 기준일: 2025-01-13 월요일
var testMonday = time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func setupRosterService(students ...model.Student) (RosterService, *mockRosterRepo) {
	rosterRepo := newMockRosterRepo(students...)
	repo := &repository.Repository{
		Roster: rosterRepo,
		Ledger: newMockLedgerRepo(),
	}
	logger := zap.NewNop()
	clock := fixedClock(testMonday)
	leave := NewLeaveService(repo, time.UTC, clock, logger)
	svc := NewRosterService(repo, leave, time.UTC, clock, logger)
	return svc, rosterRepo
}

func testStudent(name string) model.Student {
	return model.Student{
		Name:          name,
		Cohort:        "유치부",
		UsesTransport: true,
	}
}

// ── GetToday 테스트 ──

func TestGetToday_ResolvesLegsForWeekday(t *testing.T) {
	st := testStudent("김지안")
	st.Pickup = model.TransportLeg{
		VehicleRaw:  "1호차(월수금), 2호차(화목)",
		TimeRaw:     "15:30(월수금), 16:20(화목)",
		LocationRaw: "유치원 정문",
	}
	svc, _ := setupRosterService(st)

	resp, err := svc.GetToday(context.Background())
	if err != nil {
		t.Fatalf("GetToday 실패: %v", err)
	}
	if resp.Weekday != "월" {
		t.Fatalf("기대 요일=월, 실제=%s", resp.Weekday)
	}
	got := resp.Students[0].Pickup
	if got.Vehicle != "1호차" {
		t.Errorf("기대 차량=1호차, 실제=%s", got.Vehicle)
	}
	if got.Time != "15:30" {
		t.Errorf("기대 시간=15:30, 실제=%s", got.Time)
	}
	if got.Location != "유치원 정문" {
		t.Errorf("요일 무관 장소는 그대로여야 함, 실제=%s", got.Location)
	}
}

func TestGetToday_NoClauseForToday(t *testing.T) {
	st := testStudent("이도윤")
	st.Pickup.VehicleRaw = "2호차(화목)"
	svc, _ := setupRosterService(st)

	resp, err := svc.GetToday(context.Background())
	if err != nil {
		t.Fatalf("GetToday 실패: %v", err)
	}
	if v := resp.Students[0].Pickup.Vehicle; v != "" {
		t.Errorf("월요일에는 차량이 비어야 함, 실제=%q", v)
	}
}

func TestGetToday_AppliesLeaveBeforeView(t *testing.T) {
	st := testStudent("박서준")
	st.Leave = &model.LongTermLeave{
		Start:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		Reason: "가족 여행",
	}
	svc, repo := setupRosterService(st)

	resp, err := svc.GetToday(context.Background())
	if err != nil {
		t.Fatalf("GetToday 실패: %v", err)
	}
	got := resp.Students[0]
	if got.Attendance != "absent" {
		t.Errorf("장기 결석 구간 중에는 결석이어야 함, 실제=%s", got.Attendance)
	}
	if got.Pickup.Confirm != "absent" || got.Dropoff.Confirm != "absent" {
		t.Error("결석 연동이 두 구간에 반영되어야 함")
	}
	if got.Note != "가족 여행" {
		t.Errorf("사유가 비고로 옮겨져야 함, 실제=%q", got.Note)
	}
	if repo.find("박서준").Attendance != model.AttendanceAbsent {
		t.Error("자동 반영이 저장소까지 기록되어야 함")
	}
}

// ── SetAttendance 테스트 ──

func TestSetAttendance_AbsentCascadesToLegs(t *testing.T) {
	st := testStudent("김지안")
	st.Pickup.Confirm = model.ConfirmBoarded
	svc, repo := setupRosterService(st)

	if err := svc.SetAttendance(context.Background(), "김지안", "absent"); err != nil {
		t.Fatalf("SetAttendance 실패: %v", err)
	}

	got := repo.find("김지안")
	if got.Attendance != model.AttendanceAbsent {
		t.Errorf("기대 출석=결석, 실제=%s", got.Attendance)
	}
	if got.Pickup.Confirm != model.ConfirmAbsent || got.Dropoff.Confirm != model.ConfirmAbsent {
		t.Error("결석은 두 구간을 모두 결석으로 만든다")
	}
}

func TestSetAttendance_UnmarkedClearsLegs(t *testing.T) {
	st := testStudent("김지안")
	st.Attendance = model.AttendanceAbsent
	st.Pickup.Confirm = model.ConfirmAbsent
	st.Dropoff.Confirm = model.ConfirmAbsent
	svc, repo := setupRosterService(st)

	if err := svc.SetAttendance(context.Background(), "김지안", "unmarked"); err != nil {
		t.Fatalf("SetAttendance 실패: %v", err)
	}

	got := repo.find("김지안")
	if got.Attendance != model.AttendanceUnmarked {
		t.Error("미표기로 되돌아가야 함")
	}
	if got.Pickup.Confirm != model.ConfirmNone || got.Dropoff.Confirm != model.ConfirmNone {
		t.Error("미표기는 두 구간을 미확인으로 되돌린다")
	}
}

func TestSetAttendance_PresentKeepsLegConfirms(t *testing.T) {
	st := testStudent("김지안")
	st.Pickup.Confirm = model.ConfirmBoarded
	svc, repo := setupRosterService(st)

	if err := svc.SetAttendance(context.Background(), "김지안", "present"); err != nil {
		t.Fatalf("SetAttendance 실패: %v", err)
	}

	got := repo.find("김지안")
	if got.Attendance != model.AttendancePresent {
		t.Errorf("기대 출석=출석, 실제=%s", got.Attendance)
	}
	if got.Pickup.Confirm != model.ConfirmBoarded {
		t.Error("출석 표기는 이미 찍힌 탑승 확인을 건드리지 않는다")
	}
}

func TestSetAttendance_UnknownState(t *testing.T) {
	svc, _ := setupRosterService(testStudent("김지안"))

	err := svc.SetAttendance(context.Background(), "김지안", "late")
	if !errors.Is(err, ErrUnknownState) {
		t.Errorf("기대 ErrUnknownState, 실제: %v", err)
	}
}

func TestSetAttendance_StudentNotFound(t *testing.T) {
	svc, repo := setupRosterService(testStudent("김지안"))

	err := svc.SetAttendance(context.Background(), "없는원생", "present")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("기대 ErrStudentNotFound, 실제: %v", err)
	}
	if repo.writes != 0 {
		t.Errorf("없는 원생에는 쓰기가 없어야 함, 실제=%d", repo.writes)
	}
}

// ── SetLegConfirm 테스트 ──

func TestSetLegConfirm_NoUpwardCascade(t *testing.T) {
	svc, repo := setupRosterService(testStudent("김지안"))

	if err := svc.SetLegConfirm(context.Background(), "김지안", "pickup", "boarded"); err != nil {
		t.Fatalf("SetLegConfirm 실패: %v", err)
	}

	got := repo.find("김지안")
	if got.Pickup.Confirm != model.ConfirmBoarded {
		t.Error("등원 확인이 기록되어야 함")
	}
	if got.Attendance != model.AttendanceUnmarked {
		t.Error("구간 확인은 출석 상태로 역전파하지 않는다")
	}
	if got.Dropoff.Confirm != model.ConfirmNone {
		t.Error("다른 구간은 건드리지 않는다")
	}
}

func TestSetLegConfirm_UnknownLeg(t *testing.T) {
	svc, _ := setupRosterService(testStudent("김지안"))

	err := svc.SetLegConfirm(context.Background(), "김지안", "sideways", "boarded")
	if !errors.Is(err, ErrUnknownLeg) {
		t.Errorf("기대 ErrUnknownLeg, 실제: %v", err)
	}
}

// ── SetNote 테스트 ──

func TestSetNote_OverwriteAndClear(t *testing.T) {
	svc, repo := setupRosterService(testStudent("김지안"))

	if err := svc.SetNote(context.Background(), "김지안", "병원 진료"); err != nil {
		t.Fatalf("SetNote 실패: %v", err)
	}
	if repo.find("김지안").Note != "병원 진료" {
		t.Error("비고가 기록되어야 함")
	}

	if err := svc.SetNote(context.Background(), "김지안", ""); err != nil {
		t.Fatalf("SetNote(빈 값) 실패: %v", err)
	}
	if repo.find("김지안").Note != "" {
		t.Error("빈 값은 비고를 지운다")
	}
}
