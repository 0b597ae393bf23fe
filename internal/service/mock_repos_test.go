package service

import (
	"context"
	"time"

	"github.com/JKM6230/roun-app/internal/model"
	"github.com/JKM6230/roun-app/pkg/apperr"
)

// ── Mock RosterRepository ──
//
// 실제 Repository 처럼 원생 목록을 명단 순서로 들고 셀 대신 구조체를 고친다

type mockRosterRepo struct {
	students []model.Student

	loadErr   error
	writeErr  error
	loadCalls int
	writes    int
}

func newMockRosterRepo(students ...model.Student) *mockRosterRepo {
	return &mockRosterRepo{students: students}
}

func (m *mockRosterRepo) find(name string) *model.Student {
	for i := range m.students {
		if m.students[i].Name == name {
			return &m.students[i]
		}
	}
	return nil
}

func (m *mockRosterRepo) Load(_ context.Context) ([]model.Student, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	m.loadCalls++
	out := make([]model.Student, len(m.students))
	copy(out, m.students)
	for i := range out {
		if out[i].Leave != nil {
			leave := *out[i].Leave
			out[i].Leave = &leave
		}
	}
	return out, nil
}

func (m *mockRosterRepo) Invalidate() {}

func (m *mockRosterRepo) UpdateAttendance(_ context.Context, name string, attendance model.AttendanceState, pickup, dropoff model.ConfirmState) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	st := m.find(name)
	if st == nil {
		return apperr.NotFound("원생", name)
	}
	st.Attendance = attendance
	st.Pickup.Confirm = pickup
	st.Dropoff.Confirm = dropoff
	m.writes++
	return nil
}

func (m *mockRosterRepo) UpdateLegConfirm(_ context.Context, name string, leg model.LegKind, state model.ConfirmState) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	st := m.find(name)
	if st == nil {
		return apperr.NotFound("원생", name)
	}
	st.Leg(leg).Confirm = state
	m.writes++
	return nil
}

func (m *mockRosterRepo) UpdateNote(_ context.Context, name, note string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	st := m.find(name)
	if st == nil {
		return apperr.NotFound("원생", name)
	}
	st.Note = note
	m.writes++
	return nil
}

func (m *mockRosterRepo) UpdateLeave(_ context.Context, name, leaveCell string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	st := m.find(name)
	if st == nil {
		return apperr.NotFound("원생", name)
	}
	if leaveCell == "" {
		st.Leave = nil
	} else if leave, ok := model.ParseLeave(leaveCell); ok {
		st.Leave = leave
	}
	m.writes++
	return nil
}

func (m *mockRosterRepo) ResetDay(_ context.Context) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	for i := range m.students {
		m.students[i].Attendance = model.AttendanceUnmarked
		m.students[i].Pickup.Confirm = model.ConfirmNone
		m.students[i].Dropoff.Confirm = model.ConfirmNone
		m.students[i].Note = ""
	}
	m.writes++
	return nil
}

// ── Mock LedgerRepository ──

type appendCall struct {
	names      []string
	marks      []string
	dateHeader string
}

type mockLedgerRepo struct {
	appendErr error
	calls     []appendCall
}

func newMockLedgerRepo() *mockLedgerRepo {
	return &mockLedgerRepo{}
}

func (m *mockLedgerRepo) AppendColumn(_ context.Context, names, marks []string, dateHeader string) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.calls = append(m.calls, appendCall{
		names:      append([]string(nil), names...),
		marks:      append([]string(nil), marks...),
		dateHeader: dateHeader,
	})
	return nil
}

// ── Mock TestScheduleRepository ──

type mockTestSchedRepo struct {
	tests   []model.PromotionTest
	listErr error
}

func (m *mockTestSchedRepo) List(_ context.Context) ([]model.PromotionTest, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]model.PromotionTest(nil), m.tests...), nil
}

// ── Mock GuideRepository ──

type mockGuideRepo struct {
	guides  []model.TemperamentGuide
	listErr error
}

func (m *mockGuideRepo) List(_ context.Context) ([]model.TemperamentGuide, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]model.TemperamentGuide(nil), m.guides...), nil
}

// ── Mock TokenBlacklist ──

type mockBlacklist struct {
	entries map[string]time.Duration
	err     error
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{entries: make(map[string]time.Duration)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.entries[jti] = ttl
	return nil
}
