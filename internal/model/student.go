package model

import (
	"strings"
	"time"
)

// ── 상태 열거형（시트 셀 값 그대로） ──

// AttendanceState 일일 출석 상태
type AttendanceState string

const (
	AttendanceUnmarked AttendanceState = ""
	AttendancePresent  AttendanceState = "출석"
	AttendanceAbsent   AttendanceState = "결석"
)

// ParseAttendanceState 셀 값을 출석 상태로 해석한다. 모르는 값은 미표기로 본다
func ParseAttendanceState(s string) AttendanceState {
	switch strings.TrimSpace(s) {
	case string(AttendancePresent), "O":
		return AttendancePresent
	case string(AttendanceAbsent), "X":
		return AttendanceAbsent
	default:
		return AttendanceUnmarked
	}
}

// ConfirmState 차량 구간（등원/하원）확인 상태
type ConfirmState string

const (
	ConfirmNone    ConfirmState = ""
	ConfirmBoarded ConfirmState = "탑승"
	ConfirmAbsent  ConfirmState = "결석"
)

// ParseConfirmState 셀 값을 구간 확인 상태로 해석한다
func ParseConfirmState(s string) ConfirmState {
	switch strings.TrimSpace(s) {
	case string(ConfirmBoarded):
		return ConfirmBoarded
	case string(ConfirmAbsent):
		return ConfirmAbsent
	default:
		return ConfirmNone
	}
}

// LegKind 차량 구간 종류
type LegKind string

const (
	LegPickup  LegKind = "pickup"  // 등원
	LegDropoff LegKind = "dropoff" // 하원
)

// ParseLegKind API 경로 파라미터를 구간 종류로 해석한다
func ParseLegKind(s string) (LegKind, bool) {
	switch LegKind(strings.ToLower(strings.TrimSpace(s))) {
	case LegPickup:
		return LegPickup, true
	case LegDropoff:
		return LegDropoff, true
	}
	return "", false
}

// ── 차량 구간 ──

// TransportLeg 한 원생의 한 방향 차량 운행 정보.
// Raw 필드는 시트에 적힌 반복 표기 원문이고 Vehicle/Time/Location 은
// 오늘 요일 기준으로 해석된 값이다. 해석값은 읽을 때마다 다시 계산하며
// 절대 시트에 저장하지 않는다.
type TransportLeg struct {
	VehicleRaw  string
	TimeRaw     string
	LocationRaw string

	Vehicle  string
	Time     string
	Location string

	Confirm ConfirmState
}

// ── 장기 결석 ──

// LongTermLeave 장기 결석 구간. 시트에는 "시작~종료:사유" 한 칸으로 저장된다
type LongTermLeave struct {
	Start  time.Time
	End    time.Time
	Reason string
}

const leaveDateLayout = "2006-01-02"

// ParseLeave "YYYY-MM-DD~YYYY-MM-DD:사유" 형식을 해석한다.
// 형식이 깨졌으면 (nil, false) — 읽기는 실패시키지 않는다
func ParseLeave(raw string) (*LongTermLeave, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	datesPart, reason := raw, ""
	if i := strings.Index(raw, ":"); i >= 0 {
		datesPart, reason = raw[:i], strings.TrimSpace(raw[i+1:])
	}
	parts := strings.SplitN(datesPart, "~", 2)
	if len(parts) != 2 {
		return nil, false
	}
	start, err := time.Parse(leaveDateLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, false
	}
	end, err := time.Parse(leaveDateLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, false
	}
	return &LongTermLeave{Start: start, End: end, Reason: reason}, true
}

// Format 시트 저장 형식으로 직렬화한다
func (l *LongTermLeave) Format() string {
	return l.Start.Format(leaveDateLayout) + "~" + l.End.Format(leaveDateLayout) + ":" + l.Reason
}

// Covers day 가 구간 [Start, End] 안에 드는지（날짜 단위 비교）
func (l *LongTermLeave) Covers(day time.Time) bool {
	d := dateOnly(day)
	return !d.Before(dateOnly(l.Start)) && !d.After(dateOnly(l.End))
}

// Expired 구간 종료일이 day 이전인지
func (l *LongTermLeave) Expired(day time.Time) bool {
	return dateOnly(l.End).Before(dateOnly(day))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ── 원생 ──

// Student 명단 한 행의 정규 표현. 이름이 곧 조회/변경 키다
type Student struct {
	Row int // 시트 행 핸들（1부터, 1행 = 헤더）

	Name        string
	Cohort      string
	WeekdayMask string // 등원 요일 코드 집합（예: "월수금"）. 비면 매일 등원
	Temperament string // 기질유형（기질가이드 매칭 키）

	UsesTransport bool
	Pickup        TransportLeg
	Dropoff       TransportLeg

	Attendance AttendanceState
	Note       string
	Leave      *LongTermLeave
}

// AttendsOn 해당 요일에 등원하는 원생인지（요일 마스크 기준）
func (s *Student) AttendsOn(dayCode string) bool {
	if strings.TrimSpace(s.WeekdayMask) == "" {
		return true
	}
	return strings.Contains(s.WeekdayMask, dayCode)
}

// Leg 구간 종류에 해당하는 구간 포인터를 돌려준다
func (s *Student) Leg(kind LegKind) *TransportLeg {
	if kind == LegDropoff {
		return &s.Dropoff
	}
	return &s.Pickup
}

// ApplyAttendance 출석 상태를 적용하면서 연동 규칙을 지킨다.
//
//   - 결석으로 표기하면 등·하원 구간도 모두 결석이 된다.
//   - 미표기로 되돌리면 두 구간도 미확인으로 돌아간다.
//   - 출석은 구간 상태를 건드리지 않는다（구간은 독립적으로 확인 가능）.
func (s *Student) ApplyAttendance(state AttendanceState) {
	s.Attendance = state
	switch state {
	case AttendanceAbsent:
		s.Pickup.Confirm = ConfirmAbsent
		s.Dropoff.Confirm = ConfirmAbsent
	case AttendanceUnmarked:
		s.Pickup.Confirm = ConfirmNone
		s.Dropoff.Confirm = ConfirmNone
	}
}

// DayMark 출석부에 기록할 하루 표식.
// 출석이면 'O', 아니면 사유(비고)가 있으면 사유, 결석이면 'X', 미표기면 빈 칸
func (s *Student) DayMark() string {
	switch {
	case s.Attendance == AttendancePresent:
		return "O"
	case s.Note != "":
		return s.Note
	case s.Attendance == AttendanceAbsent:
		return "X"
	default:
		return ""
	}
}
