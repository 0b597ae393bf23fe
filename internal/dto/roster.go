package dto

// ── 출석/차량 상태 API 토큰 ──
// 시트 셀 값(한글)과 분리된 API 전용 표기

const (
	AttendanceUnmarked = "unmarked"
	AttendancePresent  = "present"
	AttendanceAbsent   = "absent"

	ConfirmNone    = "unconfirmed"
	ConfirmBoarded = "boarded"
	ConfirmAbsent  = "absent"
)

// LegView 오늘 기준으로 해석된 차량 구간 뷰
type LegView struct {
	Vehicle  string `json:"vehicle"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Confirm  string `json:"confirm"`
}

// LeaveView 장기 결석 뷰
type LeaveView struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// StudentResponse 원생 한 명의 오늘자 뷰
type StudentResponse struct {
	Name          string     `json:"name"`
	Cohort        string     `json:"cohort"`
	AttendsToday  bool       `json:"attends_today"`
	UsesTransport bool       `json:"uses_transport"`
	Attendance    string     `json:"attendance"`
	Note          string     `json:"note"`
	Pickup        LegView    `json:"pickup"`
	Dropoff       LegView    `json:"dropoff"`
	Leave         *LeaveView `json:"leave,omitempty"`
}

// RosterResponse 오늘자 전체 명단
type RosterResponse struct {
	Date     string            `json:"date"`
	Weekday  string            `json:"weekday"`
	Students []StudentResponse `json:"students"`
}

// SetAttendanceRequest 출석 상태 변경 요청
type SetAttendanceRequest struct {
	State string `json:"state" binding:"required,oneof=unmarked present absent"`
}

// SetLegConfirmRequest 구간 확인 상태 변경 요청
type SetLegConfirmRequest struct {
	State string `json:"state" binding:"required,oneof=unconfirmed boarded absent"`
}

// SetNoteRequest 비고 덮어쓰기 요청（빈 문자열이면 지움）
type SetNoteRequest struct {
	Note string `json:"note"`
}
