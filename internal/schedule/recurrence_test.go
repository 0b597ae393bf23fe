package schedule

import (
	"testing"
	"time"
)

// ── Resolve: 괄호 없는 표기 ──

func TestResolve_PlainValue(t *testing.T) {
	for _, day := range []string{"월", "화", "수", "목", "금", "토", "일"} {
		if got := Resolve("1호차", day); got != "1호차" {
			t.Errorf("요일 %s: 기대 1호차, 실제 %q", day, got)
		}
	}
}

func TestResolve_PlainValueTrimmed(t *testing.T) {
	if got := Resolve("  16:20  ", "수"); got != "16:20" {
		t.Errorf("공백 trim 기대, 실제 %q", got)
	}
}

func TestResolve_Empty(t *testing.T) {
	if got := Resolve("", "월"); got != "" {
		t.Errorf("빈 입력은 빈 결과여야 함, 실제 %q", got)
	}
	if got := Resolve("   ", "월"); got != "" {
		t.Errorf("공백만 있는 입력은 빈 결과여야 함, 실제 %q", got)
	}
}

// ── Resolve: 다중 절 표기 ──

func TestResolve_MultiClause(t *testing.T) {
	raw := "16:20(월화수목), 17:30(금)"

	if got := Resolve(raw, "금"); got != "17:30" {
		t.Errorf("금요일: 기대 17:30, 실제 %q", got)
	}
	if got := Resolve(raw, "화"); got != "16:20" {
		t.Errorf("화요일: 기대 16:20, 실제 %q", got)
	}
	if got := Resolve(raw, "일"); got != "" {
		t.Errorf("일요일은 비적용이어야 함, 실제 %q", got)
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	raw := "1호차(월수), 2호차(수금)"
	if got := Resolve(raw, "수"); got != "1호차" {
		t.Errorf("첫 매칭 절 우선, 기대 1호차, 실제 %q", got)
	}
}

func TestResolve_WhitespaceAroundClauses(t *testing.T) {
	raw := "  16:20 ( 월화수목 ) ,  17:30 (금) "
	if got := Resolve(raw, "월"); got != "16:20" {
		t.Errorf("기대 16:20, 실제 %q", got)
	}
	if got := Resolve(raw, "금"); got != "17:30" {
		t.Errorf("기대 17:30, 실제 %q", got)
	}
}

// ── Resolve: 형식 오류 내성 ──

func TestResolve_MalformedClauseSkipped(t *testing.T) {
	// 닫는 괄호가 빠진 첫 절은 건너뛰고 다음 절을 평가한다
	raw := "16:20(월화수목, 17:30(금)"
	if got := Resolve(raw, "금"); got != "17:30" {
		t.Errorf("형식 오류 절 건너뛰기, 기대 17:30, 실제 %q", got)
	}
	if got := Resolve(raw, "월"); got != "" {
		t.Errorf("형식 오류 절은 비매칭, 기대 빈 값, 실제 %q", got)
	}
}

func TestResolve_MalformedNeverPanics(t *testing.T) {
	inputs := []string{"(", ")", "((", "값(", "값()", ",,,", "값((월))", "16:20("}
	for _, raw := range inputs {
		for _, day := range []string{"월", "금"} {
			// 패닉 없이 결과만 확인
			_ = Resolve(raw, day)
		}
	}
}

func TestResolve_EmptyDaySet(t *testing.T) {
	if got := Resolve("16:20()", "월"); got != "" {
		t.Errorf("빈 요일 집합은 비매칭이어야 함, 실제 %q", got)
	}
}

// ── 명세 시나리오: 화요일에 월수금 차량은 비적용 ──

func TestResolve_VehicleNotToday(t *testing.T) {
	if got := Resolve("1호차(월수금)", "화"); got != "" {
		t.Errorf("화요일에 월수금 차량은 빈 값이어야 함, 실제 %q", got)
	}
}

// ── WeekdayCode ──

func TestWeekdayCode(t *testing.T) {
	// 2025-01-12 은 일요일
	base := time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)
	want := []string{"일", "월", "화", "수", "목", "금", "토"}
	for i, code := range want {
		day := base.AddDate(0, 0, i)
		if got := WeekdayCode(day); got != code {
			t.Errorf("%s: 기대 %s, 실제 %s", day.Format("2006-01-02"), code, got)
		}
	}
}

func TestAppliesToday(t *testing.T) {
	if !AppliesToday("1호차(월수금)", "수") {
		t.Error("수요일에 월수금 차량은 적용되어야 함")
	}
	if AppliesToday("1호차(월수금)", "화") {
		t.Error("화요일에 월수금 차량은 비적용이어야 함")
	}
}
