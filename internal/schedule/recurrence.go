// Package schedule 주간 반복 표기（요일 조건부 값）의 해석기.
//
// 표기 문법:
//
//	"<값>(<요일코드들>)[, <값>(<요일코드들>)]*"  또는 괄호 없는 "<값>"
//
// 괄호가 없으면 요일과 무관하게 항상 같은 값이다.
// 요일코드는 구분자 없이 이어 쓴 한 글자 코드（예: "월화수목" = 월~목）.
// 예: "16:20(월화수목), 17:30(금)" 은 월~목 16:20, 금 17:30, 그 외 요일 없음.
package schedule

import (
	"strings"
	"time"
)

// 요일 한 글자 코드．time.Weekday 순서（일요일=0）
var weekdayCodes = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// WeekdayCode 시각의 요일을 한 글자 코드로 돌려준다
func WeekdayCode(t time.Time) string {
	return weekdayCodes[int(t.Weekday())]
}

// Resolve 반복 표기 raw 에서 dayCode 요일에 적용되는 값을 구한다.
//
//   - raw 가 비어 있으면 빈 문자열.
//   - 괄호 그룹이 없으면 요일 불변값: trim 한 raw 그대로.
//   - 여러 절이 있으면 쉼표로 나눠 요일코드가 맞는 첫 절의 값을 돌려준다.
//   - 맞는 절이 없으면 빈 문자열（해당 요일에 적용되지 않음을 뜻한다）.
//
// 닫는 괄호가 빠진 절 등 형식 오류는 해당 절만 건너뛴다.
// 일정 데이터가 깨져도 읽기가 실패해서는 안 된다.
func Resolve(raw, dayCode string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "(") {
		return raw
	}

	for _, clause := range strings.Split(raw, ",") {
		clause = strings.TrimSpace(clause)
		open := strings.Index(clause, "(")
		if open < 0 {
			continue
		}
		value := strings.TrimSpace(clause[:open])
		rest := clause[open+1:]
		end := strings.Index(rest, ")")
		if end < 0 {
			// 닫는 괄호가 빠진 절은 비매칭으로 취급
			continue
		}
		days := strings.TrimSpace(rest[:end])
		if strings.Contains(days, dayCode) {
			return value
		}
	}
	return ""
}

// AppliesToday raw 표기가 dayCode 요일에 적용되는지 여부
func AppliesToday(raw, dayCode string) bool {
	return Resolve(raw, dayCode) != ""
}
