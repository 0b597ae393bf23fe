package model

import "time"

// PromotionTest 심사일정 한 행. 읽기 전용으로 소비한다
type PromotionTest struct {
	Date        time.Time
	StudentName string
	TargetRank  string // 목표급수
}
