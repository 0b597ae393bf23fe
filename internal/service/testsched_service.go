package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/dto"
	"github.com/JKM6230/roun-app/internal/model"
	"github.com/JKM6230/roun-app/internal/repository"
)

// TestScheduleService 승급 심사 일정 조회 업무 인터페이스
type TestScheduleService interface {
	// List 전체 심사일정（날짜순, 같은 날은 이름순）
	List(ctx context.Context) ([]dto.PromotionTestResponse, error)
	// Today 오늘 심사를 보는 원생 브리핑
	Today(ctx context.Context) (*dto.TodayTestsResponse, error)
	// CalendarICS 심사일정을 iCalendar (RFC 5545) 문서로 내보낸다
	CalendarICS(ctx context.Context) (string, error)
}

type testScheduleService struct {
	repo   *repository.Repository
	loc    *time.Location
	clock  Clock
	logger *zap.Logger
}

// NewTestScheduleService TestScheduleService 인스턴스 생성
func NewTestScheduleService(repo *repository.Repository, loc *time.Location, clock Clock, logger *zap.Logger) TestScheduleService {
	return &testScheduleService{repo: repo, loc: loc, clock: clock, logger: logger}
}

func (s *testScheduleService) load(ctx context.Context) ([]model.PromotionTest, error) {
	tests, err := s.repo.TestSchedule.List(ctx)
	if err != nil {
		s.logger.Error("심사일정 조회 실패", zap.Error(err))
		return nil, err
	}
	sort.SliceStable(tests, func(i, j int) bool {
		if !tests[i].Date.Equal(tests[j].Date) {
			return tests[i].Date.Before(tests[j].Date)
		}
		return tests[i].StudentName < tests[j].StudentName
	})
	return tests, nil
}

func (s *testScheduleService) List(ctx context.Context) ([]dto.PromotionTestResponse, error) {
	tests, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.PromotionTestResponse, 0, len(tests))
	for _, t := range tests {
		resp = append(resp, toTestResponse(t))
	}
	return resp, nil
}

func (s *testScheduleService) Today(ctx context.Context) (*dto.TodayTestsResponse, error) {
	tests, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	today := s.clock().In(s.loc).Format("2006-01-02")
	resp := &dto.TodayTestsResponse{
		Date:        today,
		Challengers: []dto.PromotionTestResponse{},
	}
	for _, t := range tests {
		if t.Date.Format("2006-01-02") == today {
			resp.Challengers = append(resp.Challengers, toTestResponse(t))
		}
	}
	resp.Count = len(resp.Challengers)
	return resp, nil
}

// ════════════════════════════════════════════════════════════
// CalendarICS — 심사일정 iCalendar 내보내기
// ════════════════════════════════════════════════════════════
//
// 심사 한 건 = 종일 VEVENT 하나. 캘린더 앱에서 구독/가져오기용

func (s *testScheduleService) CalendarICS(ctx context.Context) (string, error) {
	tests, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//roun-app//promotion-tests//KO")
	cal.SetXWRCalName("승급 심사 일정")

	now := s.clock()
	for i, t := range tests {
		uid := fmt.Sprintf("%s-%d@roun-app", t.Date.Format("20060102"), i)
		ev := cal.AddEvent(uid)
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(t.Date)
		ev.SetAllDayEndAt(t.Date.AddDate(0, 0, 1))
		summary := t.StudentName + " 승급 심사"
		if t.TargetRank != "" {
			summary += " (" + t.TargetRank + ")"
		}
		ev.SetSummary(summary)
	}
	return cal.Serialize(), nil
}

func toTestResponse(t model.PromotionTest) dto.PromotionTestResponse {
	return dto.PromotionTestResponse{
		Date:        t.Date.Format("2006-01-02"),
		StudentName: t.StudentName,
		TargetRank:  t.TargetRank,
	}
}
