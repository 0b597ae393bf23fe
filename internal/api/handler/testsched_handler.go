package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JKM6230/roun-app/internal/service"
	"github.com/JKM6230/roun-app/pkg/response"
)

// TestScheduleHandler 승급 심사 일정 모듈 HTTP 처리기
type TestScheduleHandler struct {
	schedSvc service.TestScheduleService
}

// NewTestScheduleHandler TestScheduleHandler 생성
func NewTestScheduleHandler(schedSvc service.TestScheduleService) *TestScheduleHandler {
	return &TestScheduleHandler{schedSvc: schedSvc}
}

// List 전체 심사일정 조회
// GET /api/v1/tests
func (h *TestScheduleHandler) List(c *gin.Context) {
	result, err := h.schedSvc.List(c.Request.Context())
	if err != nil {
		handleStoreError(c, err)
		return
	}
	response.OK(c, result)
}

// Today 오늘 심사 브리핑
// GET /api/v1/tests/today
func (h *TestScheduleHandler) Today(c *gin.Context) {
	result, err := h.schedSvc.Today(c.Request.Context())
	if err != nil {
		handleStoreError(c, err)
		return
	}
	response.OK(c, result)
}

// Calendar iCalendar 내보내기
// GET /api/v1/tests/calendar.ics
func (h *TestScheduleHandler) Calendar(c *gin.Context) {
	ics, err := h.schedSvc.CalendarICS(c.Request.Context())
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="promotion-tests.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
