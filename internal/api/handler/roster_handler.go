package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JKM6230/roun-app/internal/dto"
	"github.com/JKM6230/roun-app/internal/service"
	"github.com/JKM6230/roun-app/pkg/response"
)

// RosterHandler 명단/출석 모듈 HTTP 처리기
type RosterHandler struct {
	rosterSvc service.RosterService
}

// NewRosterHandler RosterHandler 생성
func NewRosterHandler(rosterSvc service.RosterService) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc}
}

// GetToday 오늘자 명단 조회
// GET /api/v1/roster/today
func (h *RosterHandler) GetToday(c *gin.Context) {
	result, err := h.rosterSvc.GetToday(c.Request.Context())
	if err != nil {
		handleStoreError(c, err)
		return
	}
	response.OK(c, result)
}

// SetAttendance 출석 상태 변경
// PUT /api/v1/students/:name/attendance
func (h *RosterHandler) SetAttendance(c *gin.Context) {
	var req dto.SetAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	err := h.rosterSvc.SetAttendance(c.Request.Context(), c.Param("name"), req.State)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}
	response.OK(c, nil)
}

// SetLegConfirm 차량 구간 확인 변경
// PUT /api/v1/students/:name/legs/:leg
func (h *RosterHandler) SetLegConfirm(c *gin.Context) {
	var req dto.SetLegConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	err := h.rosterSvc.SetLegConfirm(c.Request.Context(), c.Param("name"), c.Param("leg"), req.State)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}
	response.OK(c, nil)
}

// SetNote 비고 덮어쓰기
// PUT /api/v1/students/:name/note
func (h *RosterHandler) SetNote(c *gin.Context) {
	var req dto.SetNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	err := h.rosterSvc.SetNote(c.Request.Context(), c.Param("name"), req.Note)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *RosterHandler) handleRosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 20001, "원생을 찾을 수 없습니다")
	case errors.Is(err, service.ErrUnknownState):
		response.BadRequest(c, 20002, "알 수 없는 상태 값입니다")
	case errors.Is(err, service.ErrUnknownLeg):
		response.BadRequest(c, 20003, "알 수 없는 차량 구간입니다")
	default:
		handleStoreError(c, err)
	}
}
