package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JKM6230/roun-app/internal/dto"
	"github.com/JKM6230/roun-app/internal/service"
	"github.com/JKM6230/roun-app/pkg/response"
)

// LeaveHandler 장기 결석 모듈 HTTP 처리기
type LeaveHandler struct {
	leaveSvc service.LeaveService
}

// NewLeaveHandler LeaveHandler 생성
func NewLeaveHandler(leaveSvc service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc}
}

// Register 장기 결석 등록
// PUT /api/v1/students/:name/leave
func (h *LeaveHandler) Register(c *gin.Context) {
	var req dto.RegisterLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "요청 형식이 올바르지 않습니다")
		return
	}

	err := h.leaveSvc.Register(c.Request.Context(), c.Param("name"), &req)
	if err != nil {
		h.handleLeaveError(c, err)
		return
	}
	response.OK(c, nil)
}

// Clear 장기 결석 해제
// DELETE /api/v1/students/:name/leave
func (h *LeaveHandler) Clear(c *gin.Context) {
	err := h.leaveSvc.Clear(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.handleLeaveError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *LeaveHandler) handleLeaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLeaveBadDate):
		response.BadRequest(c, 20101, "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)")
	case errors.Is(err, service.ErrLeaveInvalidRange):
		response.BadRequest(c, 20102, "종료일이 시작일보다 앞설 수 없습니다")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 20001, "원생을 찾을 수 없습니다")
	default:
		handleStoreError(c, err)
	}
}
