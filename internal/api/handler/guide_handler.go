package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JKM6230/roun-app/internal/service"
	"github.com/JKM6230/roun-app/pkg/response"
)

// GuideHandler 기질가이드 모듈 HTTP 처리기
type GuideHandler struct {
	guideSvc service.GuideService
}

// NewGuideHandler GuideHandler 생성
func NewGuideHandler(guideSvc service.GuideService) *GuideHandler {
	return &GuideHandler{guideSvc: guideSvc}
}

// GetByType 기질유형으로 가이드 조회
// GET /api/v1/guides/:type
func (h *GuideHandler) GetByType(c *gin.Context) {
	result, err := h.guideSvc.GetByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.handleGuideError(c, err)
		return
	}
	response.OK(c, result)
}

// GetForStudent 원생의 기질가이드 조회
// GET /api/v1/students/:name/guide
func (h *GuideHandler) GetForStudent(c *gin.Context) {
	result, err := h.guideSvc.GetForStudent(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.handleGuideError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *GuideHandler) handleGuideError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGuideNotFound):
		response.NotFound(c, 20201, "해당 기질유형의 가이드가 없습니다")
	case errors.Is(err, service.ErrStudentNoTemperament):
		response.NotFound(c, 20202, "원생에 기질유형이 지정되어 있지 않습니다")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 20001, "원생을 찾을 수 없습니다")
	default:
		handleStoreError(c, err)
	}
}
