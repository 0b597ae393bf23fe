package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JKM6230/roun-app/internal/service"
	"github.com/JKM6230/roun-app/pkg/response"
)

// ManifestHandler 차량 명단 모듈 HTTP 처리기
type ManifestHandler struct {
	manifestSvc service.ManifestService
}

// NewManifestHandler ManifestHandler 생성
func NewManifestHandler(manifestSvc service.ManifestService) *ManifestHandler {
	return &ManifestHandler{manifestSvc: manifestSvc}
}

// GetManifest 구간별 탑승 명단 조회
// GET /api/v1/manifests/:leg
func (h *ManifestHandler) GetManifest(c *gin.Context) {
	result, err := h.manifestSvc.Build(c.Request.Context(), c.Param("leg"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownLeg) {
			response.BadRequest(c, 20003, "알 수 없는 차량 구간입니다")
			return
		}
		handleStoreError(c, err)
		return
	}
	response.OK(c, result)
}
