package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/JKM6230/roun-app/internal/service"
	"github.com/JKM6230/roun-app/pkg/response"
)

// ArchiveHandler 출석 보관 모듈 HTTP 처리기
type ArchiveHandler struct {
	archiveSvc service.ArchiveService
}

// NewArchiveHandler ArchiveHandler 생성
func NewArchiveHandler(archiveSvc service.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{archiveSvc: archiveSvc}
}

// Archive 오늘자 출석을 출석부에 보관
// POST /api/v1/archive
func (h *ArchiveHandler) Archive(c *gin.Context) {
	result, err := h.archiveSvc.Archive(c.Request.Context())
	if err != nil {
		handleStoreError(c, err)
		return
	}
	response.OK(c, result)
}

// Reset 작업 필드 초기화
// POST /api/v1/archive/reset
func (h *ArchiveHandler) Reset(c *gin.Context) {
	result, err := h.archiveSvc.Reset(c.Request.Context())
	if err != nil {
		handleStoreError(c, err)
		return
	}
	response.OK(c, result)
}
