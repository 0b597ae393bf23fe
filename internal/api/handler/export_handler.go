package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/JKM6230/roun-app/internal/service"
	"github.com/JKM6230/roun-app/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 내보내기 모듈 HTTP 처리기
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler 생성
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportManifest 탑승 명단 Excel 다운로드
// GET /api/v1/manifests/:leg/export
func (h *ExportHandler) ExportManifest(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportManifest(c.Request.Context(), c.Param("leg"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownLeg):
			response.BadRequest(c, 20003, "알 수 없는 차량 구간입니다")
		case errors.Is(err, service.ErrExportGenerateFail):
			response.InternalError(c)
		default:
			handleStoreError(c, err)
		}
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
