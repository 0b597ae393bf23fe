package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JKM6230/roun-app/pkg/apperr"
	"github.com/JKM6230/roun-app/pkg/response"
)

// handleStoreError 저장소 계층 공통 오류를 응답 코드로 바꾼다.
// 모듈별 업무 오류를 먼저 처리한 뒤 마지막에 부른다
func handleStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, 20001, err.Error())
	case errors.Is(err, apperr.ErrValidation):
		response.BadRequest(c, 10001, err.Error())
	case errors.Is(err, apperr.ErrRecoverableWrite):
		response.ServiceUnavailable(c, 50301, "일시적인 저장 실패입니다. 잠시 후 다시 시도해 주세요")
	case errors.Is(err, apperr.ErrConfiguration):
		response.Error(c, 500, 50002, err.Error())
	default:
		response.InternalError(c)
	}
}
