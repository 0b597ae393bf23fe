package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JKM6230/roun-app/pkg/jwt"
	"github.com/JKM6230/roun-app/pkg/response"
)

// ClaimsKey 컨텍스트에 주입되는 세션 클레임 키
const ClaimsKey = "claims"

// SessionBlacklist 로그아웃된 세션 토큰 조회
type SessionBlacklist interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// JWTAuth 세션 토큰 인증 미들웨어.
// Authorization: Bearer <token> 에서 토큰을 꺼내 검증하고
// 로그아웃 블랙리스트에 올라간 토큰을 거른다
func JWTAuth(jwtMgr *jwt.Manager, blacklist SessionBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "인증 헤더가 없습니다")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "인증 헤더 형식이 올바르지 않습니다")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "토큰이 유효하지 않거나 만료되었습니다")
			c.Abort()
			return
		}

		if blacklist != nil {
			blocked, err := blacklist.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				// 조회 실패는 서명 검증만으로 통과 처리
				blocked = false
			}
			if blocked {
				response.Unauthorized(c, 10002, "로그아웃된 토큰입니다")
				c.Abort()
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
