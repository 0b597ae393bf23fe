package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/config"
	"github.com/JKM6230/roun-app/internal/api/handler"
	"github.com/JKM6230/roun-app/internal/api/middleware"
	"github.com/JKM6230/roun-app/pkg/jwt"
)

// Setup Gin 라우터 초기화
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, blacklist middleware.SessionBlacklist, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 헬스 체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 인증 모듈（인증 불필요）
		v1.POST("/auth/login", h.Auth.Login)

		// 캘린더 구독 주소（캘린더 앱은 인증 헤더를 붙이지 못한다）
		v1.GET("/tests/calendar.ics", h.TestSchedule.Calendar)

		// 인증이 필요한 라우트
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, blacklist))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 명단/출석 모듈
			authorized.GET("/roster/today", h.Roster.GetToday)
			students := authorized.Group("/students/:name")
			{
				students.PUT("/attendance", h.Roster.SetAttendance)
				students.PUT("/legs/:leg", h.Roster.SetLegConfirm)
				students.PUT("/note", h.Roster.SetNote)
				students.PUT("/leave", h.Leave.Register)
				students.DELETE("/leave", h.Leave.Clear)
				students.GET("/guide", h.Guide.GetForStudent)
			}

			// 차량 명단 모듈
			manifests := authorized.Group("/manifests")
			{
				manifests.GET("/:leg", h.Manifest.GetManifest)
				manifests.GET("/:leg/export", h.Export.ExportManifest)
			}

			// 출석 보관 모듈
			authorized.POST("/archive", h.Archive.Archive)
			authorized.POST("/archive/reset", h.Archive.Reset)

			// 승급 심사 모듈
			authorized.GET("/tests", h.TestSchedule.List)
			authorized.GET("/tests/today", h.TestSchedule.Today)

			// 기질가이드 모듈
			authorized.GET("/guides/:type", h.Guide.GetByType)
		}
	}

	return r
}
