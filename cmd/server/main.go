package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JKM6230/roun-app/config"
	"github.com/JKM6230/roun-app/internal/api/handler"
	"github.com/JKM6230/roun-app/internal/api/middleware"
	"github.com/JKM6230/roun-app/internal/api/router"
	"github.com/JKM6230/roun-app/internal/repository"
	"github.com/JKM6230/roun-app/internal/service"
	"github.com/JKM6230/roun-app/internal/sheet"
	"github.com/JKM6230/roun-app/pkg/database"
	"github.com/JKM6230/roun-app/pkg/jwt"
	applogger "github.com/JKM6230/roun-app/pkg/logger"
	"github.com/JKM6230/roun-app/pkg/redis"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로거 초기화
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("애플리케이션 시작",
		zap.Int("port", cfg.Server.Port),
		zap.String("store_driver", cfg.Store.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 시트 저장소 초기화（workbook 또는 grid）
	var store sheet.TableStore
	var db *gorm.DB
	switch cfg.Store.Driver {
	case "grid":
		db, err = database.NewDB(&cfg.Store.Database, logger)
		if err != nil {
			logger.Fatal("데이터베이스 연결 실패", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("하위 sql.DB 획득 실패", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("데이터베이스 마이그레이션 실패", zap.Error(err))
		}
		store = sheet.NewGridStore(db)
	default:
		ws, err := sheet.NewWorkbookStore(cfg.Store.Workbook.Path, logger)
		if err != nil {
			logger.Fatal("통합문서 열기 실패",
				zap.String("path", cfg.Store.Workbook.Path), zap.Error(err))
		}
		store = ws
	}

	// 4. Redis 연결（실패 시 블랙리스트 없이 계속 기동）
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 연결 실패, 토큰 블랙리스트 기능 비활성화", zap.Error(err))
		rdb = nil
	}

	// 5. JWT 관리자 초기화
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. 의존성 주입: Repository → Service → Handler
	repo := repository.NewRepository(store, cfg.Roster.CacheTTL, cfg.Roster.RetryDelay, logger)
	var blacklistWriter service.TokenBlacklist
	var blacklistReader middleware.SessionBlacklist
	if rdb != nil {
		blacklistWriter = rdb
		blacklistReader = rdb
	} else {
		blacklistWriter = noopBlacklist{}
	}
	svc := service.NewService(cfg, repo, jwtMgr, blacklistWriter, logger)
	h := handler.NewHandler(svc)

	// 7. 라우터 초기화
	engine := router.Setup(cfg, h, jwtMgr, blacklistReader, logger)

	// 8. HTTP 서버 기동（우아한 종료）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 서버 시작", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 서버 오류", zap.Error(err))
		}
	}()

	// 9. 종료 신호 대기
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("종료 신호 수신, 우아한 종료 시작", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("서버 종료 오류", zap.Error(err))
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("서버 종료 완료")
}

// noopBlacklist Redis 없이 기동할 때의 블랙리스트.
// 로그아웃은 성공으로 처리하되 토큰은 만료 시까지 유효하다
type noopBlacklist struct{}

func (noopBlacklist) BlacklistToken(context.Context, string, time.Duration) error { return nil }
