package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/config"
	"github.com/JKM6230/roun-app/internal/dto"
	"github.com/JKM6230/roun-app/pkg/jwt"
)

// ── 인증 모듈 업무 오류 ──

var ErrInvalidPasscode = errors.New("출입 코드가 올바르지 않습니다")

// TokenBlacklist 로그아웃된 세션 토큰 저장소
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService 출입 코드 인증 업무 인터페이스.
// 개별 계정 없이 공유 출입 코드 하나를 검증해 세션 토큰을 발급한다
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout 토큰을 잔여 유효기간 동안 블랙리스트에 올린다
	Logout(ctx context.Context, claims *jwt.Claims) error
}

type authService struct {
	cfg       *config.Config
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService AuthService 인스턴스 생성
func NewAuthService(
	cfg *config.Config,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:       cfg,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 상수 시간 비교로 출입 코드 검증
	if subtle.ConstantTimeCompare([]byte(req.Passcode), []byte(s.cfg.Auth.Passcode)) != 1 {
		return nil, ErrInvalidPasscode
	}

	token, err := s.jwtMgr.GenerateSessionToken()
	if err != nil {
		s.logger.Error("세션 토큰 발급 실패", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.cfg.Auth.SessionTTL).Format(time.RFC3339),
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("토큰 블랙리스트 등록 실패", zap.Error(err))
		return err
	}
	return nil
}
