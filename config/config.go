package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 애플리케이션 전역 설정 구조체
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Roster RosterConfig `mapstructure:"roster"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig 교차 출처 설정
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// StoreConfig 시트 저장소 설정
// driver: "workbook"(로컬 xlsx 통합문서) 또는 "grid"(PostgreSQL 셀 그리드)
type StoreConfig struct {
	Driver   string         `mapstructure:"driver"`
	Workbook WorkbookConfig `mapstructure:"workbook"`
	Database DatabaseConfig `mapstructure:"db"`
}

// WorkbookConfig 로컬 통합문서 저장소 설정
type WorkbookConfig struct {
	Path string `mapstructure:"path"`
}

// DatabaseConfig PostgreSQL 셀 그리드 저장소 설정
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN PostgreSQL 접속 문자열 생성
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RosterConfig 명단/출석 엔진 동작 설정
type RosterConfig struct {
	// Timezone "오늘"을 판정할 때 사용하는 시간대
	Timezone string `mapstructure:"timezone"`
	// CacheTTL 명단 읽기 캐시 유효 시간. 쓰기 성공 시 즉시 무효화된다
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// RetryDelay 일시적 쓰기 실패 시 1회 재시도 전 대기 시간
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// RedisConfig Redis 설정
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig 출입 코드 인증 설정
// 단일 공유 출입 코드를 검증한 뒤 JWT 세션 토큰을 발급한다
type AuthConfig struct {
	Passcode   string        `mapstructure:"passcode"`
	JWTSecret  string        `mapstructure:"jwt_secret"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// LogConfig 로그 설정
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 설정 파일과 환경 변수에서 설정을 읽는다
// 우선순위: 환경 변수 > 설정 파일 > 기본값
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 기본값 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("store.driver", "workbook")
	v.SetDefault("store.workbook.path", "./data/roun.xlsx")

	v.SetDefault("store.db.host", "localhost")
	v.SetDefault("store.db.port", 5432)
	v.SetDefault("store.db.name", "roun_app")
	v.SetDefault("store.db.user", "postgres")
	v.SetDefault("store.db.password", "")
	v.SetDefault("store.db.sslmode", "disable")
	v.SetDefault("store.db.timezone", "Asia/Seoul")
	v.SetDefault("store.db.max_open_conns", 25)
	v.SetDefault("store.db.max_idle_conns", 10)

	v.SetDefault("roster.timezone", "Asia/Seoul")
	v.SetDefault("roster.cache_ttl", "60s")
	v.SetDefault("roster.retry_delay", "300ms")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.session_ttl", "12h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── 설정 파일 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 환경 변수 ──
	v.SetEnvPrefix("ROUN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("설정 파일 읽기 실패: %w", err)
		}
		// 설정 파일이 없으면 기본값과 환경 변수만 사용
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파싱 실패: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 필수 설정 항목 검증
func (c *Config) Validate() error {
	if c.Auth.Passcode == "" {
		return fmt.Errorf("설정 검증 실패: auth.passcode 는 비울 수 없습니다")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("설정 검증 실패: auth.jwt_secret 는 비울 수 없습니다")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("설정 검증 실패: auth.jwt_secret 는 16자 이상이어야 합니다")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("설정 검증 실패: server.port 는 1-65535 범위여야 합니다")
	}
	if c.Store.Driver != "workbook" && c.Store.Driver != "grid" {
		return fmt.Errorf("설정 검증 실패: store.driver 는 workbook 또는 grid 여야 합니다")
	}
	if _, err := time.LoadLocation(c.Roster.Timezone); err != nil {
		return fmt.Errorf("설정 검증 실패: roster.timezone 이 올바르지 않습니다: %w", err)
	}
	return nil
}
