package dto

// LoginRequest 출입 코드 로그인 요청
type LoginRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

// LoginResponse 세션 토큰 발급 결과
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
