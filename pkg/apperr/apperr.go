// Package apperr 전 모듈이 공유하는 오류 분류 체계.
//
// 분류:
//   - NotFound           존재하지 않는 원생 이름 등 키 조회 실패
//   - ConfigurationError 필수 테이블/열 누락 등 구성 문제
//   - RecoverableWrite   일시적 저장 실패（1회 재시도 후 표면화）
//   - ValidationError    입력값 검증 실패
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 조회 대상이 존재하지 않음
	ErrNotFound = errors.New("대상을 찾을 수 없습니다")
	// ErrConfiguration 필수 테이블 또는 열이 없음
	ErrConfiguration = errors.New("저장소 구성이 올바르지 않습니다")
	// ErrRecoverableWrite 재시도 후에도 실패한 일시적 쓰기 오류
	// 호출자 관점에서 상태는 변경되지 않은 것으로 간주한다
	ErrRecoverableWrite = errors.New("일시적 저장 실패")
	// ErrValidation 입력값 검증 실패
	ErrValidation = errors.New("입력값이 올바르지 않습니다")
)

// NotFound 키와 함께 NotFound 오류를 만든다
func NotFound(kind, key string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, kind, key)
}

// Configuration 누락된 구성 요소를 명시한 ConfigurationError 를 만든다
func Configuration(what string) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, what)
}

// Validation 검증 실패 사유를 담은 ValidationError 를 만든다
func Validation(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// WriteError 원인을 보존하는 RecoverableWriteError
type WriteError struct {
	Op  string // 실패한 연산（예: "writeCell 원생명단!D5"）
	Err error  // 저장소가 반환한 원인
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrRecoverableWrite, e.Op, e.Err)
}

// Unwrap 원인 오류를 노출한다
func (e *WriteError) Unwrap() error { return e.Err }

// Is errors.Is(err, ErrRecoverableWrite) 매칭 지원
func (e *WriteError) Is(target error) bool { return target == ErrRecoverableWrite }

// RecoverableWrite 실패한 연산과 원인을 묶는다
func RecoverableWrite(op string, cause error) error {
	return &WriteError{Op: op, Err: cause}
}
