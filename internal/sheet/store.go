// Package sheet 스프레드시트형 원격 테이블 저장소 추상화.
//
// 엔진은 이 다섯 가지 원시 연산에만 의존한다. 시트 서식 등
// 구현체별 세부 사항은 여기로 새어 나오지 않는다.
package sheet

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Row 테이블 한 행의 셀 값들
type Row []string

// Get idx 열（1부터）의 값. 행이 짧으면 빈 문자열
func (r Row) Get(idx int) string {
	if idx < 1 || idx > len(r) {
		return ""
	}
	return r[idx-1]
}

// TableStore 이름 붙은 테이블에 대한 다섯 가지 원시 연산.
//
// 행/열 인덱스는 1부터 시작하며 1행은 헤더다.
// 테이블이 존재하지 않으면 apperr.ErrConfiguration 으로 판별 가능한
// 오류를 돌려준다.
type TableStore interface {
	// ReadTable 헤더를 포함한 전체 행을 읽는다
	ReadTable(ctx context.Context, table string) ([]Row, error)
	// FindRow 첫 열에서 key 와 일치하는 행 번호를 찾는다（헤더 제외）.
	// 없으면 apperr.ErrNotFound
	FindRow(ctx context.Context, table, key string) (int, error)
	// WriteCell 단일 셀 덮어쓰기
	WriteCell(ctx context.Context, table string, row, col int, value string) error
	// AppendRow 마지막 행 뒤에 한 행 추가
	AppendRow(ctx context.Context, table string, values []string) error
	// ClearRange A1 표기 범위（예: "B2:D20"）의 셀을 모두 비운다
	ClearRange(ctx context.Context, table, rangeSpec string) error
}

// ParseRange A1 표기 범위를 (시작열, 시작행, 끝열, 끝행) 좌표로 푼다
func ParseRange(rangeSpec string) (c1, r1, c2, r2 int, err error) {
	var start, end string
	if n, _ := fmt.Sscanf(rangeSpec, "%[^:]:%s", &start, &end); n != 2 {
		return 0, 0, 0, 0, fmt.Errorf("범위 표기가 올바르지 않습니다: %q", rangeSpec)
	}
	c1, r1, err = excelize.CellNameToCoordinates(start)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("범위 시작 셀 해석 실패: %w", err)
	}
	c2, r2, err = excelize.CellNameToCoordinates(end)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("범위 끝 셀 해석 실패: %w", err)
	}
	if c2 < c1 || r2 < r1 {
		return 0, 0, 0, 0, fmt.Errorf("범위가 뒤집혀 있습니다: %q", rangeSpec)
	}
	return c1, r1, c2, r2, nil
}
