package sheet

import (
	"context"
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/pkg/apperr"
)

// WorkbookStore 로컬 .xlsx 통합문서를 테이블 저장소로 쓰는 구현.
// 테이블 하나가 시트 하나에 대응한다（원생명단, 출석부, 심사일정, 기질가이드）.
// 쓰기 연산마다 파일로 저장하므로 호출자 관점에서 동기적이다
type WorkbookStore struct {
	mu     sync.Mutex
	file   *excelize.File
	path   string
	logger *zap.Logger
}

// NewWorkbookStore 통합문서를 연다. 파일이 없으면 오류
func NewWorkbookStore(path string, logger *zap.Logger) (*WorkbookStore, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("통합문서 열기 실패 %s: %w", path, err)
	}
	logger.Info("통합문서 저장소 준비 완료", zap.String("path", path))
	return &WorkbookStore{file: f, path: path, logger: logger}, nil
}

// Close 통합문서 핸들 해제
func (s *WorkbookStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

func (s *WorkbookStore) sheetExists(table string) bool {
	idx, err := s.file.GetSheetIndex(table)
	return err == nil && idx >= 0
}

// ReadTable 시트 전체 행 읽기
func (s *WorkbookStore) ReadTable(_ context.Context, table string) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sheetExists(table) {
		return nil, apperr.Configuration("테이블 없음: " + table)
	}
	raw, err := s.file.GetRows(table)
	if err != nil {
		return nil, fmt.Errorf("테이블 %s 읽기 실패: %w", table, err)
	}
	rows := make([]Row, len(raw))
	for i, r := range raw {
		rows[i] = Row(r)
	}
	return rows, nil
}

// FindRow 첫 열에서 key 검색（헤더 제외）
func (s *WorkbookStore) FindRow(_ context.Context, table, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sheetExists(table) {
		return 0, apperr.Configuration("테이블 없음: " + table)
	}
	raw, err := s.file.GetRows(table)
	if err != nil {
		return 0, fmt.Errorf("테이블 %s 읽기 실패: %w", table, err)
	}
	for i, r := range raw {
		if i == 0 {
			continue
		}
		if len(r) > 0 && r[0] == key {
			return i + 1, nil
		}
	}
	return 0, apperr.NotFound("행", key)
}

// WriteCell 단일 셀 쓰기 후 즉시 저장
func (s *WorkbookStore) WriteCell(_ context.Context, table string, row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sheetExists(table) {
		return apperr.Configuration("테이블 없음: " + table)
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("셀 좌표 변환 실패 (%d,%d): %w", col, row, err)
	}
	if err := s.file.SetCellValue(table, cell, value); err != nil {
		return fmt.Errorf("셀 쓰기 실패 %s!%s: %w", table, cell, err)
	}
	return s.save()
}

// AppendRow 마지막 행 뒤에 한 행 추가 후 저장
func (s *WorkbookStore) AppendRow(_ context.Context, table string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sheetExists(table) {
		return apperr.Configuration("테이블 없음: " + table)
	}
	raw, err := s.file.GetRows(table)
	if err != nil {
		return fmt.Errorf("테이블 %s 읽기 실패: %w", table, err)
	}
	next := len(raw) + 1
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, next)
		if err != nil {
			return fmt.Errorf("셀 좌표 변환 실패: %w", err)
		}
		if err := s.file.SetCellValue(table, cell, v); err != nil {
			return fmt.Errorf("셀 쓰기 실패 %s!%s: %w", table, cell, err)
		}
	}
	return s.save()
}

// ClearRange 범위 내 셀을 모두 빈 값으로 만든 후 저장
func (s *WorkbookStore) ClearRange(_ context.Context, table, rangeSpec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sheetExists(table) {
		return apperr.Configuration("테이블 없음: " + table)
	}
	c1, r1, c2, r2, err := ParseRange(rangeSpec)
	if err != nil {
		return err
	}
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return fmt.Errorf("셀 좌표 변환 실패: %w", err)
			}
			if err := s.file.SetCellValue(table, cell, ""); err != nil {
				return fmt.Errorf("셀 비우기 실패 %s!%s: %w", table, cell, err)
			}
		}
	}
	return s.save()
}

func (s *WorkbookStore) save() error {
	if err := s.file.Save(); err != nil {
		return fmt.Errorf("통합문서 저장 실패: %w", err)
	}
	return nil
}
