package repository

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/sheet"
	"github.com/JKM6230/roun-app/pkg/apperr"
)

// TableLedger 출석부 테이블 이름
const TableLedger = "출석부"

// ledgerNameHeader 출석부 A열 헤더
const ledgerNameHeader = "이름"

// LedgerRepository 출석부（날짜별 표식 원장）데이터 접근 인터페이스.
// 원장은 추가 전용이다: 보관 1회마다 날짜 헤더 열 하나가 늘어난다
type LedgerRepository interface {
	// AppendColumn 이름 열을 현재 명단 순서와 동기화한 뒤
	// dateHeader 를 헤더로 하는 새 열 하나에 marks 를 순서대로 기록한다.
	// marks[i] 는 names[i] 의 표식이다.
	// 출석부 테이블이 없으면 ConfigurationError — 아무것도 쓰지 않는다.
	// 추가 기록은 멱등이 아니므로 어떤 단계에서도 재시도하지 않는다
	AppendColumn(ctx context.Context, names, marks []string, dateHeader string) error
}

type ledgerRepo struct {
	store  sheet.TableStore
	logger *zap.Logger
}

// NewLedgerRepo LedgerRepository 생성
func NewLedgerRepo(store sheet.TableStore, logger *zap.Logger) LedgerRepository {
	return &ledgerRepo{store: store, logger: logger}
}

func (r *ledgerRepo) AppendColumn(ctx context.Context, names, marks []string, dateHeader string) error {
	if len(names) != len(marks) {
		return apperr.Validation("이름 수와 표식 수가 다릅니다")
	}

	// 선행 조건 검사: 테이블이 없으면 부분 기록 없이 바로 실패한다
	rows, err := r.store.ReadTable(ctx, TableLedger)
	if err != nil {
		return err
	}

	// 이름 열 동기화: 명단 크기가 달라졌으면 이름 열 전체를 다시 쓴다
	existing := make([]string, 0, len(rows))
	for i := 1; i < len(rows); i++ {
		if v := strings.TrimSpace(rows[i].Get(1)); v != "" {
			existing = append(existing, v)
		}
	}
	if len(existing) != len(names) {
		r.logger.Info("출석부 이름 열 재작성",
			zap.Int("before", len(existing)), zap.Int("after", len(names)))
		if err := r.rewriteNameColumn(ctx, len(rows), names); err != nil {
			return err
		}
	}

	// 다음 빈 열 = 헤더 행 길이 + 1
	col := 1
	if len(rows) > 0 {
		col = len(rows[0]) + 1
	}
	if col == 1 {
		// 헤더 행이 아예 비어 있으면 A열은 이름 헤더 자리다
		if err := r.store.WriteCell(ctx, TableLedger, 1, 1, ledgerNameHeader); err != nil {
			return err
		}
		col = 2
	}

	// 날짜 헤더 + 표식（명단 순서 고정）. 실패는 그대로 표면화한다
	if err := r.store.WriteCell(ctx, TableLedger, 1, col, dateHeader); err != nil {
		return fmt.Errorf("출석부 날짜 헤더 기록 실패: %w", err)
	}
	for i, mark := range marks {
		if err := r.store.WriteCell(ctx, TableLedger, i+2, col, mark); err != nil {
			return fmt.Errorf("출석부 표식 기록 실패（%s）: %w", names[i], err)
		}
	}
	return nil
}

// rewriteNameColumn A열（헤더 제외）을 완전히 다시 쓴다
func (r *ledgerRepo) rewriteNameColumn(ctx context.Context, totalRows int, names []string) error {
	// 기존 이름이 더 많았다면 남는 칸은 먼저 비운다
	if totalRows-1 > len(names) {
		spec := fmt.Sprintf("A%d:A%d", len(names)+2, totalRows)
		if err := r.store.ClearRange(ctx, TableLedger, spec); err != nil {
			return fmt.Errorf("출석부 이름 열 비우기 실패: %w", err)
		}
	}
	for i, name := range names {
		if err := r.store.WriteCell(ctx, TableLedger, i+2, 1, name); err != nil {
			return fmt.Errorf("출석부 이름 기록 실패（%s）: %w", name, err)
		}
	}
	return nil
}
