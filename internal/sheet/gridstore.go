package sheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JKM6230/roun-app/pkg/apperr"
)

// Cell 셀 그리드 미러 한 칸 — sheet_cells 테이블에 대응
type Cell struct {
	Table     string    `gorm:"primaryKey;column:table_name"`
	RowIdx    int       `gorm:"primaryKey;column:row_idx"`
	ColIdx    int       `gorm:"primaryKey;column:col_idx"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName 테이블명 지정
func (Cell) TableName() string { return "sheet_cells" }

// GridStore 공유 스프레드시트 없이 운용할 때 쓰는 PostgreSQL 셀 그리드 구현.
// 시트와 같은 (테이블, 행, 열) 주소 체계를 그대로 유지한다
type GridStore struct {
	db *gorm.DB
}

// NewGridStore GridStore 생성
func NewGridStore(db *gorm.DB) *GridStore {
	return &GridStore{db: db}
}

// ReadTable 테이블 전체를 조밀한 행 배열로 읽는다.
// 셀이 하나도 없으면 테이블이 생성되지 않은 것으로 본다
func (s *GridStore) ReadTable(ctx context.Context, table string) ([]Row, error) {
	var cells []Cell
	err := s.db.WithContext(ctx).
		Where("table_name = ?", table).
		Order("row_idx, col_idx").
		Find(&cells).Error
	if err != nil {
		return nil, fmt.Errorf("테이블 %s 읽기 실패: %w", table, err)
	}
	if len(cells) == 0 {
		return nil, apperr.Configuration("테이블 없음: " + table)
	}

	maxRow, maxCol := 0, 0
	for _, c := range cells {
		if c.RowIdx > maxRow {
			maxRow = c.RowIdx
		}
		if c.ColIdx > maxCol {
			maxCol = c.ColIdx
		}
	}
	rows := make([]Row, maxRow)
	for i := range rows {
		rows[i] = make(Row, maxCol)
	}
	for _, c := range cells {
		rows[c.RowIdx-1][c.ColIdx-1] = c.Value
	}
	// 시트처럼 행 끝의 빈 셀은 잘라낸다
	for i, r := range rows {
		end := len(r)
		for end > 0 && r[end-1] == "" {
			end--
		}
		rows[i] = r[:end]
	}
	return rows, nil
}

// FindRow 첫 열에서 key 와 일치하는 행 번호（헤더 제외）
func (s *GridStore) FindRow(ctx context.Context, table, key string) (int, error) {
	var cell Cell
	err := s.db.WithContext(ctx).
		Where("table_name = ? AND col_idx = 1 AND row_idx > 1 AND value = ?", table, key).
		Order("row_idx").
		First(&cell).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if exists, eerr := s.tableExists(ctx, table); eerr == nil && !exists {
				return 0, apperr.Configuration("테이블 없음: " + table)
			}
			return 0, apperr.NotFound("행", key)
		}
		return 0, fmt.Errorf("테이블 %s 검색 실패: %w", table, err)
	}
	return cell.RowIdx, nil
}

// WriteCell 단일 셀 upsert
func (s *GridStore) WriteCell(ctx context.Context, table string, row, col int, value string) error {
	cell := Cell{Table: table, RowIdx: row, ColIdx: col, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "table_name"}, {Name: "row_idx"}, {Name: "col_idx"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&cell).Error
	if err != nil {
		return fmt.Errorf("셀 쓰기 실패 %s(%d,%d): %w", table, row, col, err)
	}
	return nil
}

// AppendRow 마지막 행 뒤에 한 행을 트랜잭션으로 추가한다
func (s *GridStore) AppendRow(ctx context.Context, table string, values []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxRow int
		err := tx.Model(&Cell{}).
			Where("table_name = ?", table).
			Select("COALESCE(MAX(row_idx), 0)").
			Scan(&maxRow).Error
		if err != nil {
			return fmt.Errorf("테이블 %s 행 수 조회 실패: %w", table, err)
		}
		if maxRow == 0 {
			return apperr.Configuration("테이블 없음: " + table)
		}

		now := time.Now()
		cells := make([]Cell, 0, len(values))
		for i, v := range values {
			cells = append(cells, Cell{
				Table: table, RowIdx: maxRow + 1, ColIdx: i + 1,
				Value: v, UpdatedAt: now,
			})
		}
		if err := tx.Create(&cells).Error; err != nil {
			return fmt.Errorf("행 추가 실패 %s: %w", table, err)
		}
		return nil
	})
}

// ClearRange 범위 내 셀 삭제（읽기 시 빈 값과 동일하게 취급된다）
func (s *GridStore) ClearRange(ctx context.Context, table, rangeSpec string) error {
	c1, r1, c2, r2, err := ParseRange(rangeSpec)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).
		Where("table_name = ? AND row_idx BETWEEN ? AND ? AND col_idx BETWEEN ? AND ?",
			table, r1, r2, c1, c2).
		Delete(&Cell{}).Error
	if err != nil {
		return fmt.Errorf("범위 비우기 실패 %s %s: %w", table, rangeSpec, err)
	}
	return nil
}

func (s *GridStore) tableExists(ctx context.Context, table string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Cell{}).
		Where("table_name = ?", table).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}
