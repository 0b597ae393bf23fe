package repository

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/model"
	"github.com/JKM6230/roun-app/internal/sheet"
)

// TableTestSchedule 심사일정 테이블 이름
const TableTestSchedule = "심사일정"

// TestScheduleRepository 심사일정 읽기 전용 접근
type TestScheduleRepository interface {
	List(ctx context.Context) ([]model.PromotionTest, error)
}

type testSchedRepo struct {
	store  sheet.TableStore
	logger *zap.Logger
}

// NewTestScheduleRepo TestScheduleRepository 생성
func NewTestScheduleRepo(store sheet.TableStore, logger *zap.Logger) TestScheduleRepository {
	return &testSchedRepo{store: store, logger: logger}
}

var (
	aliasTestDate = []string{"날짜", "심사일"}
	aliasTestName = []string{"이름"}
	aliasTestRank = []string{"목표급수", "목표 급수"}
)

func (r *testSchedRepo) List(ctx context.Context) ([]model.PromotionTest, error) {
	rows, err := r.store.ReadTable(ctx, TableTestSchedule)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		header[strings.TrimSpace(h)] = i + 1
	}
	dateCol := pickColumn(header, aliasTestDate)
	nameCol := pickColumn(header, aliasTestName)
	rankCol := pickColumn(header, aliasTestRank)

	tests := make([]model.PromotionTest, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		name := strings.TrimSpace(row.Get(nameCol))
		if name == "" {
			continue
		}
		date, ok := parseSheetDate(row.Get(dateCol))
		if !ok {
			// 날짜가 깨진 행은 건너뛴다 — 읽기는 실패시키지 않는다
			r.logger.Warn("심사일정 날짜 해석 실패, 행 건너뜀",
				zap.Int("row", i+1), zap.String("value", row.Get(dateCol)))
			continue
		}
		tests = append(tests, model.PromotionTest{
			Date:        date,
			StudentName: name,
			TargetRank:  strings.TrimSpace(row.Get(rankCol)),
		})
	}
	return tests, nil
}

// parseSheetDate 시트에 섞여 들어오는 몇 가지 날짜 표기를 허용한다
func parseSheetDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{"2006-01-02", "2006.01.02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
