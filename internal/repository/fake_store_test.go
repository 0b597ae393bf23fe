package repository

import (
	"context"
	"errors"

	"github.com/JKM6230/roun-app/internal/sheet"
	"github.com/JKM6230/roun-app/pkg/apperr"
)

// fakeStore 테스트용 인메모리 TableStore.
// failNextWrites 로 일시적 쓰기 실패를 주입할 수 있다
type fakeStore struct {
	tables         map[string][][]string
	failNextWrites int
	writeCalls     int
}

var errTransient = errors.New("네트워크 일시 오류")

func newFakeStore() *fakeStore {
	return &fakeStore{tables: make(map[string][][]string)}
}

func (f *fakeStore) setTable(name string, rows [][]string) {
	f.tables[name] = rows
}

func (f *fakeStore) ReadTable(_ context.Context, table string) ([]sheet.Row, error) {
	raw, ok := f.tables[table]
	if !ok {
		return nil, apperr.Configuration("테이블 없음: " + table)
	}
	rows := make([]sheet.Row, len(raw))
	for i, r := range raw {
		rows[i] = sheet.Row(r)
	}
	return rows, nil
}

func (f *fakeStore) FindRow(_ context.Context, table, key string) (int, error) {
	raw, ok := f.tables[table]
	if !ok {
		return 0, apperr.Configuration("테이블 없음: " + table)
	}
	for i := 1; i < len(raw); i++ {
		if len(raw[i]) > 0 && raw[i][0] == key {
			return i + 1, nil
		}
	}
	return 0, apperr.NotFound("행", key)
}

func (f *fakeStore) WriteCell(_ context.Context, table string, row, col int, value string) error {
	f.writeCalls++
	if f.failNextWrites > 0 {
		f.failNextWrites--
		return errTransient
	}
	raw, ok := f.tables[table]
	if !ok {
		return apperr.Configuration("테이블 없음: " + table)
	}
	for len(raw) < row {
		raw = append(raw, nil)
	}
	for len(raw[row-1]) < col {
		raw[row-1] = append(raw[row-1], "")
	}
	raw[row-1][col-1] = value
	f.tables[table] = raw
	return nil
}

func (f *fakeStore) AppendRow(_ context.Context, table string, values []string) error {
	raw, ok := f.tables[table]
	if !ok {
		return apperr.Configuration("테이블 없음: " + table)
	}
	f.tables[table] = append(raw, values)
	return nil
}

func (f *fakeStore) ClearRange(_ context.Context, table, rangeSpec string) error {
	c1, r1, c2, r2, err := sheet.ParseRange(rangeSpec)
	if err != nil {
		return err
	}
	raw, ok := f.tables[table]
	if !ok {
		return apperr.Configuration("테이블 없음: " + table)
	}
	for r := r1; r <= r2 && r <= len(raw); r++ {
		for c := c1; c <= c2 && c <= len(raw[r-1]); c++ {
			raw[r-1][c-1] = ""
		}
	}
	return nil
}

// cell 검증용 직접 읽기（1부터）
func (f *fakeStore) cell(table string, row, col int) string {
	raw := f.tables[table]
	if row > len(raw) || col > len(raw[row-1]) {
		return ""
	}
	return raw[row-1][col-1]
}
