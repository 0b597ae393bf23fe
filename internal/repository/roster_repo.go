package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/model"
	"github.com/JKM6230/roun-app/internal/sheet"
	"github.com/JKM6230/roun-app/pkg/apperr"
)

// TableRoster 원생명단 테이블 이름
const TableRoster = "원생명단"

// RosterRepository 원생명단 데이터 접근 인터페이스.
// 모든 변경은 "행 조회 → 연동 계산 → 셀 쓰기"를 하나의 논리 단위로 직렬화한다
type RosterRepository interface {
	// Load 전체 명단을 읽는다（TTL 내 캐시 재사용）
	Load(ctx context.Context) ([]model.Student, error)
	// Invalidate 읽기 캐시 강제 무효화
	Invalidate()
	// UpdateAttendance 출석 상태와 연동된 두 구간 상태를 함께 기록한다
	UpdateAttendance(ctx context.Context, name string, attendance model.AttendanceState, pickup, dropoff model.ConfirmState) error
	// UpdateLegConfirm 단일 구간 확인 상태만 기록한다
	UpdateLegConfirm(ctx context.Context, name string, leg model.LegKind, state model.ConfirmState) error
	// UpdateNote 비고 덮어쓰기
	UpdateNote(ctx context.Context, name, note string) error
	// UpdateLeave 장기 결석 셀 기록（빈 값이면 해제）
	UpdateLeave(ctx context.Context, name, leaveCell string) error
	// ResetDay 전 원생의 출석/구간/비고 작업 필드를 비운다
	ResetDay(ctx context.Context) error
}

// ── 열 별칭（명세된 고정 해석 순서, 로드 시 한 번만 해석） ──

var (
	aliasName          = []string{"이름"}
	aliasCohort        = []string{"반", "소속반", "현재급", "단"}
	aliasWeekdays      = []string{"요일", "등원요일"}
	aliasTemperament   = []string{"기질유형"}
	aliasTransport     = []string{"차량이용", "차량탑승"}
	aliasPickupVehicle = []string{"등원차량", "차량"}
	aliasPickupTime    = []string{"등원시간", "승차시간"}
	aliasPickupLoc     = []string{"등원장소", "승차장소"}
	aliasPickupConfirm = []string{"등원확인"}
	aliasDropVehicle   = []string{"하원차량", "차량"}
	aliasDropTime      = []string{"하원시간"}
	aliasDropLoc       = []string{"하원장소", "하차장소"}
	aliasDropConfirm   = []string{"하원확인"}
	aliasAttendance    = []string{"출석", "출석상태"}
	aliasNote          = []string{"비고", "메모"}
	aliasLeave         = []string{"장기결석", "장기결석계"}
)

// rosterColumns 로드 시 해석된 열 인덱스（0 = 해당 열 없음）
type rosterColumns struct {
	name, cohort, weekdays, temperament, transport          int
	pickupVehicle, pickupTime, pickupLoc, pickupConfirm     int
	dropVehicle, dropTime, dropLoc, dropConfirm             int
	attendance, note, leave                                 int
}

func pickColumn(header map[string]int, aliases []string) int {
	for _, a := range aliases {
		if idx, ok := header[a]; ok {
			return idx
		}
	}
	return 0
}

func resolveColumns(headerRow sheet.Row) (rosterColumns, error) {
	header := make(map[string]int, len(headerRow))
	for i, h := range headerRow {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, dup := header[h]; !dup {
			header[h] = i + 1
		}
	}

	cols := rosterColumns{
		name:          pickColumn(header, aliasName),
		cohort:        pickColumn(header, aliasCohort),
		weekdays:      pickColumn(header, aliasWeekdays),
		temperament:   pickColumn(header, aliasTemperament),
		transport:     pickColumn(header, aliasTransport),
		pickupVehicle: pickColumn(header, aliasPickupVehicle),
		pickupTime:    pickColumn(header, aliasPickupTime),
		pickupLoc:     pickColumn(header, aliasPickupLoc),
		pickupConfirm: pickColumn(header, aliasPickupConfirm),
		dropVehicle:   pickColumn(header, aliasDropVehicle),
		dropTime:      pickColumn(header, aliasDropTime),
		dropLoc:       pickColumn(header, aliasDropLoc),
		dropConfirm:   pickColumn(header, aliasDropConfirm),
		attendance:    pickColumn(header, aliasAttendance),
		note:          pickColumn(header, aliasNote),
		leave:         pickColumn(header, aliasLeave),
	}
	if cols.name == 0 {
		return cols, apperr.Configuration(TableRoster + " 테이블에 이름 열이 없습니다")
	}
	return cols, nil
}

// truthy 차량이용 플래그 판정. 열 자체가 없으면 전원 이용으로 본다
func parseTransportFlag(v string) bool {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "X", "N", "NO", "아니오", "미사용", "FALSE":
		return false
	default:
		return true
	}
}

// ── 구현 ──

type rosterRepo struct {
	store      sheet.TableStore
	logger     *zap.Logger
	cacheTTL   time.Duration
	retryDelay time.Duration

	mu       sync.Mutex
	students []model.Student
	rowIndex map[string]int // 이름 → 시트 행 번호. 로드 시 한 번 구축
	cols     rosterColumns
	loadedAt time.Time
}

// NewRosterRepo RosterRepository 생성
func NewRosterRepo(store sheet.TableStore, cacheTTL, retryDelay time.Duration, logger *zap.Logger) RosterRepository {
	return &rosterRepo{
		store:      store,
		logger:     logger,
		cacheTTL:   cacheTTL,
		retryDelay: retryDelay,
	}
}

func (r *rosterRepo) Load(ctx context.Context) ([]model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	return copyStudents(r.students), nil
}

func (r *rosterRepo) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidateLocked()
}

func (r *rosterRepo) invalidateLocked() {
	r.students = nil
	r.rowIndex = nil
	r.loadedAt = time.Time{}
}

// ensureLoadedLocked 캐시가 비었거나 TTL 을 넘겼으면 다시 읽는다
func (r *rosterRepo) ensureLoadedLocked(ctx context.Context) error {
	if r.students != nil && time.Since(r.loadedAt) < r.cacheTTL {
		return nil
	}

	rows, err := r.store.ReadTable(ctx, TableRoster)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return apperr.Configuration(TableRoster + " 테이블이 비어 있습니다")
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return err
	}

	students := make([]model.Student, 0, len(rows)-1)
	rowIndex := make(map[string]int, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		name := strings.TrimSpace(row.Get(cols.name))
		if name == "" {
			continue // 빈 행은 건너뛴다
		}
		if _, dup := rowIndex[name]; dup {
			r.logger.Warn("중복된 원생 이름, 첫 행만 사용", zap.String("name", name))
			continue
		}

		s := model.Student{
			Row:         i + 1,
			Name:        name,
			Cohort:      strings.TrimSpace(row.Get(cols.cohort)),
			WeekdayMask: strings.TrimSpace(row.Get(cols.weekdays)),
			Temperament: strings.TrimSpace(row.Get(cols.temperament)),
			Attendance:  model.ParseAttendanceState(row.Get(cols.attendance)),
			Note:        strings.TrimSpace(row.Get(cols.note)),
		}
		if cols.transport == 0 {
			s.UsesTransport = true
		} else {
			s.UsesTransport = parseTransportFlag(row.Get(cols.transport))
		}
		s.Pickup = model.TransportLeg{
			VehicleRaw:  strings.TrimSpace(row.Get(cols.pickupVehicle)),
			TimeRaw:     strings.TrimSpace(row.Get(cols.pickupTime)),
			LocationRaw: strings.TrimSpace(row.Get(cols.pickupLoc)),
			Confirm:     model.ParseConfirmState(row.Get(cols.pickupConfirm)),
		}
		s.Dropoff = model.TransportLeg{
			VehicleRaw:  strings.TrimSpace(row.Get(cols.dropVehicle)),
			TimeRaw:     strings.TrimSpace(row.Get(cols.dropTime)),
			LocationRaw: strings.TrimSpace(row.Get(cols.dropLoc)),
			Confirm:     model.ParseConfirmState(row.Get(cols.dropConfirm)),
		}
		if leave, ok := model.ParseLeave(row.Get(cols.leave)); ok {
			s.Leave = leave
		}

		rowIndex[name] = s.Row
		students = append(students, s)
	}

	r.students = students
	r.rowIndex = rowIndex
	r.cols = cols
	r.loadedAt = time.Now()
	return nil
}

// copyStudents 캐시와의 공유를 끊은 사본을 돌려준다
func copyStudents(src []model.Student) []model.Student {
	out := make([]model.Student, len(src))
	copy(out, src)
	for i := range out {
		if out[i].Leave != nil {
			leave := *out[i].Leave
			out[i].Leave = &leave
		}
	}
	return out
}

// ── 변경 연산 ──

// cellWrite 한 번에 기록할 셀 하나
type cellWrite struct {
	col   int
	value string
	what  string // 열이 없을 때 오류 메시지에 쓸 이름
}

func (r *rosterRepo) UpdateAttendance(ctx context.Context, name string, attendance model.AttendanceState, pickup, dropoff model.ConfirmState) error {
	return r.writeRow(ctx, name, func(cols rosterColumns) []cellWrite {
		return []cellWrite{
			{cols.attendance, string(attendance), "출석"},
			{cols.pickupConfirm, string(pickup), "등원확인"},
			{cols.dropConfirm, string(dropoff), "하원확인"},
		}
	})
}

func (r *rosterRepo) UpdateLegConfirm(ctx context.Context, name string, leg model.LegKind, state model.ConfirmState) error {
	return r.writeRow(ctx, name, func(cols rosterColumns) []cellWrite {
		if leg == model.LegDropoff {
			return []cellWrite{{cols.dropConfirm, string(state), "하원확인"}}
		}
		return []cellWrite{{cols.pickupConfirm, string(state), "등원확인"}}
	})
}

func (r *rosterRepo) UpdateNote(ctx context.Context, name, note string) error {
	return r.writeRow(ctx, name, func(cols rosterColumns) []cellWrite {
		return []cellWrite{{cols.note, note, "비고"}}
	})
}

func (r *rosterRepo) UpdateLeave(ctx context.Context, name, leaveCell string) error {
	return r.writeRow(ctx, name, func(cols rosterColumns) []cellWrite {
		return []cellWrite{{cols.leave, leaveCell, "장기결석"}}
	})
}

// writeRow 이름으로 행을 찾아 셀들을 기록하고 캐시를 무효화한다.
// 뮤텍스로 전체를 감싸 연동 쓰기와 다른 쓰기가 끼어들지 않게 한다
func (r *rosterRepo) writeRow(ctx context.Context, name string, build func(rosterColumns) []cellWrite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	row, ok := r.rowIndex[name]
	if !ok {
		return apperr.NotFound("원생", name)
	}
	writes := build(r.cols)

	for _, w := range writes {
		if w.col == 0 {
			return apperr.Configuration(TableRoster + " 테이블에 " + w.what + " 열이 없습니다")
		}
	}

	for _, w := range writes {
		if err := r.writeCellRetryLocked(ctx, row, w.col, w.value); err != nil {
			// 부분 기록 가능성이 있으므로 캐시는 반드시 버린다
			r.invalidateLocked()
			return err
		}
	}

	r.invalidateLocked()
	return nil
}

// writeCellRetryLocked 단일 셀 덮어쓰기는 멱등이므로 고정 지연 후 1회 재시도한다
func (r *rosterRepo) writeCellRetryLocked(ctx context.Context, row, col int, value string) error {
	err := r.store.WriteCell(ctx, TableRoster, row, col, value)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperr.ErrConfiguration) || errors.Is(err, apperr.ErrNotFound) {
		return err // 일시적 오류가 아니므로 재시도하지 않는다
	}

	r.logger.Warn("셀 쓰기 실패, 재시도", zap.Int("row", row), zap.Int("col", col), zap.Error(err))
	time.Sleep(r.retryDelay)

	if err := r.store.WriteCell(ctx, TableRoster, row, col, value); err != nil {
		op := fmt.Sprintf("writeCell %s(%d,%d)", TableRoster, row, col)
		return apperr.RecoverableWrite(op, err)
	}
	return nil
}

// ResetDay 출석/등원확인/하원확인/비고 네 작업 열을 전 원생에 대해 비운다.
// 보관（출석부 기록）과는 별도 연산이다 — 보관 실패 시 하루치가 사라지지 않도록
func (r *rosterRepo) ResetDay(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	cols := []struct {
		idx  int
		what string
	}{
		{r.cols.attendance, "출석"},
		{r.cols.pickupConfirm, "등원확인"},
		{r.cols.dropConfirm, "하원확인"},
		{r.cols.note, "비고"},
	}

	for _, s := range r.students {
		for _, c := range cols {
			if c.idx == 0 {
				continue // 없는 열은 비울 것도 없다
			}
			if err := r.writeCellRetryLocked(ctx, s.Row, c.idx, ""); err != nil {
				r.invalidateLocked()
				return err
			}
		}
	}

	r.invalidateLocked()
	return nil
}
