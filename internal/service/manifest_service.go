package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/dto"
	"github.com/JKM6230/roun-app/internal/model"
	"github.com/JKM6230/roun-app/internal/repository"
	"github.com/JKM6230/roun-app/internal/schedule"
)

// ManifestService 차량 탑승 명단 생성 업무 인터페이스
type ManifestService interface {
	// Build 한 구간（pickup/dropoff）의 오늘자 차량별 탑승 명단
	Build(ctx context.Context, leg string) (*dto.ManifestResponse, error)
}

type manifestService struct {
	repo   *repository.Repository
	leave  LeaveService
	loc    *time.Location
	clock  Clock
	logger *zap.Logger
}

// NewManifestService ManifestService 인스턴스 생성
func NewManifestService(repo *repository.Repository, leave LeaveService, loc *time.Location, clock Clock, logger *zap.Logger) ManifestService {
	return &manifestService{repo: repo, leave: leave, loc: loc, clock: clock, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Build — 차량별 탑승 명단
// ════════════════════════════════════════════════════════════
//
// 포함 조건: 차량 이용 원생, 오늘 등원 요일, 오늘자 차량 배정이 있는 원생.
// 차량 이름순으로 묶고, 차량 안에서는 시간순（시간 없는 원생은 맨 뒤）,
// 같은 시간이면 이름순으로 고정 정렬한다.

func (s *manifestService) Build(ctx context.Context, leg string) (*dto.ManifestResponse, error) {
	kind, ok := model.ParseLegKind(leg)
	if !ok {
		return nil, ErrUnknownLeg
	}

	today := s.clock().In(s.loc)
	dayCode := schedule.WeekdayCode(today)

	if err := s.leave.ApplyAutoMarking(ctx, today); err != nil {
		s.logger.Warn("장기 결석 자동 반영 실패", zap.Error(err))
	}

	students, err := s.repo.Roster.Load(ctx)
	if err != nil {
		s.logger.Error("명단 조회 실패", zap.Error(err))
		return nil, err
	}

	byVehicle := make(map[string][]dto.ManifestEntryResponse)
	for i := range students {
		st := &students[i]
		if !st.UsesTransport || !st.AttendsOn(dayCode) {
			continue
		}
		tl := st.Leg(kind)
		vehicle := schedule.Resolve(tl.VehicleRaw, dayCode)
		if vehicle == "" {
			continue // 오늘 차량 배정이 없는 원생
		}
		byVehicle[vehicle] = append(byVehicle[vehicle], dto.ManifestEntryResponse{
			StudentName: st.Name,
			Vehicle:     vehicle,
			Time:        schedule.Resolve(tl.TimeRaw, dayCode),
			Location:    schedule.Resolve(tl.LocationRaw, dayCode),
			Confirm:     confirmToken(tl.Confirm),
		})
	}

	vehicles := make([]string, 0, len(byVehicle))
	for v := range byVehicle {
		vehicles = append(vehicles, v)
	}
	sort.Strings(vehicles)

	resp := &dto.ManifestResponse{
		Leg:      string(kind),
		Date:     today.Format("2006-01-02"),
		Weekday:  dayCode,
		Vehicles: make([]dto.VehicleManifestResponse, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		entries := byVehicle[v]
		sortEntries(entries)

		confirmed := 0
		for _, e := range entries {
			if e.Confirm != dto.ConfirmNone {
				confirmed++
			}
		}
		ratio := 0.0
		if len(entries) > 0 {
			ratio = float64(confirmed) / float64(len(entries))
		}
		resp.Vehicles = append(resp.Vehicles, dto.VehicleManifestResponse{
			Vehicle:         v,
			Entries:         entries,
			Confirmed:       confirmed,
			Total:           len(entries),
			CompletionRatio: ratio,
		})
	}
	return resp, nil
}

// sortEntries 시간순 정렬. 해석 불가/빈 시간은 맨 뒤, 동률은 이름순
func sortEntries(entries []dto.ManifestEntryResponse) {
	sort.SliceStable(entries, func(i, j int) bool {
		ti, iOK := parseClock(entries[i].Time)
		tj, jOK := parseClock(entries[j].Time)
		switch {
		case iOK && jOK && !ti.Equal(tj):
			return ti.Before(tj)
		case iOK != jOK:
			return iOK
		default:
			return entries[i].StudentName < entries[j].StudentName
		}
	})
}

func parseClock(v string) (time.Time, bool) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
