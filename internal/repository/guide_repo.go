package repository

import (
	"context"
	"strings"

	"github.com/JKM6230/roun-app/internal/model"
	"github.com/JKM6230/roun-app/internal/sheet"
)

// TableGuide 기질가이드 테이블 이름
const TableGuide = "기질가이드"

// GuideRepository 기질가이드 읽기 전용 접근
type GuideRepository interface {
	List(ctx context.Context) ([]model.TemperamentGuide, error)
}

type guideRepo struct {
	store sheet.TableStore
}

// NewGuideRepo GuideRepository 생성
func NewGuideRepo(store sheet.TableStore) GuideRepository {
	return &guideRepo{store: store}
}

var (
	aliasGuideType   = []string{"기질유형"}
	aliasGuideTraits = []string{"핵심특징"}
	aliasGuideEnergy = []string{"에너지원"}
	aliasGuideDo     = []string{"지도_DO(해라)", "지도_DO"}
	aliasGuideDont   = []string{"지도_DONT(하지마라)", "지도_DONT"}
	aliasGuideScript = []string{"훈육_스크립트", "훈육스크립트"}
)

func (r *guideRepo) List(ctx context.Context) ([]model.TemperamentGuide, error) {
	rows, err := r.store.ReadTable(ctx, TableGuide)
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
	typeCol := pickColumn(header, aliasGuideType)
	traitsCol := pickColumn(header, aliasGuideTraits)
	energyCol := pickColumn(header, aliasGuideEnergy)
	doCol := pickColumn(header, aliasGuideDo)
	dontCol := pickColumn(header, aliasGuideDont)
	scriptCol := pickColumn(header, aliasGuideScript)

	guides := make([]model.TemperamentGuide, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		gType := strings.TrimSpace(row.Get(typeCol))
		if gType == "" {
			continue
		}
		guides = append(guides, model.TemperamentGuide{
			Type:         gType,
			Traits:       strings.TrimSpace(row.Get(traitsCol)),
			EnergySource: strings.TrimSpace(row.Get(energyCol)),
			Do:           strings.TrimSpace(row.Get(doCol)),
			Dont:         strings.TrimSpace(row.Get(dontCol)),
			Script:       strings.TrimSpace(row.Get(scriptCol)),
		})
	}
	return guides, nil
}
