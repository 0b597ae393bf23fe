package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/model"
	"github.com/JKM6230/roun-app/internal/repository"
)

func setupGuideService(students []model.Student, guides []model.TemperamentGuide) GuideService {
	repo := &repository.Repository{
		Roster: newMockRosterRepo(students...),
		Guide:  &mockGuideRepo{guides: guides},
	}
	return NewGuideService(repo, zap.NewNop())
}

var testGuides = []model.TemperamentGuide{
	{
		Type:         "불",
		Traits:       "에너지가 넘치고 승부욕이 강함",
		EnergySource: "활동과 경쟁",
		Do:           "역할을 맡겨라",
		Dont:         "여럿 앞에서 꾸짖지 마라",
		Script:       "네가 먼저 시범을 보여줄래?",
	},
	{Type: "물", Traits: "차분하고 관찰을 좋아함"},
}

func TestGuideByType_Found(t *testing.T) {
	svc := setupGuideService(nil, testGuides)

	guide, err := svc.GetByType(context.Background(), "불")
	if err != nil {
		t.Fatalf("GetByType 실패: %v", err)
	}
	if guide.Do != "역할을 맡겨라" {
		t.Errorf("기대 Do=역할을 맡겨라, 실제=%s", guide.Do)
	}
}

func TestGuideByType_TrimsInput(t *testing.T) {
	svc := setupGuideService(nil, testGuides)

	if _, err := svc.GetByType(context.Background(), " 물 "); err != nil {
		t.Errorf("앞뒤 공백은 무시해야 함: %v", err)
	}
}

func TestGuideByType_NotFound(t *testing.T) {
	svc := setupGuideService(nil, testGuides)

	_, err := svc.GetByType(context.Background(), "바람")
	if !errors.Is(err, ErrGuideNotFound) {
		t.Errorf("기대 ErrGuideNotFound, 실제: %v", err)
	}
}

func TestGuideForStudent_Found(t *testing.T) {
	st := testStudent("김지안")
	st.Temperament = "불"
	svc := setupGuideService([]model.Student{st}, testGuides)

	resp, err := svc.GetForStudent(context.Background(), "김지안")
	if err != nil {
		t.Fatalf("GetForStudent 실패: %v", err)
	}
	if resp.Temperament != "불" || resp.Guide.Type != "불" {
		t.Errorf("원생의 기질유형 가이드가 나와야 함: %+v", resp)
	}
}

func TestGuideForStudent_NoTemperament(t *testing.T) {
	svc := setupGuideService([]model.Student{testStudent("김지안")}, testGuides)

	_, err := svc.GetForStudent(context.Background(), "김지안")
	if !errors.Is(err, ErrStudentNoTemperament) {
		t.Errorf("기대 ErrStudentNoTemperament, 실제: %v", err)
	}
}

func TestGuideForStudent_StudentMissing(t *testing.T) {
	svc := setupGuideService(nil, testGuides)

	_, err := svc.GetForStudent(context.Background(), "없는원생")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("기대 ErrStudentNotFound, 실제: %v", err)
	}
}
