package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/dto"
	"github.com/JKM6230/roun-app/internal/model"
	"github.com/JKM6230/roun-app/internal/repository"
)

// ── 기질가이드 모듈 업무 오류 ──

var (
	ErrGuideNotFound        = errors.New("해당 기질유형의 가이드가 없습니다")
	ErrStudentNoTemperament = errors.New("원생에 기질유형이 지정되어 있지 않습니다")
)

// GuideService 기질가이드 조회 업무 인터페이스
type GuideService interface {
	// GetByType 기질유형으로 가이드 조회
	GetByType(ctx context.Context, guideType string) (*dto.GuideResponse, error)
	// GetForStudent 원생 이름으로 그 원생의 기질가이드 조회
	GetForStudent(ctx context.Context, name string) (*dto.StudentGuideResponse, error)
}

type guideService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGuideService GuideService 인스턴스 생성
func NewGuideService(repo *repository.Repository, logger *zap.Logger) GuideService {
	return &guideService{repo: repo, logger: logger}
}

func (s *guideService) GetByType(ctx context.Context, guideType string) (*dto.GuideResponse, error) {
	guide, err := s.findGuide(ctx, guideType)
	if err != nil {
		return nil, err
	}
	resp := toGuideResponse(guide)
	return &resp, nil
}

func (s *guideService) GetForStudent(ctx context.Context, name string) (*dto.StudentGuideResponse, error) {
	students, err := s.repo.Roster.Load(ctx)
	if err != nil {
		s.logger.Error("명단 조회 실패", zap.Error(err))
		return nil, err
	}

	var temperament string
	found := false
	for i := range students {
		if students[i].Name == name {
			temperament = students[i].Temperament
			found = true
			break
		}
	}
	if !found {
		return nil, ErrStudentNotFound
	}
	if temperament == "" {
		return nil, ErrStudentNoTemperament
	}

	guide, err := s.findGuide(ctx, temperament)
	if err != nil {
		return nil, err
	}
	return &dto.StudentGuideResponse{
		StudentName: name,
		Temperament: temperament,
		Guide:       toGuideResponse(guide),
	}, nil
}

func (s *guideService) findGuide(ctx context.Context, guideType string) (*model.TemperamentGuide, error) {
	guides, err := s.repo.Guide.List(ctx)
	if err != nil {
		s.logger.Error("기질가이드 조회 실패", zap.Error(err))
		return nil, err
	}

	want := strings.TrimSpace(guideType)
	for i := range guides {
		if guides[i].Type == want {
			return &guides[i], nil
		}
	}
	return nil, ErrGuideNotFound
}

func toGuideResponse(g *model.TemperamentGuide) dto.GuideResponse {
	return dto.GuideResponse{
		Type:         g.Type,
		Traits:       g.Traits,
		EnergySource: g.EnergySource,
		Do:           g.Do,
		Dont:         g.Dont,
		Script:       g.Script,
	}
}
