package repository

import (
	"context"
	"testing"
)

func TestGuideList_ParsesRows(t *testing.T) {
	store := newFakeStore()
	store.setTable(TableGuide, [][]string{
		{"기질유형", "핵심특징", "에너지원", "지도_DO(해라)", "지도_DONT(하지마라)", "훈육_스크립트"},
		{"불", "승부욕이 강함", "경쟁", "역할을 맡겨라", "여럿 앞에서 꾸짖지 마라", "네가 시범을 보여줄래?"},
		{"", "유형 없는 행", "", "", "", ""},
		{"물", "관찰을 좋아함", "", "", "", ""},
	})
	repo := NewGuideRepo(store)

	guides, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List 실패: %v", err)
	}
	if len(guides) != 2 {
		t.Fatalf("유형이 빈 행은 건너뛴다, 실제=%d건", len(guides))
	}
	if guides[0].Do != "역할을 맡겨라" || guides[0].Script != "네가 시범을 보여줄래?" {
		t.Errorf("가이드 열이 제대로 매핑되어야 함: %+v", guides[0])
	}
}

func TestGuideList_HeaderAliases(t *testing.T) {
	store := newFakeStore()
	store.setTable(TableGuide, [][]string{
		{"기질유형", "핵심특징", "에너지원", "지도_DO", "지도_DONT", "훈육스크립트"},
		{"불", "특징", "에너지", "해라", "하지마라", "스크립트"},
	})
	repo := NewGuideRepo(store)

	guides, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List 실패: %v", err)
	}
	if guides[0].Dont != "하지마라" || guides[0].Script != "스크립트" {
		t.Errorf("별칭 헤더도 해석되어야 함: %+v", guides[0])
	}
}
