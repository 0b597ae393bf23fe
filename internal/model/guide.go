package model

// TemperamentGuide 기질가이드 한 행.
// 기질유형을 키로 원생과 매칭되며 지도용 안내 문구를 담는다
type TemperamentGuide struct {
	Type         string // 기질유형
	Traits       string // 핵심특징
	EnergySource string // 에너지원
	Do           string // 지도_DO(해라)
	Dont         string // 지도_DONT(하지마라)
	Script       string // 훈육_스크립트
}
