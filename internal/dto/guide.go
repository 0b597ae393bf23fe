package dto

// GuideResponse 기질가이드 한 행
type GuideResponse struct {
	Type         string `json:"type"`
	Traits       string `json:"traits"`
	EnergySource string `json:"energy_source"`
	Do           string `json:"do"`
	Dont         string `json:"dont"`
	Script       string `json:"script"`
}

// StudentGuideResponse 원생 이름으로 조회한 기질가이드
type StudentGuideResponse struct {
	StudentName string        `json:"student_name"`
	Temperament string        `json:"temperament"`
	Guide       GuideResponse `json:"guide"`
}
