package dto

// PromotionTestResponse 심사일정 한 행
type PromotionTestResponse struct {
	Date        string `json:"date"`
	StudentName string `json:"student_name"`
	TargetRank  string `json:"target_rank"`
}

// TodayTestsResponse 오늘의 승급심사 브리핑
type TodayTestsResponse struct {
	Date        string                  `json:"date"`
	Count       int                     `json:"count"`
	Challengers []PromotionTestResponse `json:"challengers"`
}
