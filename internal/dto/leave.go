package dto

// RegisterLeaveRequest 장기 결석 등록 요청
type RegisterLeaveRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}
