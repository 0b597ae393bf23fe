package dto

// ArchiveResponse 보관 실행 결과
type ArchiveResponse struct {
	OK       bool   `json:"ok"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	Archived int    `json:"archived"`
}

// ResetResponse 작업 필드 초기화 결과
type ResetResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Cleared int    `json:"cleared"`
}
