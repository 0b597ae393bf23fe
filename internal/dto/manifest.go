package dto

// ManifestEntryResponse 탑승 명단 한 줄
type ManifestEntryResponse struct {
	StudentName string `json:"student_name"`
	Vehicle     string `json:"vehicle"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Confirm     string `json:"confirm"`
}

// VehicleManifestResponse 차량 한 대의 명단과 확인 진행률
type VehicleManifestResponse struct {
	Vehicle         string                  `json:"vehicle"`
	Entries         []ManifestEntryResponse `json:"entries"`
	Confirmed       int                     `json:"confirmed"`
	Total           int                     `json:"total"`
	CompletionRatio float64                 `json:"completion_ratio"`
}

// ManifestResponse 한 구간(등원/하원)의 전체 차량 명단
type ManifestResponse struct {
	Leg      string                    `json:"leg"`
	Date     string                    `json:"date"`
	Weekday  string                    `json:"weekday"`
	Vehicles []VehicleManifestResponse `json:"vehicles"`
}
