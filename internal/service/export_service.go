package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/JKM6230/roun-app/internal/dto"
)

// ── 내보내기 모듈 업무 오류 ──

var ErrExportGenerateFail = errors.New("Excel 파일 생성에 실패했습니다")

// legTitles 구간별 문서 제목
var legTitles = map[string]string{
	"pickup":  "등원 차량 명단",
	"dropoff": "하원 차량 명단",
}

// ExportService 내보내기 업무 인터페이스
//
// 탑승 명단을 기사에게 전달할 수 있는 Excel (.xlsx) 로 만든다.
// bytes.Buffer 로 돌려주고 HTTP 헤더는 Handler 가 정한다
type ExportService interface {
	// ExportManifest 오늘자 탑승 명단을 Excel 로 내보낸다
	ExportManifest(ctx context.Context, leg string) (*bytes.Buffer, string, error)
}

type exportService struct {
	manifest ManifestService
	logger   *zap.Logger
}

// NewExportService ExportService 인스턴스 생성
func NewExportService(manifest ManifestService, logger *zap.Logger) ExportService {
	return &exportService{manifest: manifest, logger: logger}
}

// ════════════════════════════════════════════════════════════
// ExportManifest — 탑승 명단 Excel 내보내기
// ════════════════════════════════════════════════════════════
//
// 출력 형식:
//   - 1행: 제목（구간 + 날짜）
//   - 차량마다 차량 이름 행 하나, 그 아래 | 시간 | 이름 | 장소 | 확인 |
//   - 확인 칸은 시트 셀 값 그대로（탑승/결석/빈 칸）

func (s *exportService) ExportManifest(ctx context.Context, leg string) (*bytes.Buffer, string, error) {
	manifest, err := s.manifest.Build(ctx, leg)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "명단"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("Excel 시트 생성 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 22)
	f.SetColWidth(sheetName, "D", "D", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2F5597"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	vehicleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E2F3"}, Pattern: 1},
	})

	title := legTitles[manifest.Leg]
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — %s (%s)", title, manifest.Date, manifest.Weekday))
	f.MergeCell(sheetName, "A1", "D1")
	f.SetCellStyle(sheetName, "A1", "D1", headerStyle)

	row := 2
	for _, v := range manifest.Vehicles {
		f.SetCellValue(sheetName, cell("A", row), fmt.Sprintf("%s (%d/%d)", v.Vehicle, v.Confirmed, v.Total))
		f.MergeCell(sheetName, cell("A", row), cell("D", row))
		f.SetCellStyle(sheetName, cell("A", row), cell("D", row), vehicleStyle)
		row++

		f.SetCellValue(sheetName, cell("A", row), "시간")
		f.SetCellValue(sheetName, cell("B", row), "이름")
		f.SetCellValue(sheetName, cell("C", row), "장소")
		f.SetCellValue(sheetName, cell("D", row), "확인")
		row++

		for _, e := range v.Entries {
			f.SetCellValue(sheetName, cell("A", row), e.Time)
			f.SetCellValue(sheetName, cell("B", row), e.StudentName)
			f.SetCellValue(sheetName, cell("C", row), e.Location)
			f.SetCellValue(sheetName, cell("D", row), exportConfirmText(e.Confirm))
			row++
		}
		row++ // 차량 사이 빈 행
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Excel 기록 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("%s_%s.xlsx", title, manifest.Date)
	return buf, filename, nil
}

// exportConfirmText API 토큰을 문서용 한글 표기로 되돌린다
func exportConfirmText(token string) string {
	switch token {
	case dto.ConfirmBoarded:
		return "탑승"
	case dto.ConfirmAbsent:
		return "결석"
	default:
		return ""
	}
}

// ── 보조 함수 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
