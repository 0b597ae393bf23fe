package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JKM6230/roun-app/internal/dto"
	"github.com/JKM6230/roun-app/internal/service"
	"github.com/JKM6230/roun-app/pkg/apperr"
	"github.com/JKM6230/roun-app/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

type mockRosterService struct {
	todayResult *dto.RosterResponse
	todayErr    error
	setErr      error
}

func (m *mockRosterService) GetToday(_ context.Context) (*dto.RosterResponse, error) {
	return m.todayResult, m.todayErr
}
func (m *mockRosterService) SetAttendance(_ context.Context, _, _ string) error { return m.setErr }
func (m *mockRosterService) SetLegConfirm(_ context.Context, _, _, _ string) error {
	return m.setErr
}
func (m *mockRosterService) SetNote(_ context.Context, _, _ string) error { return m.setErr }

type mockLeaveService struct {
	registerErr error
	clearErr    error
}

func (m *mockLeaveService) Register(_ context.Context, _ string, _ *dto.RegisterLeaveRequest) error {
	return m.registerErr
}
func (m *mockLeaveService) Clear(_ context.Context, _ string) error { return m.clearErr }
func (m *mockLeaveService) ApplyAutoMarking(_ context.Context, _ time.Time) error {
	return nil
}

type mockManifestService struct {
	result *dto.ManifestResponse
	err    error
}

func (m *mockManifestService) Build(_ context.Context, _ string) (*dto.ManifestResponse, error) {
	return m.result, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("응답 파싱 실패: %v (%s)", err, w.Body.String())
	}
	return resp
}

// ═══════════════════════════════════════════════════════════
// RosterHandler 테스트
// ═══════════════════════════════════════════════════════════

func TestRosterGetToday_OK(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{
		todayResult: &dto.RosterResponse{Date: "2025-01-13", Weekday: "월"},
	})
	r := gin.New()
	r.GET("/roster/today", h.GetToday)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/roster/today", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("기대 200, 실제=%d", w.Code)
	}
	resp := parseResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("기대 code=0, 실제=%d", resp.Code)
	}
}

func TestSetAttendance_InvalidBody(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{})
	r := gin.New()
	r.PUT("/students/:name/attendance", h.SetAttendance)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/students/김지안/attendance",
		jsonBody(map[string]string{"state": "tardy"}))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("허용되지 않은 상태 값은 400, 실제=%d", w.Code)
	}
}

func TestSetAttendance_StudentNotFound(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{setErr: service.ErrStudentNotFound})
	r := gin.New()
	r.PUT("/students/:name/attendance", h.SetAttendance)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/students/없는원생/attendance",
		jsonBody(dto.SetAttendanceRequest{State: "present"}))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("기대 404, 실제=%d", w.Code)
	}
	if resp := parseResponse(t, w); resp.Code != 20001 {
		t.Errorf("기대 code=20001, 실제=%d", resp.Code)
	}
}

func TestSetAttendance_RecoverableWrite(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{
		setErr: apperr.RecoverableWrite("writeCell", context.DeadlineExceeded),
	})
	r := gin.New()
	r.PUT("/students/:name/attendance", h.SetAttendance)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/students/김지안/attendance",
		jsonBody(dto.SetAttendanceRequest{State: "absent"}))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("재시도 후에도 실패한 쓰기는 503, 실제=%d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// LeaveHandler 테스트
// ═══════════════════════════════════════════════════════════

func TestRegisterLeave_BadDateMapsTo400(t *testing.T) {
	h := NewLeaveHandler(&mockLeaveService{registerErr: service.ErrLeaveBadDate})
	r := gin.New()
	r.PUT("/students/:name/leave", h.Register)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/students/김지안/leave",
		jsonBody(dto.RegisterLeaveRequest{StartDate: "2025/01/10", EndDate: "2025-01-20"}))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("기대 400, 실제=%d", w.Code)
	}
	if resp := parseResponse(t, w); resp.Code != 20101 {
		t.Errorf("기대 code=20101, 실제=%d", resp.Code)
	}
}

func TestClearLeave_OK(t *testing.T) {
	h := NewLeaveHandler(&mockLeaveService{})
	r := gin.New()
	r.DELETE("/students/:name/leave", h.Clear)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/students/김지안/leave", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("기대 200, 실제=%d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ManifestHandler 테스트
// ═══════════════════════════════════════════════════════════

func TestGetManifest_UnknownLeg(t *testing.T) {
	h := NewManifestHandler(&mockManifestService{err: service.ErrUnknownLeg})
	r := gin.New()
	r.GET("/manifests/:leg", h.GetManifest)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/manifests/sideways", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("기대 400, 실제=%d", w.Code)
	}
	if resp := parseResponse(t, w); resp.Code != 20003 {
		t.Errorf("기대 code=20003, 실제=%d", resp.Code)
	}
}

func TestGetManifest_OK(t *testing.T) {
	h := NewManifestHandler(&mockManifestService{
		result: &dto.ManifestResponse{Leg: "pickup", Date: "2025-01-13"},
	})
	r := gin.New()
	r.GET("/manifests/:leg", h.GetManifest)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/manifests/pickup", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("기대 200, 실제=%d", w.Code)
	}
}
