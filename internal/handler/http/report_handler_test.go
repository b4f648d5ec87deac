package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/ShaiBatonya/starquestDevServer/internal/handler/http"
	dto "github.com/ShaiBatonya/starquestDevServer/internal/handler/http/dto"
	mocks "github.com/ShaiBatonya/starquestDevServer/internal/handler/http/mocks"
)

func setupReportRouter(mockUsecase *mocks.MockReportUsecase) *gin.Engine {
	h := handler.NewReportHandler(mockUsecase)
	r := gin.New()
	g := r.Group("/reports", injectUser("mock-user-id"))
	g.POST("/daily", h.SubmitDailyReport)
	g.PATCH("/daily/:id", h.UpdateDailyReport)
	g.PATCH("/daily/:id/end-of-day", h.SubmitEndOfDay)
	g.GET("/daily", h.GetDailyReports)
	g.POST("/weekly", h.SubmitWeeklyReport)
	g.GET("/weekly", h.GetWeeklyReports)
	g.GET("/dashboard", h.GetDashboard)
	return r
}

func validDailyReport() dto.SubmitDailyReportRequest {
	return dto.SubmitDailyReportRequest{
		WakeupTime:     "07:00",
		MoodStartOfDay: 4,
		DailyGoals:     []string{"finish the onboarding task"},
		ExpectedWork:   []dto.ActivityRequest{{Duration: 120, Category: "learning"}},
	}
}

func TestSubmitDailyReport(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(mockUsecase)

	w := postJSON(r, "/reports/daily", validDailyReport())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "mock-daily-report-id")
}

func TestSubmitDailyReport_MoodOutOfRange(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(mockUsecase)

	req := validDailyReport()
	req.MoodStartOfDay = 6
	w := postJSON(r, "/reports/daily", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MoodStartOfDay")
}

func TestSubmitDailyReport_BadDate(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(mockUsecase)

	date := "31-08-2026"
	req := validDailyReport()
	req.Date = &date
	w := postJSON(r, "/reports/daily", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
}

func TestSubmitDailyReport_AlreadyExists(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	mockUsecase.ShouldFailSubmitDaily = true
	r := setupReportRouter(mockUsecase)

	w := postJSON(r, "/reports/daily", validDailyReport())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestUpdateDailyReport_NotOwner(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	mockUsecase.ShouldFailUpdateDaily = true
	r := setupReportRouter(mockUsecase)

	goals := []string{"revised goal"}
	w := patchJSON(r, "/reports/daily/other-report-id", dto.UpdateDailyReportRequest{DailyGoals: goals})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "your own reports")
}

func TestSubmitEndOfDay(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(mockUsecase)

	w := patchJSON(r, "/reports/daily/mock-daily-report-id/end-of-day", dto.EndOfDayRequest{
		MoodEndOfDay: 5,
		ActualWork:   []dto.ActivityRequest{{Duration: 90, Category: "learning"}},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"end_of_day":5`)
}

func TestSubmitEndOfDay_AlreadyClosed(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	mockUsecase.ShouldFailEndOfDay = true
	r := setupReportRouter(mockUsecase)

	w := patchJSON(r, "/reports/daily/mock-daily-report-id/end-of-day", dto.EndOfDayRequest{
		MoodEndOfDay: 5,
		ActualWork:   []dto.ActivityRequest{{Duration: 90, Category: "learning"}},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already submitted")
}

func TestGetDailyReports(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reports/daily", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-daily-report-id")
}

func TestSubmitWeeklyReport(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(mockUsecase)

	w := postJSON(r, "/reports/weekly", dto.SubmitWeeklyReportRequest{
		Achievements:  []string{"shipped the first feature"},
		NextWeekGoals: []string{"start the review cycle"},
		MoodAverage:   4.2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "mock-weekly-report-id")
}

func TestSubmitWeeklyReport_AlreadyExists(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	mockUsecase.ShouldFailSubmitWeekly = true
	r := setupReportRouter(mockUsecase)

	w := postJSON(r, "/reports/weekly", dto.SubmitWeeklyReportRequest{
		Achievements:  []string{"shipped the first feature"},
		NextWeekGoals: []string{"start the review cycle"},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestGetDashboard(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	r := setupReportRouter(mockUsecase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reports/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_stars":10`)
	assert.Contains(t, w.Body.String(), `"workspace_count":2`)
}
