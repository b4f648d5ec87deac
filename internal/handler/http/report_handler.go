package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	"github.com/ShaiBatonya/starquestDevServer/internal/handler/http/dto"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// ReportHandlerInterface defines the methods for the report handler to
// allow interface-based dependency injection (for testing/mocking).
type ReportHandlerInterface interface {
	SubmitDailyReport(*gin.Context)
	UpdateDailyReport(*gin.Context)
	SubmitEndOfDay(*gin.Context)
	GetDailyReports(*gin.Context)
	SubmitWeeklyReport(*gin.Context)
	GetWeeklyReports(*gin.Context)
	GetDashboard(*gin.Context)
}

var _ ReportHandlerInterface = (*ReportHandler)(nil)

type ReportHandler struct {
	reportUsecase usecasecontract.IReportUseCase
}

func NewReportHandler(reportUsecase usecasecontract.IReportUseCase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

func toActivities(requests []dto.ActivityRequest) []entity.Activity {
	activities := make([]entity.Activity, 0, len(requests))
	for _, r := range requests {
		activities = append(activities, entity.Activity{Duration: r.Duration, Category: r.Category})
	}
	return activities
}

// SubmitDailyReport creates the morning report.
func (h *ReportHandler) SubmitDailyReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.SubmitDailyReportRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	input := usecasecontract.SubmitDailyReportInput{
		WakeupTime:     req.WakeupTime,
		MoodStartOfDay: req.MoodStartOfDay,
		MorningRoutine: req.MorningRoutine,
		DailyGoals:     req.DailyGoals,
		ExpectedWork:   toActivities(req.ExpectedWork),
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ErrorHandler(c, apperror.Validation("date must be in YYYY-MM-DD format"))
			return
		}
		input.Date = &date
	}

	report, err := h.reportUsecase.SubmitDailyReport(c.Request.Context(), userID, input)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, report)
}

// UpdateDailyReport patches the morning fields of a report.
func (h *ReportHandler) UpdateDailyReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateDailyReportRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	report, err := h.reportUsecase.UpdateDailyReport(c.Request.Context(), userID, c.Param("id"), usecasecontract.UpdateDailyReportInput{
		WakeupTime:     req.WakeupTime,
		MoodStartOfDay: req.MoodStartOfDay,
		MorningRoutine: req.MorningRoutine,
		DailyGoals:     req.DailyGoals,
	})
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, report)
}

// SubmitEndOfDay closes a daily report.
func (h *ReportHandler) SubmitEndOfDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.EndOfDayRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	report, err := h.reportUsecase.SubmitEndOfDay(c.Request.Context(), userID, c.Param("id"), req.MoodEndOfDay, toActivities(req.ActualWork))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, report)
}

// GetDailyReports lists the caller's daily reports, newest first.
func (h *ReportHandler) GetDailyReports(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reports, err := h.reportUsecase.GetDailyReports(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, reports)
}

// SubmitWeeklyReport creates the weekly report for the current ISO week.
func (h *ReportHandler) SubmitWeeklyReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.SubmitWeeklyReportRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	report, err := h.reportUsecase.SubmitWeeklyReport(c.Request.Context(), userID, usecasecontract.SubmitWeeklyReportInput{
		Achievements:  req.Achievements,
		Challenges:    req.Challenges,
		NextWeekGoals: req.NextWeekGoals,
		MoodAverage:   req.MoodAverage,
	})
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, report)
}

// GetWeeklyReports lists the caller's weekly reports, newest first.
func (h *ReportHandler) GetWeeklyReports(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reports, err := h.reportUsecase.GetWeeklyReports(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, reports)
}

// GetDashboard aggregates the caller's standing across workspaces.
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	summary, err := h.reportUsecase.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, summary)
}
