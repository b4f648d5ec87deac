package mocks

import (
	"context"
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// MockReportUsecase is a mock implementation of the report usecase interface
type MockReportUsecase struct {
	// Control mock behavior
	ShouldFailSubmitDaily  bool
	ShouldFailUpdateDaily  bool
	ShouldFailEndOfDay     bool
	ShouldFailSubmitWeekly bool

	// Return values
	MockDailyReport  entity.DailyReport
	MockWeeklyReport entity.WeeklyReport
	MockSummary      entity.DashboardSummary
}

// Ensure MockReportUsecase implements the correct interface for handler.NewReportHandler
var _ usecasecontract.IReportUseCase = (*MockReportUsecase)(nil)

func NewMockReportUsecase() *MockReportUsecase {
	return &MockReportUsecase{
		MockDailyReport: entity.DailyReport{
			ID:           "mock-daily-report-id",
			UserID:       "mock-user-id",
			Date:         time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			WakeupTime:   "07:00",
			Mood:         entity.Mood{StartOfDay: 4},
			DailyGoals:   []string{"finish the onboarding task"},
			ExpectedWork: []entity.Activity{{Duration: 120, Category: "learning"}},
		},
		MockWeeklyReport: entity.WeeklyReport{
			ID:            "mock-weekly-report-id",
			UserID:        "mock-user-id",
			Year:          2026,
			Week:          36,
			Achievements:  []string{"shipped the first feature"},
			NextWeekGoals: []string{"start the review cycle"},
			MoodAverage:   4.2,
		},
		MockSummary: entity.DashboardSummary{
			WorkspaceCount:  2,
			PendingQuests:   3,
			QuestsDone:      1,
			TotalStars:      10,
			ReportsThisWeek: 4,
		},
	}
}

func (m *MockReportUsecase) SubmitDailyReport(ctx context.Context, userID string, input usecasecontract.SubmitDailyReportInput) (*entity.DailyReport, error) {
	if m.ShouldFailSubmitDaily {
		return nil, apperror.Conflict("a report for this date already exists")
	}
	return &m.MockDailyReport, nil
}

func (m *MockReportUsecase) UpdateDailyReport(ctx context.Context, userID, reportID string, input usecasecontract.UpdateDailyReportInput) (*entity.DailyReport, error) {
	if m.ShouldFailUpdateDaily {
		return nil, apperror.Forbidden("you may only edit your own reports")
	}
	return &m.MockDailyReport, nil
}

func (m *MockReportUsecase) SubmitEndOfDay(ctx context.Context, userID, reportID string, mood int, actual []entity.Activity) (*entity.DailyReport, error) {
	if m.ShouldFailEndOfDay {
		return nil, apperror.Conflict("end of day was already submitted for this report")
	}
	report := m.MockDailyReport
	report.Mood.EndOfDay = mood
	report.ActualWork = actual
	return &report, nil
}

func (m *MockReportUsecase) GetDailyReports(ctx context.Context, userID string) ([]entity.DailyReport, error) {
	return []entity.DailyReport{m.MockDailyReport}, nil
}

func (m *MockReportUsecase) SubmitWeeklyReport(ctx context.Context, userID string, input usecasecontract.SubmitWeeklyReportInput) (*entity.WeeklyReport, error) {
	if m.ShouldFailSubmitWeekly {
		return nil, apperror.Conflict("a report for this week already exists")
	}
	return &m.MockWeeklyReport, nil
}

func (m *MockReportUsecase) GetWeeklyReports(ctx context.Context, userID string) ([]entity.WeeklyReport, error) {
	return []entity.WeeklyReport{m.MockWeeklyReport}, nil
}

func (m *MockReportUsecase) GetDashboard(ctx context.Context, userID string) (*entity.DashboardSummary, error) {
	return &m.MockSummary, nil
}
