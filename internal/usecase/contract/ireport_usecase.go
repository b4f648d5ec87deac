package usecasecontract

import (
	"context"
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// SubmitDailyReportInput is the morning submission payload.
type SubmitDailyReportInput struct {
	Date           *time.Time
	WakeupTime     string
	MoodStartOfDay int
	MorningRoutine string
	DailyGoals     []string
	ExpectedWork   []entity.Activity
}

// UpdateDailyReportInput patches the morning fields of an existing report.
type UpdateDailyReportInput struct {
	WakeupTime     *string
	MoodStartOfDay *int
	MorningRoutine *string
	DailyGoals     []string
}

// SubmitWeeklyReportInput is the weekly submission payload.
type SubmitWeeklyReportInput struct {
	Achievements  []string
	Challenges    []string
	NextWeekGoals []string
	MoodAverage   float64
}

// IReportUseCase defines the interface for daily/weekly reporting and
// the dashboard summary.
type IReportUseCase interface {
	SubmitDailyReport(ctx context.Context, userID string, input SubmitDailyReportInput) (*entity.DailyReport, error)
	UpdateDailyReport(ctx context.Context, userID, reportID string, input UpdateDailyReportInput) (*entity.DailyReport, error)
	SubmitEndOfDay(ctx context.Context, userID, reportID string, mood int, actual []entity.Activity) (*entity.DailyReport, error)
	GetDailyReports(ctx context.Context, userID string) ([]entity.DailyReport, error)
	SubmitWeeklyReport(ctx context.Context, userID string, input SubmitWeeklyReportInput) (*entity.WeeklyReport, error)
	GetWeeklyReports(ctx context.Context, userID string) ([]entity.WeeklyReport, error)
	GetDashboard(ctx context.Context, userID string) (*entity.DashboardSummary, error)
}
