package contract

import (
	"context"
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
)

// IDailyReportRepository is the persistence boundary for daily reports.
type IDailyReportRepository interface {
	CreateDailyReport(ctx context.Context, report *entity.DailyReport) error
	GetDailyReportByID(ctx context.Context, id string) (*entity.DailyReport, error)
	ExistsForDate(ctx context.Context, userID string, date time.Time) (bool, error)
	UpdateDailyReport(ctx context.Context, report *entity.DailyReport) error
	SetEndOfDay(ctx context.Context, id string, mood int, actual []entity.Activity) error
	ListByUser(ctx context.Context, userID string) ([]entity.DailyReport, error)
	CountSince(ctx context.Context, userID string, since time.Time) (int, error)
}

// IWeeklyReportRepository is the persistence boundary for weekly reports.
type IWeeklyReportRepository interface {
	CreateWeeklyReport(ctx context.Context, report *entity.WeeklyReport) error
	ExistsForWeek(ctx context.Context, userID string, year, week int) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]entity.WeeklyReport, error)
}
