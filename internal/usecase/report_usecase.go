package usecase

import (
	"context"
	"time"

	"github.com/ShaiBatonya/starquestDevServer/internal/domain/apperror"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/contract"
	"github.com/ShaiBatonya/starquestDevServer/internal/domain/entity"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

// ReportUseCase implements daily and weekly reporting plus the dashboard
// summary.
type ReportUseCase struct {
	dailyRepo     contract.IDailyReportRepository
	weeklyRepo    contract.IWeeklyReportRepository
	workspaceRepo contract.IWorkspaceRepository
	uuidGen       contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

var _ usecasecontract.IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	dailyRepo contract.IDailyReportRepository,
	weeklyRepo contract.IWeeklyReportRepository,
	workspaceRepo contract.IWorkspaceRepository,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ReportUseCase {
	return &ReportUseCase{
		dailyRepo:     dailyRepo,
		weeklyRepo:    weeklyRepo,
		workspaceRepo: workspaceRepo,
		uuidGen:       uuidGen,
		logger:        logger,
	}
}

func validMood(mood int) bool {
	return mood >= 1 && mood <= 5
}

// SubmitDailyReport creates the morning report, one per calendar day.
func (uc *ReportUseCase) SubmitDailyReport(ctx context.Context, userID string, input usecasecontract.SubmitDailyReportInput) (*entity.DailyReport, error) {
	if !validMood(input.MoodStartOfDay) {
		return nil, apperror.Validation("mood must be between 1 and 5")
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}
	exists, err := uc.dailyRepo.ExistsForDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a daily report already exists for this date")
	}

	now := time.Now()
	report := &entity.DailyReport{
		ID:             uc.uuidGen.NewUUID(),
		UserID:         userID,
		Date:           date,
		WakeupTime:     input.WakeupTime,
		Mood:           entity.Mood{StartOfDay: input.MoodStartOfDay},
		MorningRoutine: input.MorningRoutine,
		DailyGoals:     input.DailyGoals,
		ExpectedWork:   input.ExpectedWork,
		ActualWork:     []entity.Activity{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.dailyRepo.CreateDailyReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// UpdateDailyReport patches the morning fields of the caller's report.
func (uc *ReportUseCase) UpdateDailyReport(ctx context.Context, userID, reportID string, input usecasecontract.UpdateDailyReportInput) (*entity.DailyReport, error) {
	report, err := uc.dailyRepo.GetDailyReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.UserID != userID {
		return nil, apperror.Forbidden("you may only update your own reports")
	}

	if input.WakeupTime != nil {
		report.WakeupTime = *input.WakeupTime
	}
	if input.MoodStartOfDay != nil {
		if !validMood(*input.MoodStartOfDay) {
			return nil, apperror.Validation("mood must be between 1 and 5")
		}
		report.Mood.StartOfDay = *input.MoodStartOfDay
	}
	if input.MorningRoutine != nil {
		report.MorningRoutine = *input.MorningRoutine
	}
	if input.DailyGoals != nil {
		report.DailyGoals = input.DailyGoals
	}

	if err := uc.dailyRepo.UpdateDailyReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// SubmitEndOfDay closes a daily report with the evening mood and actual
// activity log.
func (uc *ReportUseCase) SubmitEndOfDay(ctx context.Context, userID, reportID string, mood int, actual []entity.Activity) (*entity.DailyReport, error) {
	if !validMood(mood) {
		return nil, apperror.Validation("mood must be between 1 and 5")
	}
	report, err := uc.dailyRepo.GetDailyReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.UserID != userID {
		return nil, apperror.Forbidden("you may only update your own reports")
	}
	if report.Mood.EndOfDay != 0 {
		return nil, apperror.Conflict("end of day was already submitted for this report")
	}

	if err := uc.dailyRepo.SetEndOfDay(ctx, reportID, mood, actual); err != nil {
		return nil, err
	}
	return uc.dailyRepo.GetDailyReportByID(ctx, reportID)
}

func (uc *ReportUseCase) GetDailyReports(ctx context.Context, userID string) ([]entity.DailyReport, error) {
	return uc.dailyRepo.ListByUser(ctx, userID)
}

// SubmitWeeklyReport creates the weekly report for the current ISO week,
// one per week.
func (uc *ReportUseCase) SubmitWeeklyReport(ctx context.Context, userID string, input usecasecontract.SubmitWeeklyReportInput) (*entity.WeeklyReport, error) {
	year, week := time.Now().ISOWeek()
	exists, err := uc.weeklyRepo.ExistsForWeek(ctx, userID, year, week)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a weekly report already exists for this week")
	}

	report := &entity.WeeklyReport{
		ID:            uc.uuidGen.NewUUID(),
		UserID:        userID,
		Year:          year,
		Week:          week,
		Achievements:  input.Achievements,
		Challenges:    input.Challenges,
		NextWeekGoals: input.NextWeekGoals,
		MoodAverage:   input.MoodAverage,
		CreatedAt:     time.Now(),
	}
	if err := uc.weeklyRepo.CreateWeeklyReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (uc *ReportUseCase) GetWeeklyReports(ctx context.Context, userID string) ([]entity.WeeklyReport, error) {
	return uc.weeklyRepo.ListByUser(ctx, userID)
}

// GetDashboard aggregates the caller's standing across all their
// workspaces plus this week's reporting activity.
func (uc *ReportUseCase) GetDashboard(ctx context.Context, userID string) (*entity.DashboardSummary, error) {
	workspaces, err := uc.workspaceRepo.GetWorkspacesByMember(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &entity.DashboardSummary{WorkspaceCount: len(workspaces)}
	for i := range workspaces {
		member := workspaces[i].FindUser(userID)
		if member == nil {
			continue
		}
		summary.TotalStars += member.Stars
		for _, entry := range member.Quest {
			if entry.Status == entity.TaskStatusDone {
				summary.QuestsDone++
			} else {
				summary.PendingQuests++
			}
		}
	}

	weekStart := startOfISOWeek(time.Now())
	count, err := uc.dailyRepo.CountSince(ctx, userID, weekStart)
	if err != nil {
		uc.logger.Warnf("failed to count weekly reports for %s: %v", userID, err)
	} else {
		summary.ReportsThisWeek = count
	}
	return summary, nil
}

// startOfISOWeek returns 00:00 UTC of the Monday of t's week.
func startOfISOWeek(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -(weekday - 1))
}
