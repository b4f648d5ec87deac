package entity

import (
	"time"
)

// Mood captures start and end of day self-assessment on a 1-5 scale.
type Mood struct {
	StartOfDay int `bson:"start_of_day" json:"start_of_day"`
	EndOfDay   int `bson:"end_of_day,omitempty" json:"end_of_day,omitempty"`
}

// Activity is one planned or actual activity slot in a daily report.
type Activity struct {
	Duration int    `bson:"duration" json:"duration"`
	Category string `bson:"category" json:"category"`
}

// DailyReport is a per-user record, one per calendar day, immutable date key.
type DailyReport struct {
	ID             string     `bson:"_id,omitempty" json:"id"`
	UserID         string     `bson:"user_id" json:"user_id"`
	Date           time.Time  `bson:"date" json:"date"`
	WakeupTime     string     `bson:"wakeup_time" json:"wakeup_time"`
	Mood           Mood       `bson:"mood" json:"mood"`
	MorningRoutine string     `bson:"morning_routine" json:"morning_routine"`
	DailyGoals     []string   `bson:"daily_goals" json:"daily_goals"`
	ExpectedWork   []Activity `bson:"expected_activity" json:"expected_activity"`
	ActualWork     []Activity `bson:"actual_activity" json:"actual_activity"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updated_at"`
}

// WeeklyReport is a per-user record keyed by ISO year and week.
type WeeklyReport struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Year          int       `bson:"year" json:"year"`
	Week          int       `bson:"week" json:"week"`
	Achievements  []string  `bson:"achievements" json:"achievements"`
	Challenges    []string  `bson:"challenges" json:"challenges"`
	NextWeekGoals []string  `bson:"next_week_goals" json:"next_week_goals"`
	MoodAverage   float64   `bson:"mood_average" json:"mood_average"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// LeaderboardEntry is one ranked row of a workspace leaderboard.
type LeaderboardEntry struct {
	Rank     int     `bson:"rank" json:"rank"`
	UserID   string  `bson:"user_id" json:"user_id"`
	Name     string  `bson:"name" json:"name"`
	Position *string `bson:"position,omitempty" json:"position,omitempty"`
	Planet   *string `bson:"planet,omitempty" json:"planet,omitempty"`
	Stars    int     `bson:"stars" json:"stars"`
	Me       bool    `bson:"me" json:"me"`
}

// DashboardSummary aggregates a user's standing across their workspaces.
type DashboardSummary struct {
	WorkspaceCount  int `json:"workspace_count"`
	PendingQuests   int `json:"pending_quests"`
	QuestsDone      int `json:"quests_done"`
	TotalStars      int `json:"total_stars"`
	ReportsThisWeek int `json:"reports_this_week"`
}
