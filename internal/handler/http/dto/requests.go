package dto

// SignupRequest is the registration payload.
type SignupRequest struct {
	FirstName       string `json:"first_name" binding:"required,min=2,max=50"`
	LastName        string `json:"last_name" binding:"required,min=2,max=50"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
	PhoneNumber     string `json:"phone_number"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest carries the signup verification code.
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// ForgotPasswordRequest asks for a reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest sets a new password via reset token.
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
}

// UpdatePasswordRequest changes the password of a logged-in user.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// CreateWorkspaceRequest creates a workspace.
type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
	Rules       string `json:"rules"`
}

// SendInvitationRequest invites an email address into a workspace.
type SendInvitationRequest struct {
	WorkspaceID  string  `json:"workspace_id" binding:"required"`
	InviteeEmail string  `json:"invitee_email" binding:"required,email"`
	InviteeRole  string  `json:"invitee_role" binding:"required,workspacerole"`
	PositionID   *string `json:"position_id"`
	Planet       *string `json:"planet" binding:"omitempty,planet"`
}

// CreatePositionRequest adds a position to the workspace taxonomy.
type CreatePositionRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=50"`
	Color string `json:"color"`
}

// CreateTaskRequest appends a backlog task.
type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,min=2,max=200"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required,taskcategory"`
	StarsEarned int      `json:"stars_earned" binding:"min=0"`
	Planets     []string `json:"planets" binding:"dive,planet"`
	Positions   []string `json:"positions"`
	IsGlobal    bool     `json:"is_global"`
	Link        *string  `json:"link"`
}

// CreatePersonalTaskRequest appends a backlog task owned by one mentee.
type CreatePersonalTaskRequest struct {
	CreateTaskRequest
	UserID string `json:"user_id" binding:"required"`
}

// UpdateTaskRequest patches a backlog task. Position and planet changes
// travel as explicit add/remove sets.
type UpdateTaskRequest struct {
	Title             *string  `json:"title" binding:"omitempty,min=2,max=200"`
	Description       *string  `json:"description"`
	Category          *string  `json:"category" binding:"omitempty,taskcategory"`
	StarsEarned       *int     `json:"stars_earned" binding:"omitempty,min=0"`
	IsGlobal          *bool    `json:"is_global"`
	Link              *string  `json:"link"`
	PositionsToAdd    []string `json:"positions_to_add"`
	PositionsToRemove []string `json:"positions_to_remove"`
	PlanetsToAdd      []string `json:"planets_to_add" binding:"dive,planet"`
	PlanetsToRemove   []string `json:"planets_to_remove"`
}

// ChangeTaskStatusRequest is the self-service board move.
type ChangeTaskStatusRequest struct {
	QuestID string `json:"quest_id" binding:"required"`
	Status  string `json:"status" binding:"required,taskstatus"`
}

// MentorChangeTaskStatusRequest is the mentor/admin override move.
type MentorChangeTaskStatusRequest struct {
	MenteeID string `json:"mentee_id" binding:"required"`
	QuestID  string `json:"quest_id" binding:"required"`
	Status   string `json:"status" binding:"required,taskstatus"`
}

// AddCommentRequest appends a comment to a quest entry.
type AddCommentRequest struct {
	QuestID string `json:"quest_id" binding:"required"`
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// ActivityRequest is one activity slot of a daily report.
type ActivityRequest struct {
	Duration int    `json:"duration" binding:"required,min=1"`
	Category string `json:"category" binding:"required"`
}

// SubmitDailyReportRequest is the morning submission.
type SubmitDailyReportRequest struct {
	Date           *string           `json:"date"`
	WakeupTime     string            `json:"wakeup_time" binding:"required"`
	MoodStartOfDay int               `json:"mood_start_of_day" binding:"required,min=1,max=5"`
	MorningRoutine string            `json:"morning_routine"`
	DailyGoals     []string          `json:"daily_goals" binding:"required,min=1"`
	ExpectedWork   []ActivityRequest `json:"expected_activity" binding:"required,min=1,dive"`
}

// UpdateDailyReportRequest patches morning fields.
type UpdateDailyReportRequest struct {
	WakeupTime     *string  `json:"wakeup_time"`
	MoodStartOfDay *int     `json:"mood_start_of_day" binding:"omitempty,min=1,max=5"`
	MorningRoutine *string  `json:"morning_routine"`
	DailyGoals     []string `json:"daily_goals"`
}

// EndOfDayRequest closes a daily report.
type EndOfDayRequest struct {
	MoodEndOfDay int               `json:"mood_end_of_day" binding:"required,min=1,max=5"`
	ActualWork   []ActivityRequest `json:"actual_activity" binding:"required,min=1,dive"`
}

// SubmitWeeklyReportRequest is the weekly submission.
type SubmitWeeklyReportRequest struct {
	Achievements  []string `json:"achievements" binding:"required,min=1"`
	Challenges    []string `json:"challenges"`
	NextWeekGoals []string `json:"next_week_goals" binding:"required,min=1"`
	MoodAverage   float64  `json:"mood_average" binding:"min=0,max=5"`
}
