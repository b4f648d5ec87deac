package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ShaiBatonya/starquestDevServer/internal/handler/http/middleware"
	usecasecontract "github.com/ShaiBatonya/starquestDevServer/internal/usecase/contract"
)

type Router struct {
	authHandler        *AuthHandler
	workspaceHandler   *WorkspaceHandler
	taskHandler        *TaskHandler
	invitationHandler  *InvitationHandler
	questHandler       *QuestHandler
	leaderboardHandler *LeaderboardHandler
	reportHandler      *ReportHandler
	authUsecase        usecasecontract.IAuthUseCase
}

func NewRouter(
	authUsecase usecasecontract.IAuthUseCase,
	workspaceUsecase usecasecontract.IWorkspaceUseCase,
	invitationUsecase usecasecontract.IInvitationUseCase,
	taskUsecase usecasecontract.ITaskUseCase,
	questUsecase usecasecontract.IQuestUseCase,
	leaderboardUsecase usecasecontract.ILeaderboardUseCase,
	reportUsecase usecasecontract.IReportUseCase,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		authHandler:        NewAuthHandler(authUsecase, config),
		workspaceHandler:   NewWorkspaceHandler(workspaceUsecase, invitationUsecase),
		taskHandler:        NewTaskHandler(taskUsecase),
		invitationHandler:  NewInvitationHandler(invitationUsecase),
		questHandler:       NewQuestHandler(questUsecase),
		leaderboardHandler: NewLeaderboardHandler(leaderboardUsecase),
		reportHandler:      NewReportHandler(reportUsecase),
		authUsecase:        authUsecase,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// Public routes (no authentication required)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", r.authHandler.Signup)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.authHandler.Logout)
		auth.POST("/verifyEmail", r.authHandler.VerifyEmail)
		auth.POST("/forgotPassword", r.authHandler.ForgotPassword)
		auth.PATCH("/resetPassword/:token", r.authHandler.ResetPassword)
	}

	// Public invitation resolution for the registration page
	api.GET("/invitations/token/:invitationToken", r.invitationHandler.GetInvitationByToken)

	// Protected routes (authentication required)
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.authUsecase))
	{
		protected.PATCH("/auth/updateMyPassword", r.authHandler.UpdateMyPassword)
		protected.GET("/auth/me", r.authHandler.GetCurrentUser)

		// Workspace routes
		protected.POST("/workspace", r.workspaceHandler.CreateWorkspace)
		protected.GET("/workspace/my-workspaces", r.workspaceHandler.GetMyWorkspaces)
		protected.GET("/workspace/:workspaceId/users", r.workspaceHandler.GetWorkspaceUsers)
		protected.DELETE("/workspace/:workspaceId", r.workspaceHandler.DeleteWorkspace)
		protected.POST("/workspace/send-invitation", r.workspaceHandler.SendInvitation)
		protected.POST("/workspace/accept-invitation/:invitationToken", r.workspaceHandler.AcceptInvitation)
		protected.POST("/workspace/:workspaceId/position", r.workspaceHandler.CreatePosition)
		protected.GET("/workspace/:workspaceId/positions", r.workspaceHandler.GetPositions)

		// Backlog task routes
		protected.POST("/workspace/:workspaceId/tasks", r.taskHandler.CreateTask)
		protected.POST("/workspace/:workspaceId/tasks/personal", r.taskHandler.CreatePersonalTask)
		protected.PATCH("/workspace/:workspaceId/tasks/:taskId", r.taskHandler.UpdateTask)
		protected.DELETE("/workspace/:workspaceId/tasks/:taskId", r.taskHandler.DeleteTask)

		// Invitation routes
		protected.GET("/invitations/workspace/:workspaceId", r.invitationHandler.GetWorkspaceInvitations)
		protected.GET("/invitations/pending", r.invitationHandler.GetAllPendingInvitations)
		protected.PATCH("/invitations/:invitationId/cancel", r.invitationHandler.CancelInvitation)
		protected.POST("/invitations/:invitationId/resend", r.invitationHandler.ResendInvitation)

		// Quest routes
		protected.GET("/quest/:workspaceId", r.questHandler.GetUserQuest)
		protected.PATCH("/quest/:workspaceId/status", r.questHandler.ChangeTaskStatus)
		protected.PATCH("/quest/:workspaceId/mentor-status", r.questHandler.MentorChangeTaskStatus)
		protected.POST("/quest/:workspaceId/comment", r.questHandler.AddCommentToTask)

		// Leaderboard, reports and dashboard
		protected.GET("/leaderboard/:workspaceId", r.leaderboardHandler.GetLeaderboard)
		protected.POST("/reports/daily", r.reportHandler.SubmitDailyReport)
		protected.GET("/reports/daily", r.reportHandler.GetDailyReports)
		protected.PATCH("/reports/daily/:id", r.reportHandler.UpdateDailyReport)
		protected.PATCH("/reports/daily/:id/end-of-day", r.reportHandler.SubmitEndOfDay)
		protected.POST("/reports/weekly", r.reportHandler.SubmitWeeklyReport)
		protected.GET("/reports/weekly", r.reportHandler.GetWeeklyReports)
		protected.GET("/dashboard", r.reportHandler.GetDashboard)
	}
}
