// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/analytics"
	"github.com/habit-tracker/backend/internal/application/usecase/auth"
	"github.com/habit-tracker/backend/internal/application/usecase/goal"
	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	"github.com/habit-tracker/backend/internal/application/usecase/schedule"
	"github.com/habit-tracker/backend/internal/application/usecase/todo"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/cache"
	"github.com/habit-tracker/backend/internal/integration/email"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/notification"
	"github.com/habit-tracker/backend/internal/integration/persistence"
)

// Connections are the opened backing services. LocalDB holds free-tier
// documents; AccountDB holds users, tokens, the email queue and premium
// documents. Redis may be nil.
type Connections struct {
	AccountDB *gorm.DB
	LocalDB   *gorm.DB
	Redis     *redis.Client
}

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	Router          *router.Router
	Clock           adapter.Clock
	EmailQueue      adapter.EmailQueueRepository
	AuthRateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil clock reads wall time in the configured application time zone.
func NewInjector(cfg *config.Config, conns Connections, clock adapter.Clock, checks map[string]controller.HealthChecker) *Injector {
	if clock == nil {
		clock = adapters.NewSystemClock(cfg.App.Location())
	}

	// Repositories
	userRepo := persistence.NewUserRepository(conns.AccountDB)
	tokenRepo := persistence.NewTokenRepository(conns.AccountDB)
	emailQueueRepo := persistence.NewEmailQueueRepository(conns.AccountDB)
	documents := persistence.NewTieredDocumentStore(
		persistence.NewDocumentRepository(conns.LocalDB),
		persistence.NewDocumentRepository(conns.AccountDB),
		userRepo,
	)
	snapshots := persistence.NewSnapshotRepository(documents)

	var analyticsCache adapter.AnalyticsCache
	if conns.Redis != nil {
		analyticsCache = cache.NewRedisAnalyticsCache(conns.Redis)
	}

	// Services
	passwordService := adapters.NewPasswordService(cfg.Security.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, adapters.TokenDurations{
		Access:  cfg.JWT.AccessTokenExpiry,
		Refresh: cfg.JWT.RefreshTokenExpiry,
	}, tokenRepo)
	notifier := notification.NewDispatcher(userRepo, email.NewService(emailQueueRepo), cfg.App.FrontendURL+"/goals")

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	profileUseCase := auth.NewGetProfileUseCase(userRepo)
	changePlanUseCase := auth.NewChangePlanUseCase(userRepo, documents)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService, documents)

	// Controllers
	healthController := controller.NewHealthController(checks)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(
		profileUseCase,
		changePlanUseCase,
		deleteAccountUseCase,
	)

	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(snapshots, notifier, clock),
		goal.NewCreateGoalUseCase(snapshots, clock),
		goal.NewDeleteGoalUseCase(snapshots),
		goal.NewUpdateProgressUseCase(snapshots, notifier, clock),
		goal.NewAddMonthlyGoalUseCase(snapshots, clock),
		goal.NewAddWeeklyGoalUseCase(snapshots, clock),
		goal.NewAddDailyTaskUseCase(snapshots, clock),
		goal.NewToggleUseCase(snapshots),
		goal.NewListTodayTasksUseCase(snapshots, clock),
	)

	habitController := controller.NewHabitController(
		habit.NewListHabitsUseCase(snapshots, clock),
		habit.NewCreateHabitUseCase(snapshots, clock),
		habit.NewUpdateSettingsUseCase(snapshots, clock),
		habit.NewDeleteHabitUseCase(snapshots, clock),
		habit.NewRecordProgressUseCase(snapshots, clock),
		habit.NewCompleteSessionUseCase(snapshots, clock),
	)

	todoController := controller.NewTodoController(
		todo.NewListTodosUseCase(snapshots),
		todo.NewCreateTodoUseCase(snapshots, clock),
		todo.NewUpdateTodoUseCase(snapshots, clock),
		todo.NewToggleTodoUseCase(snapshots, clock),
		todo.NewDeleteTodoUseCase(snapshots),
	)

	scheduleController := controller.NewScheduleController(controller.ScheduleUseCases{
		AddItem:               schedule.NewAddItemUseCase(snapshots, clock),
		ListItems:             schedule.NewListItemsUseCase(snapshots, clock),
		UpdateItem:            schedule.NewUpdateItemUseCase(snapshots),
		ToggleItem:            schedule.NewToggleItemUseCase(snapshots),
		DeleteItem:            schedule.NewDeleteItemUseCase(snapshots),
		CreateTemplate:        schedule.NewCreateTemplateUseCase(snapshots, clock),
		CreateTemplateFromDay: schedule.NewCreateTemplateFromDayUseCase(snapshots, clock),
		ListTemplates:         schedule.NewListTemplatesUseCase(snapshots),
		DeleteTemplate:        schedule.NewDeleteTemplateUseCase(snapshots),
		ApplyTemplate:         schedule.NewApplyTemplateUseCase(snapshots, clock),
		SaveItem:              schedule.NewSaveItemUseCase(snapshots, clock),
		ListSavedItems:        schedule.NewListSavedItemsUseCase(snapshots),
		DeleteSavedItem:       schedule.NewDeleteSavedItemUseCase(snapshots),
		ScheduleSavedItem:     schedule.NewScheduleSavedItemUseCase(snapshots, clock),
	})

	analyticsController := controller.NewAnalyticsController(
		analytics.NewGetAnalyticsUseCase(snapshots, analyticsCache, clock, cfg.Redis.AnalyticsTTL),
	)

	// Middleware
	authRateLimiter := middleware.NewRateLimiter("auth", cfg.RateLimit.AuthAttempts, cfg.RateLimit.AuthWindow, conns.Redis)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		goalController,
		habitController,
		todoController,
		scheduleController,
		analyticsController,
		authRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:          cfg,
		Router:          r,
		Clock:           clock,
		EmailQueue:      emailQueueRepo,
		AuthRateLimiter: authRateLimiter,
	}
}
