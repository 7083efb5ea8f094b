// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	userController      *controller.UserController
	goalController      *controller.GoalController
	habitController     *controller.HabitController
	todoController      *controller.TodoController
	scheduleController  *controller.ScheduleController
	analyticsController *controller.AnalyticsController
	authRateLimiter     *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	goalController *controller.GoalController,
	habitController *controller.HabitController,
	todoController *controller.TodoController,
	scheduleController *controller.ScheduleController,
	analyticsController *controller.AnalyticsController,
	authRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		userController:      userController,
		goalController:      goalController,
		habitController:     habitController,
		todoController:      todoController,
		scheduleController:  scheduleController,
		analyticsController: analyticsController,
		authRateLimiter:     authRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	dto.RegisterValidators()

	r.engine = gin.New()
	r.engine.Use(gin.Logger(), gin.Recovery(), middleware.Metrics())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/health/ready", r.healthController.Ready)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authRateLimiter.Middleware(), r.authController.Register)
		auth.POST("/login", r.authRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	users := protected.Group("/users")
	{
		users.GET("/me", r.userController.Me)
		users.DELETE("/me", r.userController.DeleteAccount)
		users.PATCH("/me/plan", r.userController.ChangePlan)
	}

	goals := protected.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.DELETE("/:id", r.goalController.Delete)
		goals.PATCH("/:id/progress", r.goalController.UpdateProgress)
		goals.POST("/:id/monthly-goals", r.goalController.AddMonthlyGoal)
	}

	monthlyGoals := protected.Group("/monthly-goals")
	{
		monthlyGoals.POST("/:id/weekly-goals", r.goalController.AddWeeklyGoal)
		monthlyGoals.POST("/:id/toggle", r.goalController.ToggleMonthlyGoal)
	}

	weeklyGoals := protected.Group("/weekly-goals")
	{
		weeklyGoals.POST("/:id/daily-tasks", r.goalController.AddDailyTask)
		weeklyGoals.POST("/:id/toggle", r.goalController.ToggleWeeklyGoal)
	}

	dailyTasks := protected.Group("/daily-tasks")
	{
		dailyTasks.GET("/today", r.goalController.TodayTasks)
		dailyTasks.POST("/:id/toggle", r.goalController.ToggleDailyTask)
	}

	habits := protected.Group("/habits")
	{
		habits.GET("", r.habitController.List)
		habits.POST("", r.habitController.Create)
		habits.PATCH("/:name", r.habitController.Update)
		habits.DELETE("/:name", r.habitController.Delete)
		habits.POST("/:name/progress", r.habitController.RecordProgress)
		habits.POST("/:name/sessions", r.habitController.CompleteSession)
	}

	todos := protected.Group("/todos")
	{
		todos.GET("", r.todoController.List)
		todos.POST("", r.todoController.Create)
		todos.PATCH("/:id", r.todoController.Update)
		todos.DELETE("/:id", r.todoController.Delete)
		todos.POST("/:id/toggle", r.todoController.Toggle)
	}

	protected.GET("/analytics", r.analyticsController.Get)

	schedule := protected.Group("/schedule")
	{
		schedule.GET("", r.scheduleController.ListItems)
		schedule.POST("", r.scheduleController.AddItem)
		schedule.PATCH("/:id", r.scheduleController.UpdateItem)
		schedule.DELETE("/:id", r.scheduleController.DeleteItem)
		schedule.POST("/:id/toggle", r.scheduleController.ToggleItem)
	}

	templates := protected.Group("/templates")
	{
		templates.GET("", r.scheduleController.ListTemplates)
		templates.POST("", r.scheduleController.CreateTemplate)
		templates.POST("/from-day", r.scheduleController.CreateTemplateFromDay)
		templates.DELETE("/:id", r.scheduleController.DeleteTemplate)
		templates.POST("/:id/apply", r.scheduleController.ApplyTemplate)
	}

	savedItems := protected.Group("/saved-items")
	{
		savedItems.GET("", r.scheduleController.ListSavedItems)
		savedItems.POST("", r.scheduleController.SaveItem)
		savedItems.DELETE("/:id", r.scheduleController.DeleteSavedItem)
		savedItems.POST("/:id/schedule", r.scheduleController.ScheduleSavedItem)
	}
}
