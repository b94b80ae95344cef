package http

import (
	"taskdesk/internal/adapter/http/handlers"
	"taskdesk/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	itemHandler *handlers.ItemHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
) {
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.CheckHealth)

	api := r.Group("/api/v1")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/items", itemHandler.ListItems)
		api.GET("/items/stats/count", itemHandler.CountItems)
		api.GET("/items/:id", itemHandler.GetItem)
		api.POST("/items", itemHandler.CreateItem)
		api.PUT("/items/:id", itemHandler.UpdateItem)
		api.DELETE("/items/:id", itemHandler.DeleteItem)

		api.GET("/tasks", taskHandler.ListTasks)
		api.GET("/tasks/user/:user_id", taskHandler.ListTasksByUser)
		api.GET("/tasks/overdue/list", taskHandler.ListOverdueTasks)
		api.GET("/tasks/priority/:priority", taskHandler.ListTasksByPriority)
		api.GET("/tasks/daterange/list", taskHandler.ListTasksByDateRange)
		api.GET("/tasks/stats/count", taskHandler.CountTasks)
		api.GET("/tasks/stats/summary", taskHandler.GetTaskSummary)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.POST("/tasks", taskHandler.CreateTask)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.PATCH("/tasks/:id/complete", taskHandler.CompleteTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)

		api.GET("/users", userHandler.ListUsers)
		api.GET("/users/:id", userHandler.GetUser)
		api.POST("/users", userHandler.CreateUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)
	}
}
