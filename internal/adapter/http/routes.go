package http

import (
	"github.com/gin-gonic/gin"

	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/handlers"
	"github.com/batirniyaz/todo-manager-proweb/internal/adapter/http/middleware"
	"github.com/batirniyaz/todo-manager-proweb/pkg/authtoken"
)

func RegisterRoutes(
	r *gin.Engine,
	tokens *authtoken.Manager,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	commentHandler *handlers.CommentHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/token", authHandler.ObtainToken)
		api.POST("/token/refresh", authHandler.RefreshToken)
		api.POST("/token/verify", authHandler.VerifyToken)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.GET("/task", taskHandler.ListTasks)
		protected.POST("/task", taskHandler.CreateTask)
		protected.GET("/task/:id", taskHandler.GetTask)
		protected.PUT("/task/:id", taskHandler.UpdateTask)
		protected.PATCH("/task/:id", taskHandler.PatchTask)
		protected.DELETE("/task/:id", taskHandler.DeleteTask)

		protected.GET("/comment", commentHandler.ListComments)
		protected.POST("/comment", commentHandler.CreateComment)
		protected.GET("/comment/:id", commentHandler.GetComment)
		protected.PUT("/comment/:id", commentHandler.UpdateComment)
		protected.PATCH("/comment/:id", commentHandler.PatchComment)
		protected.DELETE("/comment/:id", commentHandler.DeleteComment)
	}
}
