package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/freecrm-dev/freecrm/internal/handlers"
	"github.com/freecrm-dev/freecrm/internal/middleware"
	"github.com/freecrm-dev/freecrm/internal/types"
)

func NewRouter(database *gorm.DB, h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/logout", h.Logout)
			auth.GET("/me", middleware.AuthMiddleware(database), h.Me)
		}

		authorized := api.Group("", middleware.AuthMiddleware(database))
		{
			authorized.GET("/dashboard", h.GetDashboard)

			authorized.GET("/clients", h.ListClients)
			authorized.POST("/clients", h.CreateClient)
			authorized.PUT("/clients/:client_id", h.UpdateClient)
			authorized.DELETE("/clients/:client_id", h.DeleteClient)
			authorized.POST("/clients/import", h.ImportClients)

			authorized.GET("/projects", h.ListProjects)
			authorized.POST("/projects", h.CreateProject)
			authorized.PUT("/projects/:project_id", h.UpdateProject)
			authorized.DELETE("/projects/:project_id", h.DeleteProject)
			authorized.POST("/projects/:project_id/complete", h.CompleteProject)

			authorized.GET("/payments", h.ListPayments)
			authorized.POST("/payments", h.CreatePayment)
			authorized.PUT("/payments/:payment_id", h.UpdatePayment)
			authorized.DELETE("/payments/:payment_id", h.DeletePayment)
			authorized.POST("/payments/:payment_id/mark_paid", h.MarkPaymentPaid)

			authorized.GET("/export", h.Export)
			authorized.POST("/feedback", h.CreateFeedback)
		}
	}

	return r
}
