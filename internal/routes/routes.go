package routes

import (
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Setup registers the web surface, the REST API and the media file server.
func Setup(router *gin.Engine, h *handlers.AppHandlers, cfg *config.Config) {
	// Uploaded resumes are served from local storage under /media/.
	router.Static("/media", cfg.Storage.BasePath)

	registerWebRoutes(router, h)
	registerAPIRoutes(router, h)
}

func registerWebRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	web := router.Group("/", middleware.SessionUserMiddleware())
	{
		web.GET("/", h.WebJob.Home)
		web.GET("/job/:id/", h.WebJob.JobDetail)

		accounts := web.Group("/accounts")
		{
			accounts.GET("/register/", h.WebAuth.RegisterPage)
			accounts.POST("/register/", h.WebAuth.Register)
			accounts.GET("/login/", h.WebAuth.LoginPage)
			accounts.POST("/login/", h.WebAuth.Login)
			accounts.GET("/logout/", h.WebAuth.Logout)
		}
	}

	authed := router.Group("/", middleware.SessionAuthMiddleware())
	{
		authed.GET("/job/:id/apply/", h.WebJob.ApplyPage)
		authed.POST("/job/:id/apply/", h.WebJob.Apply)
		authed.GET("/accounts/profile/", h.WebAuth.ProfilePage)
		authed.POST("/accounts/profile/", h.WebAuth.ChangePassword)

		authed.GET("/admin-dashboard/", h.WebAdmin.Dashboard)
		authed.GET("/create-job/", h.WebAdmin.CreateJobPage)
		authed.POST("/create-job/", h.WebAdmin.CreateJob)
		authed.GET("/job/:id/applications/", h.WebAdmin.ViewApplications)
		authed.POST("/job/:id/toggle-active/", h.WebAdmin.ToggleJobActive)
		authed.POST("/applications/:id/status/", h.WebAdmin.UpdateApplicationStatus)
	}
}

func registerAPIRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	api := router.Group("/api")
	{
		api.POST("/token/", h.Auth.ObtainTokenPair)
		api.POST("/token/refresh/", h.Auth.RefreshToken)
		api.POST("/token/logout/", h.Auth.Logout)
		api.GET("/jobs/", h.Job.ListJobs)

		protected := api.Group("/", middleware.JWTAuthMiddleware())
		{
			protected.GET("/jobs/:id/", h.Job.GetJob)
			protected.POST("/jobs/:id/apply/", h.Application.Apply)
			protected.GET("/my-applications/", h.Application.MyApplications)
		}
	}
}
