package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/shared/middleware"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.Locale(),
	)

	router.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "version": c.Config.App.Version})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", c.AuthHandler.Login)

		blog := v1.Group("/blog")
		{
			blog.GET("/articles", c.ArticleHandler.List)
			blog.GET("/articles/:slug", c.ArticleHandler.GetBySlug)
			blog.GET("/categories", c.CategoryHandler.GetAll)
			blog.GET("/categories/:id", c.CategoryHandler.GetByID)
			blog.GET("/authors", c.AuthorHandler.GetAll)
			blog.GET("/authors/:id", c.AuthorHandler.GetByID)
		}

		v1.GET("/projects", c.ProjectHandler.List)
		v1.GET("/projects/:id", c.ProjectHandler.GetByID)
		v1.GET("/project-categories", c.ProjectCategoryHandler.GetAll)
		v1.GET("/project-categories/:id", c.ProjectCategoryHandler.GetByID)

		v1.GET("/jobs", c.JobHandler.List)
		v1.GET("/jobs/:id", c.JobHandler.GetByID)

		v1.POST("/contact", c.ContactHandler.Create)

		v1.POST("/newsletter/subscribe", c.NewsletterHandler.Subscribe)
		v1.POST("/newsletter/unsubscribe", c.NewsletterHandler.Unsubscribe)

		admin := v1.Group("/admin", middleware.AuthMiddleware(c.JWTManager))
		{
			admin.POST("/blog/articles", c.ArticleHandler.Create)
			admin.PUT("/blog/articles/:slugOrId", c.ArticleHandler.Update)
			admin.DELETE("/blog/articles/:slugOrId", c.ArticleHandler.Delete)

			admin.POST("/blog/categories", c.CategoryHandler.Create)
			admin.PUT("/blog/categories/:id", c.CategoryHandler.Update)
			admin.DELETE("/blog/categories/:id", c.CategoryHandler.Delete)

			admin.POST("/blog/authors", c.AuthorHandler.Create)
			admin.PUT("/blog/authors/:id", c.AuthorHandler.Update)
			admin.DELETE("/blog/authors/:id", c.AuthorHandler.Delete)

			admin.POST("/projects", c.ProjectHandler.Create)
			admin.PUT("/projects/:id", c.ProjectHandler.Update)
			admin.DELETE("/projects/:id", c.ProjectHandler.Delete)

			admin.POST("/project-categories", c.ProjectCategoryHandler.Create)
			admin.PUT("/project-categories/:id", c.ProjectCategoryHandler.Update)
			admin.DELETE("/project-categories/:id", c.ProjectCategoryHandler.Delete)

			admin.POST("/jobs", c.JobHandler.Create)
			admin.PUT("/jobs/:id", c.JobHandler.Update)
			admin.DELETE("/jobs/:id", c.JobHandler.Delete)

			admin.GET("/contact", c.ContactHandler.List)
			admin.GET("/contact/export", c.ContactHandler.Export)
			admin.GET("/contact/:id", c.ContactHandler.GetByID)
			admin.PATCH("/contact/:id/status", c.ContactHandler.UpdateStatus)
			admin.DELETE("/contact/:id", c.ContactHandler.Delete)

			admin.GET("/employees", c.EmployeeHandler.GetAll)
			admin.POST("/employees", c.EmployeeHandler.Create)
			admin.DELETE("/employees/:id", c.EmployeeHandler.Delete)
			admin.GET("/employees/:id/time-entries", c.EmployeeHandler.ListEntries)
			admin.POST("/employees/:id/time-entries", c.EmployeeHandler.CreateEntry)
			admin.GET("/employees/:id/rollups", c.EmployeeHandler.Rollups)
			admin.DELETE("/time-entries/:id", c.EmployeeHandler.DeleteEntry)

			admin.GET("/finance/entries", c.FinanceHandler.List)
			admin.POST("/finance/entries", c.FinanceHandler.Create)
			admin.DELETE("/finance/entries/:id", c.FinanceHandler.Delete)
			admin.GET("/finance/summary", c.FinanceHandler.Summary)
			admin.GET("/finance/export", c.FinanceHandler.Export)

			admin.GET("/newsletter/subscribers", c.NewsletterHandler.List)
		}
	}

	return router
}
