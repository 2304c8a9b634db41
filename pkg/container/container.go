package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/config"
	articlehandler "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/article/handler"
	articlerepo "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/article/repository"
	articleservice "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/article/service"
	authhandler "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/auth/handler"
	authrepo "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/auth/repository"
	authservice "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/auth/service"
	authorhandler "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/handler"
	authorrepo "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/repository"
	authorservice "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/author/service"
	categoryhandler "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/category/handler"
	categoryrepo "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/category/repository"
	categoryservice "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/category/service"
	contacthandler "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/contact/handler"
	contactrepo "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/contact/repository"
	contactservice "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/contact/service"
	employeehandler "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/employee/handler"
	employeerepo "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/employee/repository"
	employeeservice "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/employee/service"
	financehandler "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/finance/handler"
	financerepo "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/finance/repository"
	financeservice "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/finance/service"
	jobhandler "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/job/handler"
	jobrepo "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/job/repository"
	jobservice "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/job/service"
	newsletterhandler "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/newsletter/handler"
	newsletterrepo "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/newsletter/repository"
	newsletterservice "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/newsletter/service"
	projecthandler "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/project/handler"
	projectrepo "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/project/repository"
	projectservice "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/project/service"
	projectcategoryhandler "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/projectcategory/handler"
	projectcategoryrepo "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/projectcategory/repository"
	projectcategoryservice "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/projectcategory/service"
	infracache "github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/infrastructure/cache"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/infrastructure/database"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/jwt"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/logger"
)

// Container wires infrastructure, repositories, services and handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       *infracache.RedisCache
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager

	AuthHandler            *authhandler.AuthHandler
	ArticleHandler         *articlehandler.ArticleHandler
	CategoryHandler        *categoryhandler.CategoryHandler
	AuthorHandler          *authorhandler.AuthorHandler
	ProjectHandler         *projecthandler.ProjectHandler
	ProjectCategoryHandler *projectcategoryhandler.ProjectCategoryHandler
	JobHandler             *jobhandler.JobHandler
	ContactHandler         *contacthandler.ContactHandler
	EmployeeHandler        *employeehandler.EmployeeHandler
	FinanceHandler         *financehandler.FinanceHandler
	NewsletterHandler      *newsletterhandler.NewsletterHandler

	// repositories the worker needs directly
	ContactRepo contactrepo.RepositoryInterface
	ArticleRepo articlerepo.RepositoryInterface
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	db := database.NewPostgresDB(cfg.DBConfig())
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		// taxonomy caching and background tasks degrade, reads still work
		logger.Error("redis unavailable at startup", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	c := &Container{
		Config:      cfg,
		DB:          db,
		Cache:       redisCache,
		AsynqClient: asynqClient,
		JWTManager:  jwtManager,
	}

	authRepo := authrepo.NewPostgresRepository(db.Pool)
	c.AuthHandler = authhandler.NewAuthHandler(authservice.NewAuthService(authRepo, jwtManager))

	articleRepo := articlerepo.NewPostgresRepository(db.Pool)
	c.ArticleRepo = articleRepo
	c.ArticleHandler = articlehandler.NewArticleHandler(articleservice.NewArticleService(articleRepo))

	categoryRepo := categoryrepo.NewPostgresRepository(db.Pool, redisCache)
	c.CategoryHandler = categoryhandler.NewCategoryHandler(categoryservice.NewCategoryService(categoryRepo))

	authorRepo := authorrepo.NewPostgresRepository(db.Pool)
	c.AuthorHandler = authorhandler.NewAuthorHandler(authorservice.NewAuthorService(authorRepo))

	projectRepo := projectrepo.NewPostgresRepository(db.Pool)
	c.ProjectHandler = projecthandler.NewProjectHandler(projectservice.NewProjectService(projectRepo))

	projectCategoryRepo := projectcategoryrepo.NewPostgresRepository(db.Pool, redisCache)
	c.ProjectCategoryHandler = projectcategoryhandler.NewProjectCategoryHandler(
		projectcategoryservice.NewProjectCategoryService(projectCategoryRepo))

	jobRepo := jobrepo.NewPostgresRepository(db.Pool)
	c.JobHandler = jobhandler.NewJobHandler(jobservice.NewJobService(jobRepo))

	contactRepo := contactrepo.NewPostgresRepository(db.Pool)
	c.ContactRepo = contactRepo
	c.ContactHandler = contacthandler.NewContactHandler(
		contactservice.NewContactService(contactRepo, asynqClient))

	employeeRepo := employeerepo.NewPostgresRepository(db.Pool)
	c.EmployeeHandler = employeehandler.NewEmployeeHandler(employeeservice.NewEmployeeService(employeeRepo))

	financeRepo := financerepo.NewPostgresRepository(db.Pool)
	c.FinanceHandler = financehandler.NewFinanceHandler(financeservice.NewFinanceService(financeRepo))

	newsletterRepo := newsletterrepo.NewPostgresRepository(db.Pool)
	c.NewsletterHandler = newsletterhandler.NewNewsletterHandler(
		newsletterservice.NewNewsletterService(newsletterRepo))

	return c, nil
}

// Cleanup releases shared resources in reverse order of acquisition.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("failed to close asynq client", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}
}
