package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillhive/marketplace/internal/api/handler"
	"github.com/skillhive/marketplace/internal/api/middleware"
	"github.com/skillhive/marketplace/internal/core/domain"
	"github.com/skillhive/marketplace/internal/core/service"
	mongodb "github.com/skillhive/marketplace/internal/infrastructure/db/mongo"
	redisdb "github.com/skillhive/marketplace/internal/infrastructure/db/redis"
	"github.com/skillhive/marketplace/pkg/logger"
)

const tokenTTL = 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret, uploadDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("skillhive"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	enrollmentRepo := mongodb.NewEnrollmentRepository(db)
	applicationRepo := mongodb.NewApplicationRepository(db)
	sessions := redisdb.NewSessionRegistry(rdb)

	log := logger.Get()
	authService := service.NewAuthService(userRepo, sessions, jwtSecret, tokenTTL)
	projectService := service.NewProjectService(projectRepo, enrollmentRepo, log)
	freelancerService := service.NewFreelancerService(userRepo, applicationRepo, uploadDir, log)

	authHandler := handler.NewAuthHandler(authService, tokenTTL)
	projectHandler := handler.NewProjectHandler(projectService)
	freelancerHandler := handler.NewFreelancerHandler(freelancerService)

	authRequired := middleware.Auth(jwtSecret, sessions)
	clientOnly := middleware.RBAC(domain.RoleClient)
	studentFamily := middleware.RBAC(domain.RoleStudent, domain.RoleFreelancer)
	studentOnly := middleware.RBAC(domain.RoleStudent)
	freelancerOnly := middleware.RBAC(domain.RoleFreelancer)

	// --- Auth routes ---
	e.POST("/student-login", authHandler.StudentLogin)
	e.POST("/client-login", authHandler.ClientLogin)
	e.POST("/register-student", authHandler.RegisterStudent)
	e.POST("/register-client", authHandler.RegisterClient)
	e.POST("/logout", authHandler.Logout, authRequired)

	// --- Client routes ---
	e.GET("/client-dashboard", projectHandler.ClientDashboard, authRequired, clientOnly)
	e.POST("/post-project", projectHandler.PostProject, authRequired, clientOnly)
	e.POST("/update-project/:id", projectHandler.UpdateProject, authRequired, clientOnly)

	// --- Student routes ---
	e.GET("/student-dashboard", projectHandler.StudentDashboard, authRequired, studentFamily)
	e.GET("/enroll/:id", projectHandler.Enroll, authRequired, freelancerOnly)
	e.POST("/apply-freelancer", freelancerHandler.Apply, authRequired, studentOnly)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
