package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hireloop/examportal/config"
	"github.com/hireloop/examportal/database"
	"github.com/hireloop/examportal/internal/auth"
	adminctrl "github.com/hireloop/examportal/internal/controller/admin"
	candidatectrl "github.com/hireloop/examportal/internal/controller/candidate"
	"github.com/hireloop/examportal/internal/logger"
	"github.com/hireloop/examportal/internal/middleware"
	"github.com/hireloop/examportal/internal/model"
	"github.com/hireloop/examportal/internal/repository"
	"github.com/hireloop/examportal/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Candidate Assessment Portal API
// @version 1.0
// @description REST API for candidate registration, single-attempt domain exams and the admin console.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			auth.NewTokenIssuer,
			service.NewRand,
		),

		// Repositories layer
		fx.Provide(
			repository.NewCandidateRepository,
			repository.NewDomainRepository,
			repository.NewQuestionRepository,
			repository.NewResultRepository,
			repository.NewAcademicRepository,
			repository.NewAdminRepository,
		),

		// Services layer
		fx.Provide(
			service.NewPaperService,
			service.NewScoringService,
			service.NewExamService,
			service.NewAuthService,
			service.NewAcademicService,
			service.NewAdminService,
		),

		// API controllers layer
		fx.Provide(
			candidatectrl.NewAuthController,
			candidatectrl.NewExamController,
			candidatectrl.NewAcademicController,
			adminctrl.NewAuthController,
			adminctrl.NewResultController,
			adminctrl.NewCandidateController,
			adminctrl.NewQuestionController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("http_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens *auth.TokenIssuer,
	candAuthCtrl *candidatectrl.AuthController,
	examCtrl *candidatectrl.ExamController,
	academicCtrl *candidatectrl.AcademicController,
	adminAuthCtrl *adminctrl.AuthController,
	resultCtrl *adminctrl.ResultController,
	adminCandCtrl *adminctrl.CandidateController,
	questionCtrl *adminctrl.QuestionController,
) {
	api := router.Group("/api/v1")

	candidateGroup := api.Group("/candidate")
	{
		candidateGroup.POST("/register", candAuthCtrl.Register)
		candidateGroup.POST("/login", candAuthCtrl.Login)
		candidateGroup.GET("/dropdowns", candAuthCtrl.Dropdowns)

		authed := candidateGroup.Group("", middleware.CandidateAuth(tokens))
		authed.GET("/me", candAuthCtrl.Me)

		exam := authed.Group("/exam")
		exam.GET("/generate", examCtrl.GenerateExam)
		exam.POST("/submit", examCtrl.SubmitExam)
		exam.GET("/result", examCtrl.GetResult)

		academic := authed.Group("/academic-history")
		academic.GET("", academicCtrl.List)
		academic.POST("", academicCtrl.Add)
		academic.PUT("/:id", academicCtrl.Update)
		academic.DELETE("/:id", academicCtrl.Delete)
	}

	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/login", adminAuthCtrl.Login)

		authed := adminGroup.Group("", middleware.AdminAuth(tokens))
		authed.GET("/results", resultCtrl.List)
		authed.GET("/results/:id", resultCtrl.Detail)
		authed.GET("/candidates", adminCandCtrl.List)
		authed.GET("/candidates/:id", adminCandCtrl.Detail)
		authed.POST("/questions", questionCtrl.Create)
		authed.GET("/questions", questionCtrl.List)
		authed.GET("/questions/:id", questionCtrl.Get)
		authed.PUT("/questions/:id", questionCtrl.Update)
		authed.DELETE("/questions/:id", questionCtrl.Delete)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assessment portal API starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Domain{},
		&model.Candidate{},
		&model.Question{},
		&model.ExamResult{},
		&model.AcademicRecord{},
		&model.Admin{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
