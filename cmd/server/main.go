package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngocmaitran/portfolio-cms/adapters/event"
	httpAdapter "github.com/ngocmaitran/portfolio-cms/adapters/http"
	"github.com/ngocmaitran/portfolio-cms/adapters/media_storage"
	"github.com/ngocmaitran/portfolio-cms/adapters/persistence"
	authUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/auth"
	builderUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/builder"
	feedUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/feed"
	mediaUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/media"
	methodologyUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/methodology"
	pageUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/page"
	profileUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/profile"
	projectUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/project"
	skillUC "github.com/ngocmaitran/portfolio-cms/internal/application/usecase/skill"
	"github.com/ngocmaitran/portfolio-cms/internal/config"
	"github.com/ngocmaitran/portfolio-cms/pkg/auth"
	"github.com/ngocmaitran/portfolio-cms/pkg/logger"
	"github.com/ngocmaitran/portfolio-cms/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio CMS API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Tracing
	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-cms-api")
	if err != nil {
		appLogger.Warn("Tracing disabled, could not reach collector")
	} else {
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	methodologyRepo := persistence.NewPostgresMethodologyRepo(dbPool, appLogger)
	sectionRepo := persistence.NewPostgresSectionRepo(dbPool, appLogger)
	pageCache := persistence.NewRedisPageCache(redisClient, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize uploader: %v", err)
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, kafkaClient, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, kafkaClient, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo)
	getProjectUseCase := projectUC.NewGetProjectUseCase(projectRepo)
	getProjectBySlugUseCase := projectUC.NewGetProjectBySlugUseCase(projectRepo)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, kafkaClient, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, kafkaClient, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, kafkaClient, appLogger)
	methodologyUseCase := methodologyUC.NewMethodologyUseCase(methodologyRepo, kafkaClient, appLogger)

	listSectionsUseCase := builderUC.NewListSectionsUseCase(sectionRepo)
	listParentsUseCase := builderUC.NewListParentsUseCase(sectionRepo, projectRepo)
	createSectionUseCase := builderUC.NewCreateSectionUseCase(sectionRepo, kafkaClient, appLogger)
	saveSectionUseCase := builderUC.NewSaveSectionUseCase(sectionRepo, kafkaClient, appLogger)
	reorderSectionsUseCase := builderUC.NewReorderSectionsUseCase(sectionRepo, kafkaClient, appLogger)
	saveOrderUseCase := builderUC.NewSaveOrderUseCase(sectionRepo, kafkaClient, appLogger)
	duplicateSectionUseCase := builderUC.NewDuplicateSectionUseCase(sectionRepo, kafkaClient, appLogger)
	deleteSectionUseCase := builderUC.NewDeleteSectionUseCase(sectionRepo, kafkaClient, appLogger)

	getPageUseCase := pageUC.NewGetPageUseCase(sectionRepo, pageCache, appLogger)
	getPortfolioUseCase := pageUC.NewGetPortfolioUseCase(
		profileRepo, projectRepo, skillRepo, methodologyRepo, sectionRepo, pageCache, appLogger)
	uploadMediaUseCase := mediaUC.NewUploadMediaUseCase(uploader, appLogger)
	rssUseCase := feedUC.NewRSSUseCase(projectRepo, profileRepo, cfg.Site, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		listProjectsUseCase,
		getProjectUseCase,
		getProjectBySlugUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		appLogger,
	)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase, appLogger)
	methodologyHandler := httpAdapter.NewMethodologyHandler(methodologyUseCase, appLogger)
	sectionHandler := httpAdapter.NewSectionHandler(
		listSectionsUseCase,
		listParentsUseCase,
		createSectionUseCase,
		saveSectionUseCase,
		reorderSectionsUseCase,
		saveOrderUseCase,
		duplicateSectionUseCase,
		deleteSectionUseCase,
		appLogger,
	)
	pageHandler := httpAdapter.NewPageHandler(getPageUseCase, getPortfolioUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploadMediaUseCase, appLogger)
	rssHandler := httpAdapter.NewRSSHandler(rssUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{

		admin := api.Group("/admin")
		{

			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", authHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{

				adminPrivate.GET("/health-auth", func(c *gin.Context) {
					userID, ok := httpAdapter.GetOwnerIDFromGinContext(c)
					if !ok {
						c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot get user id from context"})
						return
					}
					c.JSON(http.StatusOK, gin.H{
						"status":   "OK",
						"owner_id": userID,
					})
				})

				adminPrivate.GET("/profile", profileHandler.GetProfile)
				adminPrivate.PUT("/profile", profileHandler.UpdateProfile)

				projects := adminPrivate.Group("/projects")
				{
					projects.POST("", projectHandler.CreateProject)
					projects.GET("", projectHandler.ListProjects)
					projects.GET("/:id", projectHandler.GetProject)
					projects.PUT("/:id", projectHandler.UpdateProject)
					projects.DELETE("/:id", projectHandler.DeleteProject)
				}

				skills := adminPrivate.Group("/skills")
				{
					skills.GET("", skillHandler.ListSkills)
					skills.POST("", skillHandler.CreateSkill)
					skills.PUT("", skillHandler.SaveSkills)
					skills.DELETE("/:id", skillHandler.DeleteSkill)
				}

				methodologies := adminPrivate.Group("/methodology")
				{
					methodologies.GET("", methodologyHandler.ListItems)
					methodologies.POST("", methodologyHandler.CreateItem)
					methodologies.PUT("", methodologyHandler.SaveItems)
					methodologies.DELETE("/:id", methodologyHandler.DeleteItem)
				}

				sections := adminPrivate.Group("/sections")
				{
					sections.POST("", sectionHandler.CreateSection)
					sections.POST("/reorder", sectionHandler.ReorderSections)
					sections.PUT("/:id", sectionHandler.SaveSection)
					sections.POST("/:id/duplicate", sectionHandler.DuplicateSection)
					sections.DELETE("/:id", sectionHandler.DeleteSection)
				}

				pages := adminPrivate.Group("/pages")
				{
					pages.GET("", sectionHandler.ListParents)
					pages.GET("/:parent/sections", sectionHandler.ListSections)
					pages.PUT("/:parent/order", sectionHandler.SaveOrder)
				}

				adminPrivate.POST("/media", mediaHandler.UploadMedia)
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/portfolio", pageHandler.GetPortfolio)
			public.GET("/pages/:parent", pageHandler.GetPage)
			public.GET("/projects", projectHandler.ListProjects)
			public.GET("/projects/:slug", projectHandler.GetProjectBySlug)
			public.GET("/rss", rssHandler.GenerateRSS)
		}
	}

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
