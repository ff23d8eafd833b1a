package router

import (
	"time"

	"edupath/config"
	"edupath/internal/handler"
	"edupath/internal/middleware"
	"edupath/internal/repository"
	"edupath/internal/service"
	"edupath/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, log *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	resolver := repository.NewResolver(db, log)
	moduleRepo := repository.NewModuleRepository(db, resolver)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	listingCache := gocache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	moduleSvc := service.NewModuleService(moduleRepo, listingCache, log)
	categorySvc := service.NewCategoryService(categoryRepo, log)
	authSvc := service.NewAuthService(cfg, userRepo)

	// Handlers
	moduleHandler := handler.NewModuleHandler(moduleSvc, log)
	categoryHandler := handler.NewCategoryHandler(categorySvc)
	authHandler := handler.NewAuthHandler(authSvc)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		// Public listing pages: published entries only.
		api.GET("/modules/:moduleType", moduleHandler.PublicList)
		api.GET("/modules/:moduleType/:identifier", moduleHandler.Get)
		api.GET("/categories/:moduleType", categoryHandler.List)

		admin := api.Group("/admin")
		admin.Use(authMw, middleware.AdminRequired())
		{
			admin.GET("/modules/:moduleType", moduleHandler.AdminList)
			admin.POST("/modules", moduleHandler.Create)
			admin.PATCH("/modules/:id", moduleHandler.Update)
			admin.DELETE("/modules/:id", moduleHandler.Delete)

			admin.POST("/categories", categoryHandler.Create)
			admin.DELETE("/categories/:id", categoryHandler.Delete)

			admin.POST("/uploads/image", uploadHandler.UploadImage)
		}
	}

	return r
}
