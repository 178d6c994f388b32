package router

import (
	"time"

	"github.com/verumrexo/tip-harmony/internal/config"
	"github.com/verumrexo/tip-harmony/internal/handler"
	"github.com/verumrexo/tip-harmony/internal/middleware"
	"github.com/verumrexo/tip-harmony/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires middlewares, handlers and routes into a gin engine.
func New(
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	calcSvc service.CalculationService,
	drinkSvc service.DrinkOrderService,
	authSvc service.AuthService,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	authH := handler.NewAuthHandler(authSvc)
	calcH := handler.NewCalculationsHandler(calcSvc)
	drinkH := handler.NewDrinkOrdersHandler(drinkSvc)

	r.GET("/health", handler.Health(db, rdb))

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))
	}

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)

		protected := v1.Group("")
		protected.Use(middleware.RateLimiter(120, time.Minute))
		protected.Use(middleware.SessionAuth(cfg.JWTSecret))
		{
			protected.POST("/calculations", calcH.Create)
			protected.GET("/calculations", calcH.List)
			protected.GET("/calculations/analytics", calcH.Analytics)

			protected.POST("/drink-orders", drinkH.Create)
			protected.GET("/drink-orders/report", drinkH.Report)
			protected.POST("/drink-orders/report/send", drinkH.SendReport)
		}
	}

	return r
}
