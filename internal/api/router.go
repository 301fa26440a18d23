package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/fastbite/ordering-api/docs"
	"github.com/fastbite/ordering-api/internal/api/handler"
	"github.com/fastbite/ordering-api/internal/api/middleware"
	"github.com/fastbite/ordering-api/internal/core/ports"
	"github.com/fastbite/ordering-api/internal/core/service"
	"github.com/fastbite/ordering-api/internal/infrastructure/config"
	"github.com/fastbite/ordering-api/internal/infrastructure/db/postgres"
	"github.com/fastbite/ordering-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, rdb *goredis.Client, images ports.ImageStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ordering"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	cache := redis.NewCache(rdb)

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	mealRepo := postgres.NewMealRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	couponRepo := postgres.NewCouponRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	feedbackRepo := postgres.NewFeedbackRepository(pool)
	announcementRepo := postgres.NewAnnouncementRepository(pool)
	dailyMenuRepo := postgres.NewDailyMenuRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiresIn, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, cache, log)
	mealService := service.NewMealService(mealRepo, cache, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	tagService := service.NewTagService(tagRepo, log)
	couponService := service.NewCouponService(couponRepo, log)
	orderService := service.NewOrderService(orderRepo, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, log)
	announcementService := service.NewAnnouncementService(announcementRepo, log)
	dailyMenuService := service.NewDailyMenuService(dailyMenuRepo, mealRepo, log)
	locationService := service.NewLocationService(locationRepo)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService, images)
	mealHandler := handler.NewMealHandler(mealService, images)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	tagHandler := handler.NewTagHandler(tagService)
	couponHandler := handler.NewCouponHandler(couponService)
	orderHandler := handler.NewOrderHandler(orderService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService, images)
	dailyMenuHandler := handler.NewDailyMenuHandler(dailyMenuService)
	locationHandler := handler.NewLocationHandler(locationService)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole("admin")
	ownerOrAdmin := middleware.RequireOwnerOrRole("id", "admin")

	v1 := e.Group("/api/v1")

	// --- Auth ---
	authGroup := v1.Group("/auth")
	authGroup.POST("/user/login", authHandler.Login)
	authGroup.POST("/admin/login", authHandler.AdminLogin)

	// --- Users ---
	users := v1.Group("/users")
	users.POST("", authHandler.Signup)
	users.POST("/admin", authHandler.AdminSignup, auth, adminOnly)
	users.GET("", userHandler.List, auth, adminOnly)
	users.GET("/email/:email", userHandler.GetByEmail, auth, adminOnly)
	users.GET("/:id", userHandler.Get, auth, ownerOrAdmin)
	users.PUT("/:id", userHandler.Update, auth, ownerOrAdmin)
	users.DELETE("/:id", userHandler.Delete, auth, ownerOrAdmin)

	// --- Products ---
	products := v1.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.GET("/category/:id", productHandler.ListByCategory)
	products.GET("/tag/:id", productHandler.ListByTag)
	products.POST("", productHandler.Create, auth, adminOnly)
	products.PUT("/:id", productHandler.Update, auth, adminOnly)
	products.DELETE("/:id", productHandler.Delete, auth, adminOnly)
	products.POST("/:id/tags/:tagid", productHandler.AddTag, auth, adminOnly)
	products.DELETE("/:id/tags/:tagid", productHandler.RemoveTag, auth, adminOnly)

	// --- Meals ---
	meals := v1.Group("/meals")
	meals.GET("", mealHandler.List)
	meals.GET("/:id", mealHandler.Get)
	meals.GET("/:id/products", mealHandler.ListProducts)
	meals.POST("", mealHandler.Create, auth, adminOnly)
	meals.PUT("/:id", mealHandler.Update, auth, adminOnly)
	meals.DELETE("/:id", mealHandler.Delete, auth, adminOnly)
	meals.POST("/:id/products/:productid", mealHandler.AddProduct, auth, adminOnly)
	meals.DELETE("/:id/products/:productid", mealHandler.RemoveProduct, auth, adminOnly)

	// --- Categories ---
	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, auth, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, auth, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, auth, adminOnly)

	// --- Tags ---
	tags := v1.Group("/tags")
	tags.GET("", tagHandler.List)
	tags.GET("/:id", tagHandler.Get)
	tags.POST("", tagHandler.Create, auth, adminOnly)
	tags.PUT("/:id", tagHandler.Update, auth, adminOnly)
	tags.DELETE("/:id", tagHandler.Delete, auth, adminOnly)

	// --- Coupons (admin only, end to end) ---
	coupons := v1.Group("/coupons", auth, adminOnly)
	coupons.GET("", couponHandler.List)
	coupons.GET("/:id", couponHandler.Get)
	coupons.POST("", couponHandler.Create)
	coupons.PUT("/:id", couponHandler.Update)
	coupons.DELETE("/:id", couponHandler.Delete)

	// --- Orders ---
	orders := v1.Group("/orders", auth)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List, adminOnly)
	orders.GET("/user/:id", orderHandler.ListByUser, ownerOrAdmin)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Update, adminOnly)
	orders.DELETE("/:id", orderHandler.Delete, adminOnly)
	orders.GET("/:id/products", orderHandler.ListItems)
	orders.POST("/:id/products", orderHandler.AddItem)
	orders.DELETE("/:id/products/:productid", orderHandler.RemoveItem)

	// --- Feedback ---
	feedbacks := v1.Group("/feedbacks", auth)
	feedbacks.POST("", feedbackHandler.Create)
	feedbacks.GET("", feedbackHandler.List, adminOnly)
	feedbacks.GET("/user/:id", feedbackHandler.ListByUser, ownerOrAdmin)
	feedbacks.PUT("/:id", feedbackHandler.MarkHandled, adminOnly)
	feedbacks.DELETE("/:id", feedbackHandler.Delete, adminOnly)

	// --- Announcements ---
	announcements := v1.Group("/announcements")
	announcements.GET("", announcementHandler.List)
	announcements.GET("/:id", announcementHandler.Get)
	announcements.POST("", announcementHandler.Create, auth, adminOnly)
	announcements.PUT("/:id", announcementHandler.Update, auth, adminOnly)
	announcements.DELETE("/:id", announcementHandler.Delete, auth, adminOnly)

	// --- Daily menu ---
	dailymenu := v1.Group("/dailymenu")
	dailymenu.GET("", dailyMenuHandler.List)
	dailymenu.GET("/:day", dailyMenuHandler.GetByDay)
	dailymenu.PUT("/:day", dailyMenuHandler.Assign, auth, adminOnly)

	// --- Locations ---
	locations := v1.Group("/locations")
	locations.GET("", locationHandler.List)
	locations.GET("/:id", locationHandler.Get)

	// --- Uploaded images ---
	e.Static("/uploads", cfg.UploadDir)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
