package router

import (
	"github.com/gin-gonic/gin"

	"carline/internal/config"
	"carline/internal/handler"
	"carline/internal/middleware"
	"carline/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	carSvc service.CarService,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	carH *handler.CarHandler,
	expenseH *handler.ExpenseHandler,
	maintenanceH *handler.MaintenanceHandler,
	mileageH *handler.MileageHandler,
	aiH *handler.AIHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)
	auth.POST("/logout", authH.Logout)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.Auth(authSvc))

	protected.GET("/auth/me", authH.Me)

	// Profile routes
	users := protected.Group("/users")
	users.GET("/me", userH.GetProfile)
	users.PUT("/me", userH.UpdateProfile)

	// Car routes
	cars := protected.Group("/cars")
	cars.POST("", carH.Create)
	cars.GET("", carH.List)
	cars.GET("/:carId", carH.Get)
	cars.PUT("/:carId", carH.Update)
	cars.DELETE("/:carId", carH.Delete)

	// Car-scoped routes - ownership verified once by middleware
	carScoped := cars.Group("/:carId")
	carScoped.Use(middleware.CarOwner(carSvc))
	carScoped.POST("/expenses", expenseH.Create)
	carScoped.GET("/expenses", expenseH.ListByCar)
	carScoped.POST("/maintenance", maintenanceH.Create)
	carScoped.GET("/maintenance", maintenanceH.List)
	carScoped.PUT("/maintenance/:recordId", maintenanceH.Update)
	carScoped.DELETE("/maintenance/:recordId", maintenanceH.Delete)
	carScoped.POST("/mileage", mileageH.Create)
	carScoped.GET("/mileage", mileageH.List)
	carScoped.PUT("/mileage/:recordId", mileageH.Update)
	carScoped.DELETE("/mileage/:recordId", mileageH.Delete)

	// User-wide expense routes
	expenses := protected.Group("/expenses")
	expenses.GET("", expenseH.List)
	expenses.GET("/categories", expenseH.Categories)
	expenses.GET("/stats", expenseH.Stats)
	expenses.GET("/export", expenseH.Export)
	expenses.GET("/:expenseId", expenseH.Get)
	expenses.PUT("/:expenseId", expenseH.Update)
	expenses.DELETE("/:expenseId", expenseH.Delete)

	// Receipt extraction routes
	ai := protected.Group("/ai")
	ai.POST("/process-receipt", aiH.ProcessReceipt)
	ai.GET("/health", aiH.Health)

	return r
}
