package main

import (
	"fmt"
	"log"

	"carline/internal/config"
	"carline/internal/handler"
	"carline/internal/receipt"
	"carline/internal/repository/postgres"
	"carline/internal/router"
	"carline/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	tokenRepo := postgres.NewRefreshTokenRepo(db)
	carRepo := postgres.NewCarRepo(db)
	categoryRepo := postgres.NewExpenseCategoryRepo(db)
	expenseRepo := postgres.NewExpenseRepo(db)
	maintenanceRepo := postgres.NewMaintenanceRepo(db)
	mileageRepo := postgres.NewMileageRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tokenRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	carSvc := service.NewCarService(carRepo)
	expenseSvc := service.NewExpenseService(expenseRepo, categoryRepo)
	maintenanceSvc := service.NewMaintenanceService(maintenanceRepo)
	mileageSvc := service.NewMileageService(mileageRepo)

	completer := receipt.NewClient(&cfg.AI)
	receiptSvc := service.NewReceiptService(completer, cfg.AI.Configured())
	if !cfg.AI.Configured() {
		log.Println("receipt extraction disabled: no API key configured")
	}

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	carH := handler.NewCarHandler(carSvc)
	expenseH := handler.NewExpenseHandler(expenseSvc, carSvc)
	maintenanceH := handler.NewMaintenanceHandler(maintenanceSvc)
	mileageH := handler.NewMileageHandler(mileageSvc)
	aiH := handler.NewAIHandler(receiptSvc, carSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, carSvc,
		authH, userH, carH, expenseH, maintenanceH, mileageH, aiH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
