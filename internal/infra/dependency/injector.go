// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orderdash/backend/config"
	appadapter "github.com/orderdash/backend/internal/application/adapter"
	"github.com/orderdash/backend/internal/application/usecase/analytics"
	"github.com/orderdash/backend/internal/application/usecase/auth"
	"github.com/orderdash/backend/internal/application/usecase/expense"
	"github.com/orderdash/backend/internal/application/usecase/insight"
	"github.com/orderdash/backend/internal/application/usecase/order"
	"github.com/orderdash/backend/internal/application/usecase/report"
	"github.com/orderdash/backend/internal/infra/server/router"
	"github.com/orderdash/backend/internal/integration/adapters"
	"github.com/orderdash/backend/internal/integration/entrypoint/controller"
	"github.com/orderdash/backend/internal/integration/entrypoint/middleware"
	"github.com/orderdash/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	OrderRepo   appadapter.OrderRepository
	ExpenseRepo appadapter.ExpenseRepository
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil db selects the in-memory repositories; a nil redisClient disables
// login rate limiting.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	idGenerator := adapters.NewOrderIDGenerator()

	var orderRepo appadapter.OrderRepository
	var expenseRepo appadapter.ExpenseRepository
	if db != nil {
		orderRepo = persistence.NewOrderRepository(db, idGenerator)
		expenseRepo = persistence.NewExpenseRepository(db)
	} else {
		orderRepo = persistence.NewMemoryOrderRepository(idGenerator)
		expenseRepo = persistence.NewMemoryExpenseRepository()
	}

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	reportSender := adapters.NewResendReportSender(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	insightService := adapters.NewGeminiInsightService(cfg.AI.GeminiAPIKey)

	// Auth use cases
	loginUseCase := auth.NewLoginUserUseCase(cfg.Admin.Email, cfg.Admin.PasswordHash, passwordService, tokenService)

	// Order use cases
	listOrdersUseCase := order.NewListOrdersUseCase(orderRepo)
	getOrderUseCase := order.NewGetOrderUseCase(orderRepo)
	createOrderUseCase := order.NewCreateOrderUseCase(orderRepo)
	updateOrderUseCase := order.NewUpdateOrderUseCase(orderRepo)
	deleteOrderUseCase := order.NewDeleteOrderUseCase(orderRepo)

	// Expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)

	// Analytics, report and insight use cases
	salesReportUseCase := analytics.NewGetSalesReportUseCase(orderRepo, expenseRepo)
	overviewUseCase := analytics.NewGetOverviewUseCase(orderRepo, expenseRepo)
	sendReportUseCase := report.NewSendSalesReportUseCase(salesReportUseCase, overviewUseCase, reportSender)
	salesInsightUseCase := insight.NewGetSalesInsightUseCase(salesReportUseCase, overviewUseCase, insightService)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		if db == nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(loginUseCase)
	orderController := controller.NewOrderController(
		listOrdersUseCase,
		getOrderUseCase,
		createOrderUseCase,
		updateOrderUseCase,
		deleteOrderUseCase,
	)
	expenseController := controller.NewExpenseController(createExpenseUseCase, listExpensesUseCase)
	analyticsController := controller.NewAnalyticsController(salesReportUseCase, overviewUseCase)
	reportController := controller.NewReportController(sendReportUseCase, salesInsightUseCase, cfg.Email.ReportRecipient)

	// Middleware
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		orderController,
		expenseController,
		analyticsController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		OrderRepo:   orderRepo,
		ExpenseRepo: expenseRepo,
	}
}
