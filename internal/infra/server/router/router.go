// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/orderdash/backend/internal/integration/entrypoint/controller"
	"github.com/orderdash/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	orderController     *controller.OrderController
	expenseController   *controller.ExpenseController
	analyticsController *controller.AnalyticsController
	reportController    *controller.ReportController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	orderController *controller.OrderController,
	expenseController *controller.ExpenseController,
	analyticsController *controller.AnalyticsController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		orderController:     orderController,
		expenseController:   expenseController,
		analyticsController: analyticsController,
		reportController:    reportController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		if r.orderController != nil && r.authMiddleware != nil {
			orders := v1.Group("/orders")
			orders.Use(r.authMiddleware.Authenticate())
			{
				orders.GET("", r.orderController.List)
				orders.POST("", r.orderController.Create)
				orders.GET("/:id", r.orderController.Get)
				orders.PATCH("/:id", r.orderController.Update)
				orders.DELETE("/:id", r.orderController.Delete)
			}
		}

		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
			}
		}

		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("/categories", r.analyticsController.Categories)
				analytics.GET("/top-items", r.analyticsController.TopItems)
				analytics.GET("/customers", r.analyticsController.Customers)
				analytics.GET("/trend", r.analyticsController.Trend)
				analytics.GET("/overview", r.analyticsController.Overview)
				analytics.GET("/report", r.analyticsController.Report)
			}
		}

		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.POST("/reports/email", r.reportController.SendReport)
				reports.GET("/insights/sales", r.reportController.SalesInsight)
			}
		}
	}
}
