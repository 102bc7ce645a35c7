package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	v1 "github.com/inmovia/inmovia/internal/api/v1"
	"github.com/inmovia/inmovia/internal/rest/middleware"
)

type Handlers struct {
	Property       *v1.PropertyHandler
	Owner          *v1.OwnerHandler
	Tenant         *v1.TenantHandler
	Rates          *v1.RatesHandler
	Billing        *v1.BillingHandler
	Payment        *v1.PaymentHandler
	Ledger         *v1.LedgerHandler
	Reconciliation *v1.ReconciliationHandler
	Task           *v1.TaskHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	properties := router.Group("/properties")
	{
		properties.POST("", handlers.Property.CreateProperty)
		properties.GET("", handlers.Property.ListProperties)
		properties.GET("/:id", handlers.Property.GetProperty)
		properties.PUT("/:id", handlers.Property.UpdateProperty)
	}

	owners := router.Group("/owners")
	{
		owners.POST("", handlers.Owner.CreateOwner)
		owners.GET("", handlers.Owner.ListOwners)
		owners.GET("/:id", handlers.Owner.GetOwner)
		owners.PUT("/:id", handlers.Owner.UpdateOwner)
		owners.GET("/:id/balance", handlers.Ledger.GetOwnerBalance)
	}

	tenants := router.Group("/tenants")
	{
		tenants.POST("", handlers.Tenant.CreateTenant)
		tenants.GET("", handlers.Tenant.ListTenants)
		tenants.GET("/:id", handlers.Tenant.GetTenant)
		tenants.PUT("/:id", handlers.Tenant.UpdateTenant)
		tenants.GET("/:id/balance", handlers.Ledger.GetTenantBalance)
	}

	rates := router.Group("/rates")
	{
		rates.GET("", handlers.Rates.GetRates)
		rates.PUT("", handlers.Rates.SaveRates)
	}

	bills := router.Group("/bills")
	{
		bills.POST("/generate", handlers.Billing.GenerateBills)
		bills.POST("/reconcile", handlers.Reconciliation.Reconcile)
		bills.GET("", handlers.Billing.ListBills)
		bills.GET("/:id", handlers.Billing.GetBill)
		bills.POST("/:id/pay", handlers.Payment.MarkPaid)
	}

	credits := router.Group("/credits")
	{
		credits.POST("", handlers.Payment.RegisterCredit)
	}

	tasks := router.Group("/tasks")
	{
		tasks.POST("", handlers.Task.CreateTask)
		tasks.GET("", handlers.Task.ListTasks)
		tasks.GET("/:id", handlers.Task.GetTask)
		tasks.PUT("/:id", handlers.Task.UpdateTask)
		tasks.DELETE("/:id", handlers.Task.DeleteTask)
	}
}
