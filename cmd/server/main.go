package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inmovia/inmovia/internal/api"
	v1 "github.com/inmovia/inmovia/internal/api/v1"
	"github.com/inmovia/inmovia/internal/config"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/postgres"
	"github.com/inmovia/inmovia/internal/repository"
	"github.com/inmovia/inmovia/internal/service"
	"github.com/inmovia/inmovia/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,
			func(db *postgres.DB) postgres.IClient { return db },

			// Repositories
			repository.NewPropertyRepository,
			repository.NewOwnerRepository,
			repository.NewTenantRepository,
			repository.NewRatesRepository,
			repository.NewBillingRepository,
			repository.NewTaskRepository,
		),
	)

	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewPropertyService,
			service.NewOwnerService,
			service.NewTenantService,
			service.NewRatesService,
			service.NewBillingService,
			service.NewLedgerService,
			service.NewPaymentService,
			service.NewReconciliationService,
			service.NewTaskService,
		),
	)

	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	propertyService service.PropertyService,
	ownerService service.OwnerService,
	tenantService service.TenantService,
	ratesService service.RatesService,
	billingService service.BillingService,
	paymentService service.PaymentService,
	ledgerService service.LedgerService,
	reconciliationService service.ReconciliationService,
	taskService service.TaskService,
) api.Handlers {
	return api.Handlers{
		Property:       v1.NewPropertyHandler(propertyService, logger),
		Owner:          v1.NewOwnerHandler(ownerService, logger),
		Tenant:         v1.NewTenantHandler(tenantService, logger),
		Rates:          v1.NewRatesHandler(ratesService, logger),
		Billing:        v1.NewBillingHandler(billingService, logger),
		Payment:        v1.NewPaymentHandler(paymentService, logger),
		Ledger:         v1.NewLedgerHandler(ledgerService, logger),
		Reconciliation: v1.NewReconciliationHandler(reconciliationService, logger),
		Task:           v1.NewTaskHandler(taskService, logger),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			db.Close()
			return nil
		},
	})
}
