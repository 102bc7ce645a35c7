package service

import (
	"github.com/inmovia/inmovia/internal/config"
	"github.com/inmovia/inmovia/internal/domain/billing"
	"github.com/inmovia/inmovia/internal/domain/owner"
	"github.com/inmovia/inmovia/internal/domain/property"
	"github.com/inmovia/inmovia/internal/domain/rates"
	"github.com/inmovia/inmovia/internal/domain/task"
	"github.com/inmovia/inmovia/internal/domain/tenant"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	// Repositories
	PropertyRepo property.Repository
	OwnerRepo    owner.Repository
	TenantRepo   tenant.Repository
	RatesRepo    rates.Repository
	BillRepo     billing.Repository
	TaskRepo     task.Repository
}

// NewServiceParams creates a new ServiceParams with all dependencies
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	propertyRepo property.Repository,
	ownerRepo owner.Repository,
	tenantRepo tenant.Repository,
	ratesRepo rates.Repository,
	billRepo billing.Repository,
	taskRepo task.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		DB:           db,
		PropertyRepo: propertyRepo,
		OwnerRepo:    ownerRepo,
		TenantRepo:   tenantRepo,
		RatesRepo:    ratesRepo,
		BillRepo:     billRepo,
		TaskRepo:     taskRepo,
	}
}
