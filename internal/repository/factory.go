package repository

import (
	"github.com/inmovia/inmovia/internal/domain/billing"
	"github.com/inmovia/inmovia/internal/domain/owner"
	"github.com/inmovia/inmovia/internal/domain/property"
	"github.com/inmovia/inmovia/internal/domain/rates"
	"github.com/inmovia/inmovia/internal/domain/task"
	"github.com/inmovia/inmovia/internal/domain/tenant"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/postgres"
	postgresRepo "github.com/inmovia/inmovia/internal/repository/postgres"
)

func NewPropertyRepository(db *postgres.DB, logger *logger.Logger) property.Repository {
	return postgresRepo.NewPropertyRepository(db, logger)
}

func NewOwnerRepository(db *postgres.DB, logger *logger.Logger) owner.Repository {
	return postgresRepo.NewOwnerRepository(db, logger)
}

func NewTenantRepository(db *postgres.DB, logger *logger.Logger) tenant.Repository {
	return postgresRepo.NewTenantRepository(db, logger)
}

func NewRatesRepository(db *postgres.DB, logger *logger.Logger) rates.Repository {
	return postgresRepo.NewRatesRepository(db, logger)
}

func NewBillingRepository(db *postgres.DB, logger *logger.Logger) billing.Repository {
	return postgresRepo.NewBillingRepository(db, logger)
}

func NewTaskRepository(db *postgres.DB, logger *logger.Logger) task.Repository {
	return postgresRepo.NewTaskRepository(db, logger)
}
