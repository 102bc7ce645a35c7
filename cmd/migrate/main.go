package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/inmovia/inmovia/internal/config"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/postgres"
	_ "github.com/lib/pq"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS owners (
		id VARCHAR(50) PRIMARY KEY,
		dni VARCHAR(50) NOT NULL,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		phone VARCHAR(50),
		payment_alias VARCHAR(255),
		notes TEXT,
		status VARCHAR(50) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_owners_dni ON owners (dni)`,
	`CREATE TABLE IF NOT EXISTS tenants (
		id VARCHAR(50) PRIMARY KEY,
		dni VARCHAR(50) NOT NULL,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		phone VARCHAR(50),
		contract_start TIMESTAMPTZ,
		contract_end TIMESTAMPTZ,
		rent_amount NUMERIC(20,8),
		status VARCHAR(50) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tenants_dni ON tenants (dni)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id VARCHAR(50) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		address VARCHAR(255),
		neighborhood VARCHAR(255),
		city VARCHAR(255),
		owner_id VARCHAR(50) NOT NULL,
		tenant_id VARCHAR(50),
		price NUMERIC(20,8),
		electricity_contract VARCHAR(100),
		gas_contract VARCHAR(100),
		water_contract VARCHAR(100),
		tax_contract VARCHAR(100),
		status VARCHAR(50) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_owner_id ON properties (owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_tenant_id ON properties (tenant_id)`,
	`CREATE TABLE IF NOT EXISTS utility_rates (
		id VARCHAR(50) PRIMARY KEY,
		electricity_price_per_unit NUMERIC(20,8) NOT NULL,
		gas_price_per_unit NUMERIC(20,8) NOT NULL,
		water_price_per_unit NUMERIC(20,8) NOT NULL,
		municipality_fixed_amount NUMERIC(20,8) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS billing_line_items (
		id VARCHAR(100) PRIMARY KEY,
		property_id VARCHAR(50) NOT NULL,
		kind VARCHAR(50) NOT NULL,
		amount NUMERIC(20,8) NOT NULL,
		usage_quantity NUMERIC(20,8),
		reference_date TIMESTAMPTZ NOT NULL,
		contract_reference VARCHAR(255),
		bill_status VARCHAR(50) NOT NULL,
		description TEXT,
		receipt_id VARCHAR(255),
		payment_method VARCHAR(100),
		payment_date TIMESTAMPTZ,
		status VARCHAR(50) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_billing_line_items_property_id ON billing_line_items (property_id)`,
	`CREATE INDEX IF NOT EXISTS idx_billing_line_items_bill_status ON billing_line_items (bill_status)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id VARCHAR(100) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		due_date TIMESTAMPTZ NOT NULL,
		priority VARCHAR(50) NOT NULL,
		task_status VARCHAR(50) NOT NULL,
		assigned_to VARCHAR(100) NOT NULL,
		created_by VARCHAR(100) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assigned_to ON tasks (assigned_to)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_task_status ON tasks (task_status)`,
}

func main() {
	// Parse command line flags
	dryRun := flag.Bool("dry-run", false, "Print migration SQL without executing it")
	flag.Parse()

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// Check if we're in dry-run mode
	if *dryRun {
		logger.Info("Dry run mode - printing migration SQL without executing")
		for _, stmt := range schema {
			fmt.Fprintln(os.Stdout, stmt+";")
		}
		return
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)

	db, err := postgres.NewDB(cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Run the actual migration
	logger.Info("Running database migrations...")
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Fatalw("Failed to apply migration statement", "error", err)
		}
	}
	logger.Info("Migration completed successfully")

	fmt.Println("Migration process completed")
}
