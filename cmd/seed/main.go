// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"barberdesk/internal/core/id"
	"barberdesk/internal/infrastructure/storage/postgres"
	"barberdesk/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@barberdesk.local"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.QueryRow(ctx,
		"SELECT id FROM users WHERE lower(email) = lower($1)", adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, deletion_mark, version, created_at, updated_at, created_by, updated_by, name, email, password_hash, role, is_active)
		VALUES ($1, false, 1, $2, $2, '', '', $3, $4, $5, 'admin', true)`,
		id.New(), now, "Administrator", adminEmail, string(hash),
	)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail)
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	now := time.Now().UTC()

	barberID := id.New()
	if _, err := pool.Exec(ctx, `
		INSERT INTO cat_barbers (id, deletion_mark, version, code, name, is_active, phone, specialties)
		VALUES ($1, false, 1, 'BB-DEMO-1', 'Marco Silva', true, '+55 11 99999-0001', 'cuts, beard work')
		ON CONFLICT (code) DO NOTHING`, barberID,
	); err != nil {
		return fmt.Errorf("seed barber: %w", err)
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO cat_services (id, deletion_mark, version, code, name, is_active, duration_minutes, price)
		VALUES
			($1, false, 1, 'SV-DEMO-1', 'Classic Cut', true, 30, 45.00),
			($2, false, 1, 'SV-DEMO-2', 'Beard Trim', true, 20, 25.00)
		ON CONFLICT (code) DO NOTHING`, id.New(), id.New(),
	); err != nil {
		return fmt.Errorf("seed services: %w", err)
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO cat_products (id, deletion_mark, version, code, name, is_active, price, stock, min_stock, category)
		VALUES ($1, false, 1, 'PR-DEMO-1', 'Matte Pomade', true, 38.00, 20, 5, 'styling')
		ON CONFLICT (code) DO NOTHING`, id.New(),
	); err != nil {
		return fmt.Errorf("seed product: %w", err)
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO cat_clients (id, deletion_mark, version, code, name, is_active, phone)
		VALUES ($1, false, 1, 'CL-DEMO-1', 'João Pereira', true, '+55 11 98888-0001')
		ON CONFLICT (code) DO NOTHING`, id.New(),
	); err != nil {
		return fmt.Errorf("seed client: %w", err)
	}

	if _, err := pool.Exec(ctx, `
		INSERT INTO pay_policies (id, deletion_mark, version, created_at, updated_at, created_by, updated_by,
			barber_id, kind, service_pct, product_pct, rent_amount, monthly_amount, goal_amount, bonus_pct,
			effective_from, effective_to, is_active)
		SELECT $1, false, 1, $2, $2, '', '', b.id, 'percentage', 50, 10, 0, 0, 10000, 5, $3, NULL, true
		FROM cat_barbers b
		WHERE b.code = 'BB-DEMO-1'
		  AND NOT EXISTS (SELECT 1 FROM pay_policies p WHERE p.barber_id = b.id AND p.is_active)`,
		id.New(), now, now,
	); err != nil {
		return fmt.Errorf("seed policy: %w", err)
	}

	log.Info("demo data seeded")
	return nil
}
