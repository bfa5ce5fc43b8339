package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/reverseludo/admin-api/internal/bootstrap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	dbname := envOr("DB_NAME", "reverseludo")

	ctx := context.Background()

	// 1. Connect to default 'postgres' database to create the new database
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", user, password, host, port)
	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	// 2. Check if database exists
	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbname).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", dbname)
		_, err = conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbname))
		if err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", dbname)
	}
	conn.Close(ctx)

	// 3. Run embedded migrations against the new database
	targetConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
	fmt.Println("Running migrations...")
	if err := bootstrap.RunMigrations(ctx, targetConnString); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	fmt.Println("Migrations completed successfully.")

	// 4. Seed the initial admin account if credentials are provided
	adminEmail := os.Getenv("SETUP_ADMIN_EMAIL")
	adminPassword := os.Getenv("SETUP_ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		fmt.Println("SETUP_ADMIN_EMAIL / SETUP_ADMIN_PASSWORD not set, skipping admin seed.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	targetConn, err := pgx.Connect(ctx, targetConnString)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", dbname, err)
	}
	defer targetConn.Close(ctx)

	_, err = targetConn.Exec(ctx,
		`INSERT INTO admin_accounts (email, password_hash)
		 VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		adminEmail, string(hash))
	if err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	fmt.Printf("Admin account %s seeded.\n", adminEmail)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
