package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/somgarh/campaign-backend/internal/config"
	"github.com/somgarh/campaign-backend/internal/database"
	"github.com/somgarh/campaign-backend/internal/logger"
	"github.com/somgarh/campaign-backend/internal/repository"
	"github.com/somgarh/campaign-backend/internal/service"
)

// init-admin provisions the dashboard admin account. It prompts for
// credentials, falling back to ADMIN_EMAIL / ADMIN_PASSWORD when the
// prompts are left empty. Re-running resets the password.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	authService := service.NewAuthService(cfg)
	adminService := service.NewAdminService(adminRepo, authService, cfg, log)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Provision Admin Account ===")

	fmt.Printf("Enter Name (default %q): ", "Admin")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Admin"
	}

	fmt.Printf("Enter Email (default %q): ", cfg.AdminEmail)
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		email = cfg.AdminEmail
	}
	if email == "" {
		fmt.Println("Error: Email is required (prompt or ADMIN_EMAIL)")
		return
	}

	fmt.Print("Enter Password (empty uses ADMIN_PASSWORD): ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if password == "" {
		password = cfg.AdminPassword
	}
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	admin, created, err := adminService.BootstrapWith(ctx, email, password, name)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to provision admin")
	}

	if created {
		fmt.Printf("\nSuccess! Admin '%s' (%s) created with ID: %d\n", admin.Name, admin.Email, admin.ID)
	} else {
		fmt.Printf("\nSuccess! Password reset for admin '%s' (%s)\n", admin.Name, admin.Email)
	}
}
