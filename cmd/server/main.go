package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "biblioteca-backend/internal/api/http"
	"biblioteca-backend/internal/config"
	"biblioteca-backend/internal/jobs"
	"biblioteca-backend/internal/logger"
	"biblioteca-backend/internal/repository/postgres"
	"biblioteca-backend/internal/scheduler"
	"biblioteca-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Biblioteca Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	bookSvc := service.NewBookService(store.BookRepository, store)
	memberSvc := service.NewMemberService(store.MemberRepository, store.LoanRepository, store)
	loanSvc := service.NewLoanService(store.LoanRepository, store)
	fineSvc := service.NewFineService(store.FineRepository, store)

	// Initialize HTTP router
	router := api.NewRouter(bookSvc, memberSvc, loanSvc, fineSvc)

	// Start the overdue-loan report scheduler alongside the server
	jobRunner := jobs.NewJobRunner(store.LoanRepository, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
