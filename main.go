package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/employee-polls/cliparse"
	"github.com/danielhkuo/employee-polls/db"
	"github.com/danielhkuo/employee-polls/engine"
	"github.com/danielhkuo/employee-polls/middleware"
	"github.com/danielhkuo/employee-polls/router"
	"github.com/danielhkuo/employee-polls/store"
)

func main() {
	var err error

	// Load .env if present, then parse configuration
	_ = godotenv.Load()
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	st := store.New()
	var persist engine.Persister

	// Optional write-through database; without one all state stays in memory
	if cfg.DatabaseURL != "" {
		driver := "postgres"
		if cfg.DatabaseType == "sqlite" {
			driver = "sqlite"
		}

		dbConn, err := sql.Open(driver, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Verify connection
		if err := dbConn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready")

		// Reload persisted state into the in-memory store
		sqlStore := db.NewStore(dbConn, cfg.DatabaseType)
		users, questions, err := sqlStore.Load()
		if err != nil {
			slog.Error("failed to load persisted state", "error", err)
			os.Exit(1)
		}
		for _, u := range users {
			st.PutUser(u)
		}
		for _, q := range questions {
			st.PutQuestion(q)
		}
		slog.Info("Persisted state loaded", "users", len(users), "questions", len(questions))

		persist = sqlStore
	}

	// Create engine and router
	e := engine.New(st, persist)
	mux := router.NewRouter(e)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
