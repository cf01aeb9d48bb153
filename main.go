package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/recipe-box/cliparse"
	"github.com/danielhkuo/recipe-box/data"
	"github.com/danielhkuo/recipe-box/db"
	"github.com/danielhkuo/recipe-box/router"
	"github.com/danielhkuo/recipe-box/views"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real env vars win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level, _ := cliparse.ParseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		slog.Error("invalid database type", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	conn, err := db.Open(ctx, dialect, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(conn, dialect); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", dialect)

	renderer, err := views.NewHTML()
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	// Create router
	handler := router.NewRouter(data.NewModels(conn, dialect), cfg, renderer)

	// Create server
	server := &http.Server{
		Handler:           handler,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       time.Minute,
		ErrorLog:          slog.NewLogLogger(slog.Default().Handler(), slog.LevelError),
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "addr", server.Addr, "error", err)
		os.Exit(1)
	}

	// conn is closed by the defer only after in-flight requests have drained
	if err := run(ctx, server, ln); err != nil {
		slog.Error("Server closed", "error", err)
		return
	}
	slog.Info("Server closed")
}

// run serves on ln until ctx is done, then shuts the server down and waits
// for in-flight requests to finish (or shutdownTimeout to pass) before
// returning.
func run(ctx context.Context, server *http.Server, ln net.Listener) error {
	done := make(chan error, 1)
	go func() {
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
		done <- err
	}()

	// Start server
	slog.Info("Listening", "addr", ln.Addr().String())
	if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-done
}
