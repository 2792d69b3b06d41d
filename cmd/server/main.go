package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fariskabeerc-lab/billing-voucher/internal/claim"
	"github.com/fariskabeerc-lab/billing-voucher/internal/shared"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "err", err)
	}

	cfg := shared.NewConfig()

	log, closeLog, err := shared.NewLogger(*cfg)
	if err != nil {
		panic(err)
	}
	defer closeLog()

	ledger, cleanup, err := newLedger(cfg, log)
	if err != nil {
		log.Error("failed to set up voucher ledger", "err", err)
		return
	}
	defer cleanup()

	engine := claim.NewEngine(claim.ParsePolicy(cfg.DuplicatePolicy), cfg.VoucherUnit)
	service := claim.NewService(ledger, engine, cfg.FollowURL, log)
	handler := claim.NewHandler(service, log)
	router := NewRouter(handler)

	srv := &http.Server{
		Addr:    cfg.AppPort,
		Handler: router,
	}

	go func() {
		log.Info("http server started", "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

// newLedger picks the ledger backend. Demo mode is an explicit,
// loudly-logged choice; a database that cannot be reached is a hard
// startup failure, never a silent fallback to memory.
func newLedger(cfg *shared.Config, log *slog.Logger) (claim.Ledger, func(), error) {
	if cfg.DemoMode {
		log.Warn("running in demo mode: claims are held in memory and lost on restart")
		return claim.NewMemoryLedger(), func() {}, nil
	}

	db, err := shared.NewDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}

	repo := claim.NewRepository(db, log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return repo, db.Close, nil
}

func waitForShutdown(srv *http.Server, log *slog.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", "err", err)
	} else {
		log.Info("server stopped gracefully")
	}
}
