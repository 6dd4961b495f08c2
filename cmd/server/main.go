package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pensionbase/bankcore/internal/config"
	"github.com/pensionbase/bankcore/internal/dispatch"
	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/extractor"
	"github.com/pensionbase/bankcore/internal/gateway"
	"github.com/pensionbase/bankcore/internal/handler"
	"github.com/pensionbase/bankcore/internal/ingest"
	"github.com/pensionbase/bankcore/internal/ledgerclient"
	"github.com/pensionbase/bankcore/internal/notify"
	"github.com/pensionbase/bankcore/internal/payment"
	"github.com/pensionbase/bankcore/internal/processor"
	"github.com/pensionbase/bankcore/internal/reconcile"
	"github.com/pensionbase/bankcore/internal/server"
	"github.com/pensionbase/bankcore/internal/storage"
	"github.com/pensionbase/bankcore/pkg/clock"
	"github.com/pensionbase/bankcore/pkg/logger"
)

// store is the combined persistence surface; both implementations satisfy it.
type store interface {
	domain.MessageLedger
	domain.PositionStore
}

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	location := cfg.Location()
	clk := clock.System()

	var repo store
	var pool *pgxpool.Pool
	if cfg.Database.URL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatal(ctx, "Failed to connect to database",
				"error", err,
			)
		}
		if _, err := pool.Exec(ctx, storage.Schema); err != nil {
			log.Fatal(ctx, "Failed to apply database schema",
				"error", err,
			)
		}
		repo = storage.NewPostgresStore(pool, clk)
		log.Info(ctx, "Postgres store initialized")
	} else {
		repo = storage.NewMemoryStore(clk)
		log.Info(ctx, "In-memory store initialized")
	}

	accounts := cfg.Banking.Accounts

	sender := gateway.NewHTTPSender(map[domain.BankID]string{
		domain.BankA: cfg.Gateway.BankAURL,
		domain.BankB: cfg.Gateway.BankBURL,
	}, log)

	balances := ledgerclient.New(cfg.Ledger.URL)

	notifier := notify.New(log, notify.NewLogChannel(log))
	proc := processor.New(repo, clk, log)
	reconciliator := reconcile.New(accounts, balances, notifier, location, log)

	dispatcher := dispatch.New(log)
	for _, bank := range []domain.BankID{domain.BankA, domain.BankB} {
		dispatcher.Register(bank, dispatch.ProcessBand, proc.Handle)
		dispatcher.Register(bank, dispatch.ReconcileBand, reconciliator.Handle)
	}
	log.Info(ctx, "Dispatcher initialized")

	delegator := ingest.NewDelegator(repo, dispatcher, log,
		extractor.NewBankA(location),
		extractor.NewBankB(location),
	)

	backfill := ingest.NewBackfillGenerator(accounts, sender, clk, location, log)

	paymentService := payment.NewService(payment.NewBuilder(clk), sender, map[domain.BankID]string{
		domain.BankA: cfg.Banking.BankABIC,
		domain.BankB: cfg.Banking.BankBBIC,
	}, log)
	log.Info(ctx, "Services initialized")

	messageHandler := handler.NewMessageHandler(repo, delegator, log)
	backfillHandler := handler.NewBackfillHandler(backfill, log)
	paymentHandler := handler.NewPaymentHandler(paymentService, log)
	healthHandler := handler.NewHealthHandler()
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, messageHandler, backfillHandler, paymentHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if pool != nil {
		pool.Close()
	}

	log.Info(ctx, "Application stopped gracefully")
}
