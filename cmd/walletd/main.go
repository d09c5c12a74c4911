package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eth-hot-wallet/config"
	"eth-hot-wallet/internal/adapter/chainsim"
	"eth-hot-wallet/internal/adapter/keystore"
	pgStorage "eth-hot-wallet/internal/adapter/storage/postgres"
	redisStorage "eth-hot-wallet/internal/adapter/storage/redis"
	"eth-hot-wallet/internal/core/ports"
	"eth-hot-wallet/internal/service"
	"eth-hot-wallet/pkg/logger"

	"github.com/rs/zerolog"
)

const healthInterval = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("symbol", cfg.Chain.Symbol).
		Bool("testnet", cfg.Wallet.Testnet).
		Msg("Starting hot wallet daemon")

	if cfg.Wallet.Passphrase == "" {
		log.Fatal().Msg("wallet.passphrase must be set")
	}

	params, err := service.ChainParamsFromConfig(cfg.Chain)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid chain configuration")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	addressRepo := pgStorage.NewAddressRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)

	// Initialize Redis stores
	depositMarks := redisStorage.NewDepositMarkStore(rdb)

	// Initialize crypto and chain collaborators
	ks := keystore.New()
	gateway := newChainGateway(cfg, log)

	// Initialize core services
	workers := service.NewWorkerPool(cfg.Chain.WorkerPoolSize)
	registry := service.NewAccountRegistry(
		accountRepo, ks, gateway, params,
		cfg.Wallet.ServiceID, cfg.Wallet.Passphrase,
		logger.Component(log, "account_registry"),
	)
	ledger := service.NewTransactionLedger(txRepo, logger.Component(log, "transaction_ledger"))
	reconciler := service.NewDepositReconciler(
		addressRepo, ledger, gateway, depositMarks, workers, params,
		logger.Component(log, "deposit_reconciler"),
	)
	directory := service.NewAddressDirectory(
		addressRepo, registry, gateway, reconciler, workers, params,
		cfg.Wallet.Passphrase,
		logger.Component(log, "address_directory"),
	)
	pipeline := service.NewWithdrawalPipeline(
		registry, ledger, txRepo, gateway, params,
		cfg.Wallet.Passphrase,
		logger.Component(log, "withdrawal_pipeline"),
	)

	// Restore in-process state from the record store
	if err := registry.RestoreCache(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to restore account cache")
	}
	if failures, err := reconciler.Restore(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to restore deposit subscriptions")
	} else {
		for _, f := range failures {
			log.Warn().
				Str("address", f.Address).
				Err(f.Err).
				Msg("Address left unwatched after restore")
		}
	}

	// Background loops
	runCtx, cancel := context.WithCancel(ctx)
	go pipeline.RunSweeper(runCtx)
	go logRegistrations(runCtx, log, directory)
	go watchHealth(runCtx, log, pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down...")

	cancel()
	reconciler.Close()
	workers.Wait()

	log.Info().Msg("Daemon exited")
}

// newChainGateway selects the chain endpoint. Only the in-process simulator
// ships with the daemon; production deployments link their transport here.
func newChainGateway(cfg *config.Config, log zerolog.Logger) ports.ChainGateway {
	if cfg.Chain.Simulate {
		log.Warn().Msg("Using simulated chain endpoint, funds are not real")
		return chainsim.New(logger.Component(log, "chainsim"))
	}
	log.Fatal().
		Str("service_url", cfg.Chain.ServiceURL).
		Msg("No chain transport linked; set chain.simulate=true for development")
	return nil
}

// logRegistrations surfaces address registration outcomes in the daemon log.
func logRegistrations(ctx context.Context, log zerolog.Logger, directory *service.AddressDirectoryImpl) {
	for {
		select {
		case <-ctx.Done():
			return
		case r := <-directory.Results():
			if r.Err != nil {
				log.Error().Err(r.Err).Str("address_id", r.AddressID.String()).Msg("Address registration failed")
			} else {
				log.Info().Str("address_id", r.AddressID.String()).Str("address", r.Address).Msg("Address registered")
			}
		}
	}
}

// watchHealth logs dependency outages until ctx is cancelled.
func watchHealth(ctx context.Context, log zerolog.Logger, checkers ...ports.HealthChecker) {
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, c := range checkers {
				if err := c.Ping(ctx); err != nil {
					log.Error().Err(err).Str("dependency", c.Name()).Msg("Dependency unhealthy")
				}
			}
		}
	}
}
