package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"insurance-gateway/config"
	httpHandler "insurance-gateway/internal/adapter/http/handler"
	"insurance-gateway/internal/adapter/storage/memory"
	pgStorage "insurance-gateway/internal/adapter/storage/postgres"
	redisStorage "insurance-gateway/internal/adapter/storage/redis"
	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/internal/metrics"
	"insurance-gateway/internal/service"
	"insurance-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// newInstanceCache returns nil for the memory driver: its registry does not
// survive a restart, so cached owner lookups would outlive the instances.
func newInstanceCache(cfg *config.Config, rdb *goredis.Client, log zerolog.Logger) ports.InstanceCache {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Info().Msg("instance cache disabled for memory storage")
		return nil
	}
	return redisStorage.NewInstanceCache(rdb, redisStorage.DefaultInstanceTTL)
}

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("IGW_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Storage.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting Insurance Gateway")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Insurance Gateway stopped")
	}
	log.Info().Msg("Server exited")
}

// repositories is the storage backend selected by storage.driver.
type repositories struct {
	transactor ports.DBTransactor
	instances  ports.InstanceRepository
	policies   ports.PolicyRepository
	users      ports.WalletUserRepository
	claims     ports.ClaimRepository
	ledger     ports.LedgerRepository
	audit      ports.AuditRepository
	health     ports.HealthChecker
	close      func()
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repositories, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn().Msg("Using in-memory storage, state is lost on restart")
		store := memory.NewStore()
		return &repositories{
			transactor: store,
			instances:  memory.NewInstanceRepository(store),
			policies:   memory.NewPolicyRepository(store),
			users:      memory.NewWalletUserRepository(store),
			claims:     memory.NewClaimRepository(store),
			ledger:     memory.NewLedgerRepository(store),
			audit:      memory.NewAuditRepository(store),
			health:     store,
			close:      func() {},
		}, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	if cfg.Database.Migrate {
		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrating schema: %w", err)
		}
	}
	return &repositories{
		transactor: pgStorage.NewTransactor(pool),
		instances:  pgStorage.NewInstanceRepo(pool),
		policies:   pgStorage.NewPolicyRepo(pool),
		users:      pgStorage.NewWalletUserRepo(pool),
		claims:     pgStorage.NewClaimRepo(pool),
		ledger:     pgStorage.NewLedgerRepo(pool),
		audit:      pgStorage.NewAuditRepo(pool),
		health:     pgStorage.NewHealthCheck(pool),
		close:      pool.Close,
	}, nil
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	verifier, _ := cfg.Registry.VerifierAddress()
	insuranceAddr, _ := cfg.Registry.InsuranceRegistryAddress()
	if domain.IsZeroAddress(insuranceAddr) {
		insuranceAddr = service.DefaultRegistryAddress(verifier, domain.InstanceKindInsurance)
	}
	walletAddr, _ := cfg.Registry.WalletRegistryAddress()
	if domain.IsZeroAddress(walletAddr) {
		walletAddr = service.DefaultRegistryAddress(verifier, domain.InstanceKindWallet)
	}

	repos, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer repos.close()

	healthCheckers := []ports.HealthChecker{repos.health}
	routerDeps := httpHandler.RouterDeps{Logger: log}
	var instanceCache ports.InstanceCache

	// Redis is optional: it backs the instance cache, replay guard and rate limits.
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return fmt.Errorf("connecting to Redis: %w", err)
		}
		defer rdb.Close()

		instanceCache = newInstanceCache(cfg, rdb, log)
		routerDeps.NonceStore = redisStorage.NewNonceStore(rdb)
		routerDeps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled: replay guard and rate limiting are off")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		routerDeps.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
		routerDeps.MetricsPath = cfg.Metrics.Path
	}

	clock := service.NewSystemClock()
	engineDeps := service.EngineDeps{
		Transactor: repos.transactor,
		LedgerRepo: repos.ledger,
		Clock:      clock,
		Metrics:    m,
		Log:        log,
	}
	registryDeps := service.RegistryDeps{
		InstanceRepo: repos.instances,
		Cache:        instanceCache,
		Transactor:   repos.transactor,
		Clock:        clock,
		Metrics:      m,
		Log:          log,
	}

	policies, err := service.NewPolicyRegistry(insuranceAddr, verifier, repos.policies, registryDeps, engineDeps)
	if err != nil {
		return err
	}
	wallets, err := service.NewWalletRegistry(walletAddr, verifier, repos.users, repos.claims, registryDeps, engineDeps)
	if err != nil {
		return err
	}
	log.Info().
		Str("verifier", verifier.Hex()).
		Str("insurance_registry", insuranceAddr.Hex()).
		Str("wallet_registry", walletAddr.Hex()).
		Msg("Registries ready")

	routerDeps.PolicyRegistry = policies
	routerDeps.WalletRegistry = wallets
	routerDeps.ReportingSvc = service.NewReportingService(repos.ledger)
	routerDeps.TokenSvc = service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	routerDeps.AuditSvc = service.NewAuditService(repos.audit, log)
	routerDeps.HealthCheckers = healthCheckers

	gin.SetMode(cfg.Server.Mode)
	router := httpHandler.SetupRouter(routerDeps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		timeout := cfg.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		return nil
	})
	return g.Wait()
}
