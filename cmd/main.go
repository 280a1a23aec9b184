package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	accountapp "github.com/estoquehub/sync-engine/application/account"
	ledgerapp "github.com/estoquehub/sync-engine/application/ledger"
	replenishapp "github.com/estoquehub/sync-engine/application/replenish"
	syncapp "github.com/estoquehub/sync-engine/application/sync"
	velocityapp "github.com/estoquehub/sync-engine/application/velocity"
	"github.com/estoquehub/sync-engine/cmd/config"
	redisclient "github.com/estoquehub/sync-engine/cmd/redis"
	_ "github.com/estoquehub/sync-engine/docs"
	"github.com/estoquehub/sync-engine/model"
	accountRepo "github.com/estoquehub/sync-engine/repository/account"
	listingRepo "github.com/estoquehub/sync-engine/repository/listing"
	orderRepo "github.com/estoquehub/sync-engine/repository/order"
	productRepo "github.com/estoquehub/sync-engine/repository/product"
	stockRepo "github.com/estoquehub/sync-engine/repository/stock"
	transferRepo "github.com/estoquehub/sync-engine/repository/transfer"
	txRepo "github.com/estoquehub/sync-engine/repository/tx"
	verifierRepo "github.com/estoquehub/sync-engine/repository/verifier"
	"github.com/estoquehub/sync-engine/thirdparty/marketplace"
	"github.com/estoquehub/sync-engine/thirdparty/rabbitmq"
	"github.com/estoquehub/sync-engine/transport"
	"github.com/estoquehub/sync-engine/utils/logger"
)

// @title Stock Sync Engine API
// @version 1.0
// @description Marketplace stock reconciliation and replenishment API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Redis backs the PKCE verifier cache; without it the in-memory store
	// keeps single-instance deployments working
	verifiers := verifierRepo.NewMemoryStore()
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, using in-memory verifier store", zap.Error(err))
	} else {
		verifiers = verifierRepo.NewRedisStore()
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	TransferRepo := transferRepo.NewTransferRepository(db)
	AccountRepo := accountRepo.NewAccountRepository(db)
	ListingRepo := listingRepo.NewListingRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)

	mp := marketplace.NewHTTPClient(cfg)

	// RabbitMQ buffers webhooks; without it deliveries go straight to the
	// in-process pool
	var publisher syncapp.WebhookPublisher
	var amqpPublisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Host != "" {
		amqpPublisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Warn("rabbitmq unavailable, webhooks dispatch in-process", zap.Error(err))
		} else {
			publisher = amqpPublisher
			defer amqpPublisher.Close()
		}
	}

	// Initialize application layers
	LedgerApp := ledgerapp.NewLedgerApp(TxRepo, StockRepo, TransferRepo)
	AccountApp := accountapp.NewAccountApp(cfg, AccountRepo, verifiers, mp)
	VelocityApp := velocityapp.NewVelocityApp(OrderRepo)
	ReplenishApp := replenishapp.NewReplenishApp(cfg, ProductRepo, StockRepo, ListingRepo, VelocityApp)
	SyncApp := syncapp.NewSyncApp(cfg, AccountApp, LedgerApp, AccountRepo, ListingRepo, ProductRepo, OrderRepo, StockRepo, mp, publisher)

	pool := syncapp.NewPool(cfg.Sync.Workers, cfg.Sync.QueueBuffer, func(ctx context.Context, payload *model.WebhookPayload) {
		_ = SyncApp.ProcessWebhook(ctx, payload)
	})
	pool.Start(ctx)
	defer pool.Stop()
	SyncApp.AttachPool(pool)

	if publisher != nil {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, pool.Dispatch)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}
	}

	scheduler := syncapp.NewScheduler(cfg, SyncApp, AccountRepo)
	go scheduler.Run(ctx)

	httpTransport := transport.NewTransport(cfg, LedgerApp, AccountApp, SyncApp, ReplenishApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Fatal("failed server", zap.Error(err))
	}
}
