package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	libredis "github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/auth"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/config"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/events"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/handler"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/mailer"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/metrics"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/middleware"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/notification"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/pricing"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/repository"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/router"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/scheduler"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	events     *events.Publisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"walla-walla-travel",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	rates, err := pricing.Load(a.cfg.Pricing.RatesPath)
	if err != nil {
		return fmt.Errorf("load rate table: %w", err)
	}

	metrics.Register()

	tokens := auth.NewTokenManager(a.cfg.Auth.Secret, a.cfg.Auth.StaffTokenTTL)

	registry, err := mailer.NewRegistry()
	if err != nil {
		return fmt.Errorf("init email templates: %w", err)
	}
	sender := mailer.NewSender(a.cfg.Mail.BaseURL, a.cfg.Mail.APIKey, a.cfg.Mail.From, a.log)
	customer := notification.NewEmailNotifier(
		sender,
		registry,
		tokens,
		rates,
		a.cfg.Mail.PublicBaseURL,
		a.cfg.Mail.LinkTTL,
		a.log,
	)

	staff, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.StaffChatID, a.log)
	if err != nil {
		return fmt.Errorf("init staff notifier: %w", err)
	}

	publisher, err := events.NewPublisher(a.cfg.AMQP.URL, a.log)
	if err != nil {
		return fmt.Errorf("init event publisher: %w", err)
	}
	a.events = publisher

	bookingRepo := repository.NewBookingRepo(a.db)
	proposalRepo := repository.NewProposalRepo(a.db)
	invoiceRepo := repository.NewInvoiceRepo(a.db)
	lunchRepo := repository.NewLunchOrderRepo(a.db)
	offerRepo := repository.NewOfferRepo(a.db)

	bookingService := service.NewBookingService(bookingRepo, rates, customer, staff, publisher, a.log)
	proposalService := service.NewProposalService(proposalRepo, bookingRepo, rates, customer, staff, publisher, a.log)
	invoiceService := service.NewInvoiceService(invoiceRepo, bookingRepo, customer, staff, publisher, a.log)
	lunchService := service.NewLunchOrderService(lunchRepo, bookingRepo, rates, customer, staff, publisher, a.log)
	offerService := service.NewOfferService(
		offerRepo,
		bookingRepo,
		rates,
		customer,
		staff,
		publisher,
		a.cfg.Offers.DefaultTTL,
		a.log,
	)

	a.scheduler = scheduler.New(
		offerService,
		bookingService,
		a.cfg.Scheduler.Interval,
		a.cfg.Scheduler.ReminderWindow,
		a.log,
	)

	store, err := a.limiterStore()
	if err != nil {
		return fmt.Errorf("init rate limit store: %w", err)
	}

	h := handler.NewHandler(
		bookingService,
		proposalService,
		invoiceService,
		lunchService,
		offerService,
		tokens,
		rates,
		a.cfg.Auth.StaffPasswordHash,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.StaffAuth(tokens),
		middleware.RateLimit(a.cfg.RateLimit.Requests, a.cfg.RateLimit.Period, store),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// limiterStore подключает Redis, чтобы лимит формы был общим для реплик;
// без адреса middleware работает на памяти процесса.
func (a *App) limiterStore() (limiter.Store, error) {
	if a.cfg.Redis.Addr == "" {
		return nil, nil
	}

	client := libredis.NewClient(&libredis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: "wwt:ratelimit",
	})
	if err != nil {
		return nil, fmt.Errorf("redis limiter store: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "rate limit store connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return store, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.events.Close()

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
