package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/saas-platform/internal/api/http"
	"github.com/spec-kit/saas-platform/internal/api/http/handlers"
	"github.com/spec-kit/saas-platform/internal/auth"
	"github.com/spec-kit/saas-platform/internal/config"
	"github.com/spec-kit/saas-platform/internal/events"
	"github.com/spec-kit/saas-platform/internal/observability"
	"github.com/spec-kit/saas-platform/internal/persistence"
	"github.com/spec-kit/saas-platform/internal/repository"
	"github.com/spec-kit/saas-platform/internal/service"
	"github.com/spec-kit/saas-platform/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	subscriptionRepo := repository.NewSubscriptionRepository(pool)
	ticketRepo := repository.NewSupportTicketRepository(pool)
	faqRepo := repository.NewFAQRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:          userRepo,
		SubscriptionRepo:  subscriptionRepo,
		PasswordResetRepo: resetRepo,
		Dispatcher:        dispatcher,
	})
	userService := service.NewUserService(userRepo, subscriptionRepo, cfg.Auth.BcryptCost)
	customerService := service.NewCustomerService(customerRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)
	supportService := service.NewSupportService(ticketRepo, dispatcher)
	faqService := service.NewFAQService(faqRepo, redis, logger)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), cfg.Auth.ExemptPathPrefixes)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Hello:          handlers.NewHelloHandler(),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Customers:      handlers.NewCustomersHandler(customerService),
		Subscriptions:  handlers.NewSubscriptionsHandler(subscriptionService),
		Support:        handlers.NewSupportHandler(supportService),
		FAQs:           handlers.NewFAQsHandler(faqService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
