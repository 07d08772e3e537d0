package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/config"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/cron"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/database/repository/session"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/handlers"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/middleware"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/routes"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/campaign"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/cart"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/checkout"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/menu"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/reservation"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/services/tasks"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

// bookingRules projects the configured restaurant rules.
func bookingRules(cfg config.Config) reservation.Rules {
	return reservation.Rules{
		Location:       config.Location(),
		OpeningHour:    cfg.OpeningHour,
		ClosingHour:    cfg.ClosingHour,
		SlotInterval:   time.Duration(cfg.SlotIntervalMinutes) * time.Minute,
		MinAdvance:     time.Duration(cfg.MinAdvanceHours) * time.Hour,
		MaxAdvanceDays: cfg.MaxAdvanceDays,
		MaxPartySize:   cfg.MaxPartySize,
	}
}

func orderPricing(cfg config.Config) cart.Pricing {
	return cart.Pricing{
		TourismTaxRate:   decimal.NewFromFloat(cfg.TourismTaxRate),
		CateringLevyRate: decimal.NewFromFloat(cfg.CateringLevyRate),
		Currency:         cfg.Currency,
	}
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	utils.InitRedis()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	utils.StartHealthMonitor(ctx, []*redis.Client{utils.GetSessionCacheClient(), utils.GetCampaignCacheClient()}, 30*time.Second)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))

	// repositories.
	sessionRepo := session.NewRedisRepo(utils.GetSessionCacheClient(), "")
	campaignRepo := session.NewRedisRepo(utils.GetCampaignCacheClient(), "")

	// reminders.
	var reminders reservation.ReminderScheduler
	var worker *asynq.Server
	var queue *asynq.Client
	if cfg.RemindersEnabled {
		queue = asynq.NewClient(cron.ReminderRedisOpt())
		reminders = &tasks.AsynqScheduler{Client: queue}
		worker = cron.InitReminderWorker(ctx, logger)
	}

	// services.
	rules := bookingRules(cfg)
	reservationService := &reservation.DefaultReservationService{
		Repo:         sessionRepo,
		Rules:        rules,
		FloorPlan:    reservation.DefaultFloorPlan(),
		Reminders:    reminders,
		ReminderLead: time.Duration(cfg.ReminderLeadHours) * time.Hour,
		SessionTTL:   config.SessionTTL(),
		Logger:       logger.Named("reservation"),
		Now:          time.Now,
	}

	catalog := menu.DefaultCatalog()
	orderService := &checkout.DefaultOrderService{
		Repo:            sessionRepo,
		Catalog:         catalog,
		Contacts:        &checkout.RepoContactStore{Repo: campaignRepo},
		Gateway:         checkout.NewSimulatedGateway(time.Duration(cfg.PaymentDelaySeconds) * time.Second),
		Pricing:         orderPricing(cfg),
		Location:        rules.Location,
		MergeDuplicates: cfg.MergeDuplicateCartItems,
		PaymentTimeout:  time.Duration(cfg.PaymentTimeoutSeconds) * time.Second,
		SessionTTL:      config.SessionTTL(),
		Logger:          logger.Named("checkout"),
		Now:             time.Now,
	}

	campaignService := &campaign.Service{
		Flags:  campaignRepo,
		Offers: campaign.DefaultOffers(),
		Logger: logger.Named("campaign"),
		Now:    time.Now,
	}

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewMenuHandler(catalog),
		handlers.NewReservationHandler(reservationService, rules),
		handlers.NewCartHandler(orderService),
		handlers.NewCheckoutHandler(orderService),
		handlers.NewCampaignHandler(campaignService),
	)
	handlerBundle.GeoLocator = middleware.NewIPAPILocator()
	handlerBundle.MaxRequestsPerMin = cfg.MaxRequestsPerMin

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		queue.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
