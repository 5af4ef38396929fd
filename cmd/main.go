package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_booking"
	createHairOptionHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_hair_option"
	createServiceHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_service"
	deleteHairOptionHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/delete_hair_option"
	deleteServiceHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_booking"
	healthHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_bookings"
	listClientsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_clients"
	listHairOptionsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_hair_options"
	listServicesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_services"
	reviewBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/review_booking"
	updateHairOptionHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_hair_option"
	updateServiceHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_service"
	uploadPaymentProofHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/upload_payment_proof"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	confirmedRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/confirmed"
	proofRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/proof"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/cloudstorage"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/resend"
	bookingsService "github.com/m04kA/SMC-StudioBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/service/notifications"
	notificationModels "github.com/m04kA/SMC-StudioBooking/internal/service/notifications/models"
	cancelBookingUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
	expirePendingHoldsUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/expire_pending_holds"
	getAvailableSlotsUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
	reviewBookingUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/review_booking"
	uploadPaymentProofUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/upload_payment_proof"
	"github.com/m04kA/SMC-StudioBooking/internal/worker"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/metrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/txmanager"
)

// Периодичность и таймауты фоновых задач
const (
	holdSweepTimeout      = 30 * time.Second
	limiterCleanupEvery   = 5 * time.Minute
	limiterCleanupTimeout = 5 * time.Second
)

// recoveryLogger адаптер логгера для gorilla/handlers.RecoveryHandler
type recoveryLogger struct {
	log *logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Panic recovered: %s", fmt.Sprint(v...))
}

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-StudioBooking...")
	log.Info("Configuration loaded from %s", configPath)

	hours, err := cfg.BusinessHours()
	if err != nil {
		log.Fatal("Invalid business hours: %v", err)
	}

	// Инициализируем метрики (если включены)
	// nil коллектор безопасен: все методы metrics.Metrics игнорируют вызовы
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Репозитории и менеджер транзакций
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	confirmedRepository := confirmedRepo.NewRepository(wrappedDB)
	proofRepository := proofRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Интеграции
	var emailSender notifications.EmailSender
	if cfg.Email.Enabled {
		emailSender = resend.NewClient(
			cfg.Email.APIURL,
			cfg.Email.APIKey,
			cfg.Email.From,
			time.Duration(cfg.Email.Timeout)*time.Second,
			log,
		)
		log.Info("Email delivery via Resend (from=%s)", cfg.Email.From)
	} else {
		emailSender = resend.NewDryRunClient(log)
		log.Warn("Email delivery disabled, emails are only logged")
	}

	fileStorage, err := cloudstorage.NewClient(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		cfg.Cloudinary.Folder,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize Cloudinary client: %v", err)
	}
	log.Info("Cloudinary storage initialized (cloud=%s, folder=%s)", cfg.Cloudinary.CloudName, cfg.Cloudinary.Folder)

	dispatcher, err := notifications.NewDispatcher(emailSender, notificationModels.Settings{
		StudioName: cfg.Email.StudioName,
		AppURL:     cfg.Email.AppURL,
		Banking: notificationModels.BankingDetails{
			BankName:      cfg.Email.Banking.BankName,
			AccountName:   cfg.Email.Banking.AccountName,
			AccountNumber: cfg.Email.Banking.AccountNumber,
			BranchCode:    cfg.Email.Banking.BranchCode,
			AccountType:   cfg.Email.Banking.AccountType,
		},
		Location: hours.Location,
		Timeout:  time.Duration(cfg.Email.Timeout) * time.Second,
	}, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to initialize notifications: %v", err)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, proofRepository, catalogRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, txMgr, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		confirmedRepository,
		catalogRepository,
		hours,
		metricsCollector,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		confirmedRepository,
		catalogRepository,
		txMgr,
		dispatcher,
		hours,
		createBookingUC.Settings{
			ReferencePrefix: cfg.Booking.ReferencePrefix,
			MaxAdvanceDays:  cfg.Booking.MaxAdvanceDays,
		},
		metricsCollector,
		log,
	)
	uploadPaymentProofUseCase := uploadPaymentProofUC.NewUseCase(
		bookingRepository,
		proofRepository,
		fileStorage,
		txMgr,
		dispatcher,
		cfg.Booking.MaxProofSizeMB,
		log,
	)
	reviewBookingUseCase := reviewBookingUC.NewUseCase(
		bookingRepository,
		confirmedRepository,
		proofRepository,
		catalogRepository,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, confirmedRepository, txMgr, log)
	expireHoldsUseCase := expirePendingHoldsUC.NewUseCase(bookingRepository, cfg.Booking.PendingHold(), log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	uploadPaymentProof := uploadPaymentProofHandler.NewHandler(uploadPaymentProofUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listHairOptions := listHairOptionsHandler.NewHandler(catalogSvc, log)

	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	listClients := listClientsHandler.NewHandler(bookingSvc, log)
	reviewBooking := reviewBookingHandler.NewHandler(reviewBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	createHairOption := createHairOptionHandler.NewHandler(catalogSvc, log)
	updateHairOption := updateHairOptionHandler.NewHandler(catalogSvc, log)
	deleteHairOption := deleteHairOptionHandler.NewHandler(catalogSvc, log)
	health := healthHandler.NewHandler(db, log)

	adminAuth := middleware.NewAdminAuth(cfg.Admin.JWTSecret, cfg.Admin.RequiredRole, cfg.Admin.AllowedEmails, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Bearer токен администратора)
	// Регистрируются раньше публичных, чтобы префикс /api/v1 их не перехватил
	// ============================================================

	admin := r.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(adminAuth.Middleware)

	// --- Заявки ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/review", reviewBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Клиенты ---
	admin.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	admin.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/hair-options", listHairOptions.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/hair-options", createHairOption.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/hair-options/{hairOptionId}", updateHairOption.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/hair-options/{hairOptionId}", deleteHairOption.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		trustedProxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Invalid rate_limit.trusted_proxies: %v", err)
		}
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, trustedProxies, log)
		api.Use(rateLimiter.Middleware)
		log.Info("Rate limit enabled: %d req/min, burst %d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// Свободные слоты на день
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hair-options", listHairOptions.Handle).Methods(http.MethodGet)

	// Заявки
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/payment-proof", uploadPaymentProof.Handle).Methods(http.MethodPost)

	// Фоновые задачи
	scheduler := worker.NewScheduler(hours.Location, log)

	if expireHoldsUseCase.Enabled() {
		err := scheduler.Every("expire-pending-holds", cfg.Booking.HoldSweepInterval.Duration, holdSweepTimeout,
			worker.JobFunc(func(ctx context.Context) error {
				_, err := expireHoldsUseCase.Execute(ctx)
				return err
			}))
		if err != nil {
			log.Fatal("Failed to schedule hold expiry: %v", err)
		}
	}

	if rateLimiter != nil {
		err := scheduler.Every("rate-limiter-cleanup", limiterCleanupEvery, limiterCleanupTimeout,
			worker.JobFunc(func(ctx context.Context) error {
				if removed := rateLimiter.Cleanup(); removed > 0 {
					log.Debug("Rate limiter: removed %d idle clients", removed)
				}
				return nil
			}))
		if err != nil {
			log.Fatal("Failed to schedule rate limiter cleanup: %v", err)
		}
	}

	scheduler.Start()

	// CORS и восстановление после паники
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.CORSOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(r)
	handler = gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{log: log}),
		gorillaHandlers.PrintRecoveryStack(true),
	)(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.Error("Worker jobs did not finish: %v", err)
	}

	// Дожидаемся писем, которые ещё отправляются
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Error("Pending emails were not delivered: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
