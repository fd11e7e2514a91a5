package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	adminLoginHandler "github.com/m04kA/barber-frontdesk/internal/api/handlers/admin_login"
	blockBatchesHandler "github.com/m04kA/barber-frontdesk/internal/api/handlers/block_batches"
	blockSlotsHandler "github.com/m04kA/barber-frontdesk/internal/api/handlers/block_slots"
	bookingFlowHandler "github.com/m04kA/barber-frontdesk/internal/api/handlers/booking_flow"
	daySchedulesHandler "github.com/m04kA/barber-frontdesk/internal/api/handlers/day_schedule"
	employeesHandler "github.com/m04kA/barber-frontdesk/internal/api/handlers/employees"
	feedbackHandler "github.com/m04kA/barber-frontdesk/internal/api/handlers/feedback"
	getAvailableSlotsHandler "github.com/m04kA/barber-frontdesk/internal/api/handlers/get_available_slots"
	kioskBoardHandler "github.com/m04kA/barber-frontdesk/internal/api/handlers/kiosk_board"
	reservationsHandler "github.com/m04kA/barber-frontdesk/internal/api/handlers/reservations"
	smsLogsHandler "github.com/m04kA/barber-frontdesk/internal/api/handlers/sms_logs"
	"github.com/m04kA/barber-frontdesk/internal/api/middleware"
	"github.com/m04kA/barber-frontdesk/internal/config"
	blockAuditRepo "github.com/m04kA/barber-frontdesk/internal/infra/storage/blockaudit"
	flowRepo "github.com/m04kA/barber-frontdesk/internal/infra/storage/flow"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/internal/kiosk"
	authService "github.com/m04kA/barber-frontdesk/internal/service/auth"
	blockHistoryService "github.com/m04kA/barber-frontdesk/internal/service/blockhistory"
	employeesService "github.com/m04kA/barber-frontdesk/internal/service/employees"
	feedbackService "github.com/m04kA/barber-frontdesk/internal/service/feedback"
	reservationsService "github.com/m04kA/barber-frontdesk/internal/service/reservations"
	smsLogsService "github.com/m04kA/barber-frontdesk/internal/service/smslogs"
	bookingFlowUC "github.com/m04kA/barber-frontdesk/internal/usecase/booking_flow"
	bulkBlockUC "github.com/m04kA/barber-frontdesk/internal/usecase/bulk_block"
	dayScheduleUC "github.com/m04kA/barber-frontdesk/internal/usecase/day_schedule"
	getAvailableSlotsUC "github.com/m04kA/barber-frontdesk/internal/usecase/get_available_slots"
	kioskBoardUC "github.com/m04kA/barber-frontdesk/internal/usecase/kiosk_board"
	"github.com/m04kA/barber-frontdesk/pkg/dbmetrics"
	"github.com/m04kA/barber-frontdesk/pkg/logger"
	"github.com/m04kA/barber-frontdesk/pkg/metrics"
	"github.com/m04kA/barber-frontdesk/pkg/ratelimit"
	"github.com/m04kA/barber-frontdesk/pkg/txmanager"
)

// kioskSweepInterval страховочная проверка истёкших подсветок, основной сигнал даёт таймер NextExpiry
const kioskSweepInterval = 30 * time.Second

// flowStore хранилище сессий записи с проверкой соединения для /healthz
type flowStore interface {
	bookingFlowUC.FlowRepository
	Ping(ctx context.Context) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting barber-frontdesk...")
	loc := cfg.Shop.Location()
	log.Info("Shop timezone: %s", loc)

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: все методы-наблюдатели проверяют получатель
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище сессий записи: Redis, если задан адрес, иначе память процесса
	var flows flowStore
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		flows = flowRepo.NewRedisRepository(rdb, cfg.Redis.KeyPrefix, cfg.Booking.FlowTTL())
		log.Info("Booking flows stored in redis (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Booking.FlowTTL())
	} else {
		flows = flowRepo.NewMemoryRepository(cfg.Booking.FlowTTL())
		log.Warn("Redis address is empty, booking flows are kept in memory")
	}

	// Журнал блокировок в PostgreSQL (необязателен)
	var (
		wrappedDB    *dbmetrics.DB
		auditRepo    *blockAuditRepo.Repository
		blockAudit   bulkBlockUC.AuditRepository
		txMgr        bulkBlockUC.TxManager
		blockHistory *blockBatchesHandler.Handler
	)
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		auditRepo = blockAuditRepo.NewRepository(wrappedDB)
		blockAudit = auditRepo
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		log.Warn("Database disabled, bulk block audit is not written")
	}

	// Клиент API бронирований
	apiClient := reservationapi.NewClient(
		cfg.ReservationAPI.URL,
		time.Duration(cfg.ReservationAPI.Timeout)*time.Second,
		loc,
		log,
	).WithObserver(metricsCollector)
	log.Info("Reservation API client initialized (url=%s, timeout=%ds)",
		cfg.ReservationAPI.URL, cfg.ReservationAPI.Timeout)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(apiClient, loc, log)
	employeesSvc := employeesService.NewService(apiClient, log)
	feedbackSvc := feedbackService.NewService(apiClient, log)
	smsLogsSvc := smsLogsService.NewService(apiClient, log)
	authSvc := authService.NewService(apiClient, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		apiClient,
		cfg.Shop.BookingHours.BusinessHours(),
		loc,
		log,
	)

	bookingFlowUseCase := bookingFlowUC.NewUseCase(
		flows,
		apiClient,
		ratelimit.NewKeyed(cfg.Booking.CodesPerContact, cfg.Booking.CodeWindow()),
		bookingFlowUC.Config{
			Hours:   cfg.Shop.BookingHours.BusinessHours(),
			Loc:     loc,
			Service: cfg.Booking.Service,
		},
		log,
	).WithObserver(metricsCollector)

	dayScheduleUseCase := dayScheduleUC.NewUseCase(
		apiClient,
		cfg.Shop.GridHours.BusinessHours(),
		loc,
		log,
	)

	bulkBlockUseCase := bulkBlockUC.NewUseCase(
		apiClient,
		blockAudit,
		txMgr,
		cfg.Shop.BlockHours.BusinessHours(),
		loc,
		cfg.Block.MaxParallel,
		log,
	).WithObserver(metricsCollector)

	kioskBoardUseCase := kioskBoardUC.NewUseCase(
		apiClient,
		kioskBoardUC.NewTracker(cfg.Kiosk.HighlightTTL(), cfg.Kiosk.BannerTemplate, loc),
		cfg.Shop.KioskHours.BusinessHours(),
		loc,
		log,
	)

	// Табло: опрос стоит на паузе, пока не подключится первый экран
	kioskRunner := kiosk.NewRunner(kioskBoardUseCase, cfg.Kiosk.PollInterval(), kioskSweepInterval, metricsCollector, log)
	runnerCtx, stopRunner := context.WithCancel(context.Background())
	defer stopRunner()
	kioskRunner.Start(runnerCtx)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, loc, log)
	bookingFlow := bookingFlowHandler.NewHandler(bookingFlowUseCase, loc, log)
	employees := employeesHandler.NewHandler(employeesSvc, log)
	feedback := feedbackHandler.NewHandler(feedbackSvc, log)
	kioskBoard := kioskBoardHandler.NewHandler(kioskBoardUseCase, kioskRunner, cfg.Kiosk.AllowedOrigins, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	daySchedule := daySchedulesHandler.NewHandler(dayScheduleUseCase, loc, log)
	blockSlots := blockSlotsHandler.NewHandler(bulkBlockUseCase, loc, log)
	reservations := reservationsHandler.NewHandler(reservationsSvc, loc, log)
	smsLogs := smsLogsHandler.NewHandler(smsLogsSvc, log)
	if auditRepo != nil {
		blockHistory = blockBatchesHandler.NewHandler(blockHistoryService.NewService(auditRepo, log), loc, log)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", healthz(flows, wrappedDB)).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты дня
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Онлайн-запись
	api.HandleFunc("/booking-flows", bookingFlow.Start).Methods(http.MethodPost)
	api.HandleFunc("/booking-flows/{id}", bookingFlow.Get).Methods(http.MethodGet)
	api.HandleFunc("/booking-flows/{id}/date", bookingFlow.SelectDate).Methods(http.MethodPost)
	api.HandleFunc("/booking-flows/{id}/employee", bookingFlow.SelectEmployee).Methods(http.MethodPost)
	api.HandleFunc("/booking-flows/{id}/slot", bookingFlow.SelectSlot).Methods(http.MethodPost)
	api.HandleFunc("/booking-flows/{id}/send-code", bookingFlow.SendCode).Methods(http.MethodPost)
	api.HandleFunc("/booking-flows/{id}/verify", bookingFlow.Verify).Methods(http.MethodPost)
	api.HandleFunc("/booking-flows/{id}/retry", bookingFlow.Retry).Methods(http.MethodPost)

	// Мастера и отзывы
	api.HandleFunc("/employees", employees.List).Methods(http.MethodGet)
	api.HandleFunc("/feedback", feedback.Submit).Methods(http.MethodPost)
	api.HandleFunc("/feedback", feedback.ListPublic).Methods(http.MethodGet)

	// Табло
	api.HandleFunc("/kiosk/board", kioskBoard.Board).Methods(http.MethodGet)
	api.HandleFunc("/kiosk/ws", kioskBoard.Subscribe).Methods(http.MethodGet)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	// --- Расписание ---
	admin.HandleFunc("/schedule", daySchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/block-slots", blockSlots.Handle).Methods(http.MethodPost)
	if blockHistory != nil {
		admin.HandleFunc("/block-batches", blockHistory.Handle).Methods(http.MethodGet)
	}

	// --- Бронирования ---
	admin.HandleFunc("/reservations", reservations.List).Methods(http.MethodGet)
	admin.HandleFunc("/reservations", reservations.Create).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id}", reservations.Update).Methods(http.MethodPut)
	admin.HandleFunc("/reservations/{id}", reservations.Delete).Methods(http.MethodDelete)

	// --- Мастера ---
	admin.HandleFunc("/employees", employees.Create).Methods(http.MethodPost)
	admin.HandleFunc("/employees/{id}", employees.Update).Methods(http.MethodPut)
	admin.HandleFunc("/employees/{id}", employees.Delete).Methods(http.MethodDelete)

	// --- Отзывы ---
	admin.HandleFunc("/feedback", feedback.List).Methods(http.MethodGet)
	admin.HandleFunc("/feedback/{id}/approve", feedback.Approve).Methods(http.MethodPatch)
	admin.HandleFunc("/feedback/{id}", feedback.Delete).Methods(http.MethodDelete)

	// --- SMS ---
	admin.HandleFunc("/sms-logs", smsLogs.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Экраны табло держат соединения открытыми: закрываем их до Shutdown
	kioskRunner.Stop()
	stopRunner()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// healthz проверяет хранилище сессий и (если подключена) базу
func healthz(flows flowStore, db *dbmetrics.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := flows.Ping(ctx); err != nil {
			http.Error(w, "flow store unavailable", http.StatusServiceUnavailable)
			return
		}
		if db != nil {
			if err := db.PingContext(ctx); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
