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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/create_appointment"
	createDayOffHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/create_day_off"
	createWindowHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/create_window"
	deleteDayOffHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/delete_day_off"
	deleteWindowHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/delete_window"
	getAvailabilityHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/get_availability"
	getConfigHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/get_config"
	healthHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/list_appointments"
	listDaysOffHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/list_days_off"
	listWindowsHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/list_windows"
	updateConfigHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/update_config"
	updateDayOffHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/update_day_off"
	updateWindowHandler "github.com/m04kA/appointment-scheduler/internal/api/handlers/update_window"
	"github.com/m04kA/appointment-scheduler/internal/api/middleware"
	"github.com/m04kA/appointment-scheduler/internal/config"
	"github.com/m04kA/appointment-scheduler/internal/domain"
	appointmentRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/appointment"
	dayoffRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/dayoff"
	scheduleconfigRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/scheduleconfig"
	windowRepo "github.com/m04kA/appointment-scheduler/internal/infra/storage/window"
	appointmentsService "github.com/m04kA/appointment-scheduler/internal/service/appointments"
	daysoffService "github.com/m04kA/appointment-scheduler/internal/service/daysoff"
	scheduleconfigService "github.com/m04kA/appointment-scheduler/internal/service/scheduleconfig"
	windowsService "github.com/m04kA/appointment-scheduler/internal/service/windows"
	createAppointmentUC "github.com/m04kA/appointment-scheduler/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/m04kA/appointment-scheduler/internal/usecase/get_availability"
	"github.com/m04kA/appointment-scheduler/pkg/dbmetrics"
	"github.com/m04kA/appointment-scheduler/pkg/logger"
	"github.com/m04kA/appointment-scheduler/pkg/metrics"
	"github.com/m04kA/appointment-scheduler/pkg/simpletxmanager"
	"github.com/m04kA/appointment-scheduler/pkg/txmanager"
	"github.com/m04kA/appointment-scheduler/pkg/types"
)

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

	log.Info("Starting appointment-scheduler...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository    *appointmentRepo.Repository
		scheduleconfigRepository *scheduleconfigRepo.Repository
		dayoffRepository         *dayoffRepo.Repository
		windowRepository         *windowRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleconfigRepository = scheduleconfigRepo.NewRepository(wrappedDB)
		dayoffRepository = dayoffRepo.NewRepository(wrappedDB)
		windowRepository = windowRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleconfigRepository = scheduleconfigRepo.NewRepository(db)
		dayoffRepository = dayoffRepo.NewRepository(db)
		windowRepository = windowRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	configSvc := scheduleconfigService.NewService(
		scheduleconfigRepository,
		schedulingDefaults(&cfg.Scheduling),
		log,
	)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	dayOffSvc := daysoffService.NewService(dayoffRepository, log)
	windowSvc := windowsService.NewService(windowRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		configSvc,
		dayoffRepository,
		windowRepository,
		appointmentRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		configSvc,
		dayoffRepository,
		windowRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getConfig := getConfigHandler.NewHandler(configSvc, log)
	updateConfig := updateConfigHandler.NewHandler(configSvc, log)
	createDayOff := createDayOffHandler.NewHandler(dayOffSvc, log)
	listDaysOff := listDaysOffHandler.NewHandler(dayOffSvc, log)
	updateDayOff := updateDayOffHandler.NewHandler(dayOffSvc, log)
	deleteDayOff := deleteDayOffHandler.NewHandler(dayOffSvc, log)
	createWindow := createWindowHandler.NewHandler(windowSvc, log)
	listWindows := listWindowsHandler.NewHandler(windowSvc, log)
	updateWindow := updateWindowHandler.NewHandler(windowSvc, log)
	deleteWindow := deleteWindowHandler.NewHandler(windowSvc, log)
	health := healthHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Liveness с проверкой БД
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность и записи ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// --- Конфигурация расписания ---
	api.HandleFunc("/config", getConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/config", updateConfig.Handle).Methods(http.MethodPatch)

	// --- Администрирование: выходные ---
	api.HandleFunc("/admin/days-off", createDayOff.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/days-off", listDaysOff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/admin/days-off/{dayOffId}", updateDayOff.Handle).Methods(http.MethodPut)
	api.HandleFunc("/admin/days-off/{dayOffId}", deleteDayOff.Handle).Methods(http.MethodDelete)

	// --- Администрирование: окна недоступности ---
	api.HandleFunc("/admin/unavailable-windows", createWindow.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/unavailable-windows", listWindows.Handle).Methods(http.MethodGet)
	api.HandleFunc("/admin/unavailable-windows/{windowId}", updateWindow.Handle).Methods(http.MethodPut)
	api.HandleFunc("/admin/unavailable-windows/{windowId}", deleteWindow.Handle).Methods(http.MethodDelete)

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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

// schedulingDefaults строит fallback-конфигурацию расписания:
// значения из config.toml [scheduling], незаполненные поля - из domain
func schedulingDefaults(sc *config.SchedulingConfig) domain.ScheduleConfig {
	defaults := *domain.DefaultScheduleConfig()

	if sc.SlotDurationMinutes > 0 {
		defaults.SlotDurationMinutes = sc.SlotDurationMinutes
	}
	if sc.MaxSlotsPerAppointment > 0 {
		defaults.MaxSlotsPerAppointment = sc.MaxSlotsPerAppointment
	}
	if len(sc.OperationalDays) > 0 {
		days := make([]int, len(sc.OperationalDays))
		copy(days, sc.OperationalDays)
		defaults.OperationalDays = days
	}
	if sc.OperationalStartTime != "" {
		defaults.OperationalStartTime = types.TimeString(sc.OperationalStartTime)
	}
	if sc.OperationalEndTime != "" {
		defaults.OperationalEndTime = types.TimeString(sc.OperationalEndTime)
	}

	return defaults
}
