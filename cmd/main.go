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

	clearDayHandler "github.com/a1exks/FCP-AllocationService/internal/api/handlers/clear_day"
	createAllocationHandler "github.com/a1exks/FCP-AllocationService/internal/api/handlers/create_allocation"
	deleteAllocationHandler "github.com/a1exks/FCP-AllocationService/internal/api/handlers/delete_allocation"
	exportAllocationsHandler "github.com/a1exks/FCP-AllocationService/internal/api/handlers/export_allocations"
	getDayGridHandler "github.com/a1exks/FCP-AllocationService/internal/api/handlers/get_day_grid"
	getLayoutChoicesHandler "github.com/a1exks/FCP-AllocationService/internal/api/handlers/get_layout_choices"
	getUtilizationHandler "github.com/a1exks/FCP-AllocationService/internal/api/handlers/get_utilization"
	importAllocationsHandler "github.com/a1exks/FCP-AllocationService/internal/api/handlers/import_allocations"
	"github.com/a1exks/FCP-AllocationService/internal/api/middleware"
	"github.com/a1exks/FCP-AllocationService/internal/config"
	"github.com/a1exks/FCP-AllocationService/internal/infra/cache"
	allocationRepo "github.com/a1exks/FCP-AllocationService/internal/infra/storage/allocation"
	allocationsService "github.com/a1exks/FCP-AllocationService/internal/service/allocations"
	interchangeService "github.com/a1exks/FCP-AllocationService/internal/service/interchange"
	createAllocationUC "github.com/a1exks/FCP-AllocationService/internal/usecase/create_allocation"
	deleteAllocationUC "github.com/a1exks/FCP-AllocationService/internal/usecase/delete_allocation"
	getUtilizationUC "github.com/a1exks/FCP-AllocationService/internal/usecase/get_utilization"
	"github.com/a1exks/FCP-AllocationService/pkg/dbmetrics"
	"github.com/a1exks/FCP-AllocationService/pkg/logger"
	"github.com/a1exks/FCP-AllocationService/pkg/metrics"
	"github.com/a1exks/FCP-AllocationService/pkg/simpletxmanager"
	"github.com/a1exks/FCP-AllocationService/pkg/txmanager"
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

	log.Info("Starting FCP-AllocationService...")
	log.Info("Configuration loaded from config.toml")

	// Статические каталоги клуба
	pitchCatalog := cfg.PitchCatalog()
	teamCatalog := cfg.TeamCatalog()
	log.Info("Facility catalog loaded: %d pitches, %d teams",
		len(cfg.Facility.Pitches), len(cfg.Facility.Teams))

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

	// Кеш отчетов загрузки. Недоступный redis не мешает старту:
	// сервис продолжает работать без кеширования.
	var reportCache *cache.ReportCache
	if cfg.Redis.Enabled {
		reportCache = cache.New(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
		)
		if reportCache != nil {
			log.Info("Report cache connected (redis=%s)", cfg.Redis.Addr)
			defer reportCache.Close()
		} else {
			log.Warn("Report cache unavailable (redis=%s), running without cache", cfg.Redis.Addr)
		}
	}

	// Инициализируем репозиторий (с метриками или без)
	var allocationRepository *allocationRepo.Repository

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		allocationRepository = allocationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		allocationRepository = allocationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	allocationSvc := allocationsService.NewService(
		allocationRepository,
		txMgr,
		pitchCatalog,
		reportCache,
		log,
	)
	interchangeSvc := interchangeService.NewService(
		allocationRepository,
		txMgr,
		reportCache,
		log,
	)

	// Инициализируем use cases
	createAllocationUseCase := createAllocationUC.NewUseCase(
		allocationRepository,
		txMgr,
		pitchCatalog,
		teamCatalog,
		reportCache,
		log,
	)
	deleteAllocationUseCase := deleteAllocationUC.NewUseCase(
		allocationRepository,
		txMgr,
		reportCache,
		log,
	)
	getUtilizationUseCase := getUtilizationUC.NewUseCase(
		allocationRepository,
		pitchCatalog,
		reportCache,
		log,
	)

	// Инициализируем handlers
	createAllocation := createAllocationHandler.NewHandler(createAllocationUseCase, log)
	deleteAllocation := deleteAllocationHandler.NewHandler(deleteAllocationUseCase, log)
	getDayGrid := getDayGridHandler.NewHandler(allocationSvc, log)
	getLayoutChoices := getLayoutChoicesHandler.NewHandler(allocationSvc, log)
	clearDay := clearDayHandler.NewHandler(allocationSvc, log)
	getUtilization := getUtilizationHandler.NewHandler(getUtilizationUseCase, log)
	exportAllocations := exportAllocationsHandler.NewHandler(interchangeSvc, log)
	importAllocations := importAllocationsHandler.NewHandler(interchangeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health endpoint: отвечает ok только при живом подключении к БД
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	// Создание бронирования (тренировка или матчевый день)
	api.HandleFunc("/allocations", createAllocation.Handle).Methods(http.MethodPost)

	// Снятие бронирования по любой его ячейке
	api.HandleFunc("/allocations", deleteAllocation.Handle).Methods(http.MethodDelete)

	// Снимок сетки дня одного поля
	api.HandleFunc("/pitches/{pitchId}/grid", getDayGrid.Handle).Methods(http.MethodGet)

	// Допустимые раскладки команды на поле
	api.HandleFunc("/teams/{teamName}/layout-choices", getLayoutChoices.Handle).Methods(http.MethodGet)

	// Массовый сброс дня (обе сетки)
	api.HandleFunc("/days/{date}", clearDay.Handle).Methods(http.MethodDelete)

	// --- Отчеты и обмен ---
	// Тепловая карта загрузки
	api.HandleFunc("/utilization", getUtilization.Handle).Methods(http.MethodGet)

	// Экспорт сеток за период
	api.HandleFunc("/export", exportAllocations.Handle).Methods(http.MethodGet)

	// Атомарный импорт файла экспорта
	api.HandleFunc("/import", importAllocations.Handle).Methods(http.MethodPost)

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
