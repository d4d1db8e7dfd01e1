package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	adminLoginHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/admin_logout"
	cancelReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	editReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/edit_reservation"
	findReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/find_reservations"
	getAdminReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_admin_reservations"
	getAdminStatsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_admin_stats"
	getCalendarHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_calendar"
	getTimeSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_time_slots"
	updateReservationStatusHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	sessionRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/session"
	authService "github.com/m04kA/SMC-ReservationService/internal/service/auth"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	getCalendarUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_calendar"
	getTimeSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_time_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем репозитории (с учетом операций хранилища или без)
	var reservationRepository *reservationRepo.Repository
	if cfg.Metrics.Enabled {
		reservationRepository = reservationRepo.NewRepositoryWithMetrics(redisClient, metricsCollector)
	} else {
		reservationRepository = reservationRepo.NewRepository(redisClient)
	}
	sessionRepository := sessionRepo.NewRepository(redisClient)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	authSvc := authService.NewService(sessionRepository, cfg.Admin.Password, cfg.Admin.Username, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		time.Duration(cfg.Booking.ProcessingDelayMs)*time.Millisecond,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(reservationRepository, log)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(reservationRepository, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	findReservations := findReservationsHandler.NewHandler(reservationSvc, log)
	editReservation := editReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	adminLogout := adminLogoutHandler.NewHandler(authSvc, log)
	getAdminReservations := getAdminReservationsHandler.NewHandler(reservationSvc, log)
	getAdminStats := getAdminStatsHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)

	// Подписываемся на уведомления об изменениях хранилища.
	// Аналог события storage: другие экземпляры узнают об изменениях
	// и могут сбрасывать кэши или обновлять представления
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()

	go func() {
		err := reservationRepository.Watch(watchCtx, func() {
			log.Debug("Storage change notification received")
			if metricsCollector != nil {
				metricsCollector.ObserveStorageChange()
			}
		})
		if err != nil && watchCtx.Err() == nil {
			log.Error("Storage watch stopped: %v", err)
		}
	}()

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарная сетка месяца
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Слоты времени на дату с признаком занятости
	api.HandleFunc("/slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Создание брони
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Поиск своих броней по имени или телефону
	api.HandleFunc("/reservations/search", findReservations.Handle).Methods(http.MethodGet)

	// Редактирование брони
	api.HandleFunc("/reservations/{reservationId}", editReservation.Handle).Methods(http.MethodPatch)

	// Отмена брони
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют административной сессии)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc))

	// Список броней с фильтрами по статусу и дате
	admin.HandleFunc("/reservations", getAdminReservations.Handle).Methods(http.MethodGet)

	// Сводная статистика по статусам
	admin.HandleFunc("/stats", getAdminStats.Handle).Methods(http.MethodGet)

	// Решение по заявке: подтверждение или отклонение
	admin.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// Выход администратора
	admin.HandleFunc("/logout", adminLogout.Handle).Methods(http.MethodPost)

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

	watchCancel()

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
