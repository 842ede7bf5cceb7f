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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/create_booking"
	createCentreHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/create_centre"
	createCourtHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/create_court"
	createSportHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/create_sport"
	getAllBookingsHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/get_all_bookings"
	getAvailableSlotsHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/get_user_bookings"
	listCentreSportsHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/list_centre_sports"
	listCentresHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/list_centres"
	listSportCourtsHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/list_sport_courts"
	loginUserHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/login_user"
	registerUserHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/register_user"
	"github.com/quickcourt/QC-BookingService/internal/api/middleware"
	"github.com/quickcourt/QC-BookingService/internal/config"
	bookingRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/booking"
	centreRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/centre"
	userRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/user"
	"github.com/quickcourt/QC-BookingService/internal/integrations/mailer"
	bookingsService "github.com/quickcourt/QC-BookingService/internal/service/bookings"
	centresService "github.com/quickcourt/QC-BookingService/internal/service/centres"
	usersService "github.com/quickcourt/QC-BookingService/internal/service/users"
	createBookingUC "github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/quickcourt/QC-BookingService/internal/usecase/get_available_slots"
	"github.com/quickcourt/QC-BookingService/pkg/authtoken"
	"github.com/quickcourt/QC-BookingService/pkg/dbmetrics"
	"github.com/quickcourt/QC-BookingService/pkg/logger"
	"github.com/quickcourt/QC-BookingService/pkg/metrics"
	"github.com/quickcourt/QC-BookingService/pkg/txmanager"
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

	log.Info("Starting QC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Политика сетки слотов, одна на весь сервис
	slotPolicy, err := cfg.Booking.SlotPolicy()
	if err != nil {
		log.Fatal("Invalid slot policy: %v", err)
	}
	log.Info("Slot policy: %s-%s, step %d minutes",
		slotPolicy.OpenTime, slotPolicy.CloseTime, slotPolicy.StepMinutes)

	// Инициализируем метрики (если включены)
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

	// Инициализируем исполнитель запросов (с метриками или без)
	var (
		executor dbmetrics.DBExecutor
		beginner dbmetrics.TxBeginner
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		beginner = wrappedDB
		log.Info("Database metrics collection started")
	} else {
		plainDB := dbmetrics.Plain(db)
		executor = plainDB
		beginner = plainDB
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(executor)
	centreRepository := centreRepo.NewRepository(executor)
	userRepository := userRepo.NewRepository(executor)
	txMgr := txmanager.NewTransactionManager(beginner)

	// Выпуск и проверка токенов
	tokenManager := authtoken.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	// Отправка подтверждений бронирования
	var notifier createBookingUC.Notifier
	if cfg.SMTP.Enabled {
		notifier = mailer.NewSMTPNotifier(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.From,
		)
		log.Info("SMTP notifier enabled (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		notifier = mailer.NewConsoleNotifier(log)
		log.Info("SMTP disabled, booking confirmations are logged only")
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	centreSvc := centresService.NewService(centreRepository, log)
	userSvc := usersService.NewService(userRepository, tokenManager, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		centreRepository,
		userRepository,
		txMgr,
		notifier,
		slotPolicy,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		centreRepository,
		slotPolicy,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	createCentre := createCentreHandler.NewHandler(centreSvc, log)
	createSport := createSportHandler.NewHandler(centreSvc, log)
	createCourt := createCourtHandler.NewHandler(centreSvc, log)
	listCentres := listCentresHandler.NewHandler(centreSvc, log)
	listCentreSports := listCentreSportsHandler.NewHandler(centreSvc, log)
	listSportCourts := listSportCourtsHandler.NewHandler(centreSvc, log)
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	loginUser := loginUserHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Rate limiter поверх redis (если включен)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := middleware.NewRateLimiter(
			redisClient,
			cfg.Redis.RateLimit,
			time.Duration(cfg.Redis.RateLimitWindow)*time.Second,
			log,
		)
		r.Use(limiter.Middleware)
		log.Info("Rate limiter enabled (%d requests per %ds)", cfg.Redis.RateLimit, cfg.Redis.RateLimitWindow)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)

	// Каталог площадок
	api.HandleFunc("/centres", listCentres.Handle).Methods(http.MethodGet)
	api.HandleFunc("/centres/{centreId}/sports", listCentreSports.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sports/{sportId}/courts", listSportCourts.Handle).Methods(http.MethodGet)

	// Сетка слотов корта на день
	api.HandleFunc("/centres/{centreId}/sports/{sportId}/courts/{courtId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager))

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// MANAGER ROUTES (требуют роль manager)
	// ============================================================

	manager := protected.PathPrefix("").Subrouter()
	manager.Use(middleware.RequireManager)

	// Обзор всех бронирований
	manager.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)

	// Управление каталогом
	manager.HandleFunc("/centres", createCentre.Handle).Methods(http.MethodPost)
	manager.HandleFunc("/centres/{centreId}/sports", createSport.Handle).Methods(http.MethodPost)
	manager.HandleFunc("/sports/{sportId}/courts", createCourt.Handle).Methods(http.MethodPost)

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
