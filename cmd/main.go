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

	addRoomServiceHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/add_room_service"
	checkInHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_in"
	checkoutHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/checkout"
	getMenuHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_menu"
	getOccupiedRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_occupied_room"
	getPaymentDetailsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_payment_details"
	getRoomTypesHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_room_types"
	healthHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/health"
	listOccupiedHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_occupied"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
	hotelService "github.com/m04kA/SMC-HotelService/internal/service/hotel"
	addRoomServiceUC "github.com/m04kA/SMC-HotelService/internal/usecase/add_room_service"
	checkInUC "github.com/m04kA/SMC-HotelService/internal/usecase/check_in"
	checkoutUC "github.com/m04kA/SMC-HotelService/internal/usecase/checkout"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
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

	log.Info("Starting SMC-HotelService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	r, err := newRouter(cfg, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to build router: %v", err)
	}

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

// newRouter собирает зависимости и регистрирует маршруты.
// metricsCollector может быть nil, если метрики выключены.
func newRouter(cfg *config.Config, metricsCollector *metrics.Metrics, log *logger.Logger) (*mux.Router, error) {
	// Инициализируем хранилище номеров и меню
	inventoryRepository, err := inventory.NewRepository(cfg.RoomTypes())
	if err != nil {
		return nil, fmt.Errorf("inventory: %w", err)
	}
	menu := domain.NewMenu(cfg.MenuItems())
	payment := cfg.PaymentDetails()

	log.Info("Inventory initialized: %d room types, %d menu items",
		len(cfg.Hotel.RoomTypes), len(cfg.Hotel.Menu))

	// Инициализируем сервисы
	hotelSvc := hotelService.NewService(inventoryRepository, menu, payment, log)

	// Инициализируем use cases
	checkInUseCase := checkInUC.NewUseCase(inventoryRepository, metricsCollector, log)
	addRoomServiceUseCase := addRoomServiceUC.NewUseCase(inventoryRepository, menu, metricsCollector, log)
	checkoutUseCase := checkoutUC.NewUseCase(inventoryRepository, payment, metricsCollector, log)

	// Инициализируем handlers
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	addRoomService := addRoomServiceHandler.NewHandler(addRoomServiceUseCase, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)
	listOccupied := listOccupiedHandler.NewHandler(hotelSvc, log)
	getOccupiedRoom := getOccupiedRoomHandler.NewHandler(hotelSvc, log)
	getRoomTypes := getRoomTypesHandler.NewHandler(hotelSvc, log)
	getMenu := getMenuHandler.NewHandler(hotelSvc)
	getPaymentDetails := getPaymentDetailsHandler.NewHandler(hotelSvc)
	health := healthHandler.NewHandler(cfg.Metrics.ServiceName)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// --- Справочники ---
	api.HandleFunc("/room-types", getRoomTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/menu", getMenu.Handle).Methods(http.MethodGet)
	api.HandleFunc("/payment-details", getPaymentDetails.Handle).Methods(http.MethodGet)

	// --- Заселение и выезд ---
	api.HandleFunc("/check-ins", checkIn.Handle).Methods(http.MethodPost)

	// /rooms/occupied регистрируется раньше /rooms/{roomNumber}
	api.HandleFunc("/rooms/occupied", listOccupied.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomNumber}", getOccupiedRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomNumber}/room-service", addRoomService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomNumber}/checkout", checkout.Handle).Methods(http.MethodPost)

	return r, nil
}
