package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Переменные окружения, переопределяющие значения из файла
const (
	EnvHTTPPort       = "HOTEL_HTTP_PORT"
	EnvLogLevel       = "HOTEL_LOG_LEVEL"
	EnvLogFile        = "HOTEL_LOG_FILE"
	EnvMetricsEnabled = "HOTEL_METRICS_ENABLED"
)

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Hotel   HotelConfig   `toml:"hotel"`
	Payment PaymentConfig `toml:"payment"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HotelConfig номерной фонд и меню
type HotelConfig struct {
	RoomTypes []RoomTypeConfig `toml:"room_types"`
	Menu      []MenuItemConfig `toml:"menu"`
}

// RoomTypeConfig тип номера: тариф и номера в порядке выдачи
type RoomTypeConfig struct {
	Name        string `toml:"name"`
	NightlyRate int64  `toml:"nightly_rate"`
	Rooms       []int  `toml:"rooms"`
}

// MenuItemConfig позиция меню обслуживания номеров
type MenuItemConfig struct {
	Code  string `toml:"code"`
	Name  string `toml:"name"`
	Price int64  `toml:"price"`
}

// PaymentConfig реквизиты, показываемые гостю перед выселением
type PaymentConfig struct {
	BankName      string `toml:"bank_name"`
	AccountNumber string `toml:"account_number"`
	RoutingCode   string `toml:"routing_code"`
	AccountHolder string `toml:"account_holder"`
}

// Load загружает конфигурацию из TOML файла
// Перед чтением подгружает .env (если есть), затем применяет переопределения из окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	return finalize(cfg)
}

// Parse разбирает конфигурацию из строки TOML (без чтения .env)
func Parse(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return finalize(cfg)
}

func finalize(cfg *Config) (*Config, error) {
	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc_hotel_service"
	}

	if len(c.Hotel.RoomTypes) == 0 {
		for _, rt := range domain.DefaultRoomTypes {
			rooms := make([]int, len(rt.Rooms))
			copy(rooms, rt.Rooms)
			c.Hotel.RoomTypes = append(c.Hotel.RoomTypes, RoomTypeConfig{
				Name:        rt.Type.String(),
				NightlyRate: rt.NightlyRate,
				Rooms:       rooms,
			})
		}
	}

	if len(c.Hotel.Menu) == 0 {
		for _, item := range domain.DefaultMenu {
			c.Hotel.Menu = append(c.Hotel.Menu, MenuItemConfig{Code: item.Code, Name: item.Name, Price: item.UnitPrice})
		}
	}

	if c.Payment == (PaymentConfig{}) {
		p := domain.DefaultPaymentDetails
		c.Payment = PaymentConfig{
			BankName:      p.BankName,
			AccountNumber: p.AccountNumber,
			RoutingCode:   p.RoutingCode,
			AccountHolder: p.AccountHolder,
		}
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logs.File = v
	}
	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvMetricsEnabled, v)
		}
		c.Metrics.Enabled = enabled
	}
	return nil
}

// Validate проверяет конфигурацию
// Номер комнаты может входить только в один тип, тарифы и цены положительные
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	types := make(map[domain.RoomType]struct{}, len(c.Hotel.RoomTypes))
	rooms := make(map[int]string)
	for _, rt := range c.Hotel.RoomTypes {
		name := domain.NormalizeRoomType(rt.Name)
		if name == "" {
			return fmt.Errorf("%w: room type name is required", ErrInvalidConfig)
		}
		if _, dup := types[name]; dup {
			return fmt.Errorf("%w: room type %q declared twice", ErrInvalidConfig, name)
		}
		types[name] = struct{}{}

		if rt.NightlyRate <= 0 || rt.NightlyRate > domain.MaxNightlyRate {
			return fmt.Errorf("%w: room type %q nightly_rate must be in 1..%d", ErrInvalidConfig, name, domain.MaxNightlyRate)
		}
		for _, room := range rt.Rooms {
			if room <= 0 {
				return fmt.Errorf("%w: room number %d must be positive", ErrInvalidConfig, room)
			}
			if other, dup := rooms[room]; dup {
				return fmt.Errorf("%w: room %d listed in %q and %q", ErrInvalidConfig, room, other, name)
			}
			rooms[room] = string(name)
		}
	}

	codes := make(map[string]struct{}, len(c.Hotel.Menu))
	for _, item := range c.Hotel.Menu {
		code := domain.NormalizeMenuCode(item.Code)
		if code == "" {
			return fmt.Errorf("%w: menu item code is required", ErrInvalidConfig)
		}
		if _, dup := codes[code]; dup {
			return fmt.Errorf("%w: menu item %q declared twice", ErrInvalidConfig, code)
		}
		codes[code] = struct{}{}
		if item.Price <= 0 || item.Price > domain.MaxUnitPrice {
			return fmt.Errorf("%w: menu item %q price must be in 1..%d", ErrInvalidConfig, code, domain.MaxUnitPrice)
		}
	}

	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics path must start with /", ErrInvalidConfig)
	}

	return nil
}

// RoomTypes конвертирует номерной фонд в domain модели
func (c *Config) RoomTypes() []domain.RoomTypeConfig {
	result := make([]domain.RoomTypeConfig, 0, len(c.Hotel.RoomTypes))
	for _, rt := range c.Hotel.RoomTypes {
		rooms := make([]int, len(rt.Rooms))
		copy(rooms, rt.Rooms)
		result = append(result, domain.RoomTypeConfig{
			Type:        domain.NormalizeRoomType(rt.Name),
			NightlyRate: rt.NightlyRate,
			Rooms:       rooms,
		})
	}
	return result
}

// MenuItems конвертирует меню в domain модели
func (c *Config) MenuItems() []domain.MenuItem {
	result := make([]domain.MenuItem, 0, len(c.Hotel.Menu))
	for _, item := range c.Hotel.Menu {
		name := item.Name
		if name == "" {
			name = item.Code
		}
		result = append(result, domain.MenuItem{
			Code:      domain.NormalizeMenuCode(item.Code),
			Name:      name,
			UnitPrice: item.Price,
		})
	}
	return result
}

// PaymentDetails конвертирует реквизиты в domain модель
func (c *Config) PaymentDetails() domain.PaymentDetails {
	return domain.PaymentDetails{
		BankName:      c.Payment.BankName,
		AccountNumber: c.Payment.AccountNumber,
		RoutingCode:   c.Payment.RoutingCode,
		AccountHolder: c.Payment.AccountHolder,
	}
}
