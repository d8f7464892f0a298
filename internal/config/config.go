// Package config загрузка конфигурации сервиса из TOML-файла,
// включая статический каталог полей и команд клуба.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/a1exks/FCP-AllocationService/internal/domain"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Redis    RedisConfig    `toml:"redis"`
	Facility FacilityConfig `toml:"facility"`
}

// ServerConfig настройки HTTP-сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки кеша отчета загрузки.
// При Enabled=false или недоступном redis сервис работает без кеша.
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// FacilityConfig статический каталог клуба: поля и команды
type FacilityConfig struct {
	Pitches []PitchConfig `toml:"pitches"`
	Teams   []TeamConfig  `toml:"teams"`
}

// PitchConfig описание одного поля
type PitchConfig struct {
	ID           string `toml:"id"`
	Name         string `toml:"name"`
	SectionCount int    `toml:"section_count"`
	HasGrass     bool   `toml:"has_grass"`
	Orientation  string `toml:"orientation"`
}

// TeamConfig описание одной команды
type TeamConfig struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if len(c.Facility.Pitches) == 0 {
		return fmt.Errorf("config: facility must define at least one pitch")
	}
	for _, p := range c.Facility.Pitches {
		if p.ID == "" {
			return fmt.Errorf("config: every pitch needs an id")
		}
		if p.SectionCount < 0 || p.SectionCount > len(domain.StandardSections) {
			return fmt.Errorf("config: pitch %s section_count must be 0..%d", p.ID, len(domain.StandardSections))
		}
	}
	return nil
}

// PitchCatalog строит доменный каталог полей из конфигурации.
// Секции нарезаются из фиксированного алфавита A..H.
func (c *Config) PitchCatalog() domain.PitchCatalog {
	catalog := make(domain.PitchCatalog, 0, len(c.Facility.Pitches))
	for _, p := range c.Facility.Pitches {
		orientation := domain.OrientationPortrait
		if p.Orientation == string(domain.OrientationLandscape) {
			orientation = domain.OrientationLandscape
		}
		sections := make([]domain.SectionID, p.SectionCount)
		copy(sections, domain.StandardSections[:p.SectionCount])
		catalog = append(catalog, domain.Pitch{
			ID:           p.ID,
			DisplayName:  p.Name,
			Sections:     sections,
			HasGrassArea: p.HasGrass,
			Orientation:  orientation,
		})
	}
	return catalog
}

// TeamCatalog строит доменный каталог команд из конфигурации
func (c *Config) TeamCatalog() domain.TeamCatalog {
	catalog := make(domain.TeamCatalog, 0, len(c.Facility.Teams))
	for _, t := range c.Facility.Teams {
		color := t.Color
		if color == "" {
			color = domain.DefaultTeamColor
		}
		catalog = append(catalog, domain.Team{Name: t.Name, Color: color})
	}
	return catalog
}
