package config

import (
	"errors"
	"fmt"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/utils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const defaultSlipMaxBytes int64 = 3 * 1024 * 1024

type Env struct {
	AppAddr          string
	GinMode          string
	DBDSN            string
	JWTSecret        string
	WhatsAppNumber   string
	SlipMaxBytes     int64
	UploadsPerMinute int
	CORSOrigins      []string
	LogLevel         string
	Catalog          domain.Catalog
}

// serviceConfig takes the price as text so "Rs. 2,500" and 2500 both load.
type serviceConfig struct {
	Name  string `mapstructure:"name"`
	Time  string `mapstructure:"time"`
	Price string `mapstructure:"price"`
}

type catalogConfig struct {
	Services []serviceConfig    `mapstructure:"services"`
	Cities   []string           `mapstructure:"cities"`
	Bank     domain.BankDetails `mapstructure:"bank"`
}

func (c catalogConfig) services() ([]domain.Service, error) {
	out := make([]domain.Service, 0, len(c.Services))
	for _, s := range c.Services {
		price, err := utils.ParseRupees(s.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog service %q: price %q: %w", s.Name, s.Price, err)
		}
		out = append(out, domain.Service{Name: s.Name, Time: s.Time, Price: price})
	}
	return out, nil
}

// LoadEnv reads config.yaml (if present) and environment variables.
func LoadEnv() Env {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("app_addr", ":8080")
	v.SetDefault("gin_mode", "")
	v.SetDefault("db_dsn", "root:@tcp(127.0.0.1:3306)/bus_booking?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s")
	v.SetDefault("jwt_secret", "change-me")
	v.SetDefault("whatsapp_number", "94771234567")
	v.SetDefault("slip_max_bytes", defaultSlipMaxBytes)
	v.SetDefault("uploads_per_minute", 20)
	v.SetDefault("cors_allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logrus.WithError(err).Warn("config file unreadable, using env and defaults")
		}
	}

	return FromViper(v)
}

// FromViper builds an Env from an already populated viper instance.
func FromViper(v *viper.Viper) Env {
	env := Env{
		AppAddr:          strings.TrimSpace(v.GetString("app_addr")),
		GinMode:          strings.TrimSpace(v.GetString("gin_mode")),
		DBDSN:            strings.TrimSpace(v.GetString("db_dsn")),
		JWTSecret:        v.GetString("jwt_secret"),
		WhatsAppNumber:   utils.DigitsOnly(v.GetString("whatsapp_number")),
		SlipMaxBytes:     v.GetInt64("slip_max_bytes"),
		UploadsPerMinute: v.GetInt("uploads_per_minute"),
		LogLevel:         strings.TrimSpace(v.GetString("log_level")),
		Catalog:          domain.DefaultCatalog(),
	}
	if env.AppAddr == "" {
		env.AppAddr = ":8080"
	}
	if env.SlipMaxBytes <= 0 {
		env.SlipMaxBytes = defaultSlipMaxBytes
	}
	for _, o := range strings.Split(v.GetString("cors_allowed_origins"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.CORSOrigins = append(env.CORSOrigins, o)
		}
	}

	var cc catalogConfig
	if err := v.UnmarshalKey("catalog", &cc); err != nil {
		logrus.WithError(err).Warn("catalog config invalid, using defaults")
		return env
	}
	def := env.Catalog
	services, cities, bank := def.Services(), def.Cities(), def.Bank()
	if len(cc.Services) > 0 {
		parsed, err := cc.services()
		if err != nil {
			logrus.WithError(err).Warn("catalog services invalid, using defaults")
		} else {
			services = parsed
		}
	}
	if len(cc.Cities) > 0 {
		cities = cc.Cities
	}
	if cc.Bank.AccountNumber != "" {
		bank = cc.Bank
	}
	env.Catalog = domain.NewCatalog(services, cities, bank)
	return env
}
