package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env          string `yaml:"env" env:"APP_ENV" env-default:"prod"`
	ErrorLogPath string `yaml:"error_log_path" env:"ERROR_LOG_PATH" env-default:"errors.log"`
	HTTPServer   `yaml:"http_server"`
	DBUser       string `yaml:"db_user" env:"DB_USER" env-required:"true"`
	DBPassword   string `yaml:"db_password" env:"DB_PASSWORD"`
	DBHost       string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort       int    `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBName       string `yaml:"db_name" env:"DB_NAME" env-required:"true"`
	ParseTime    bool   `yaml:"parse_time" env:"DB_PARSE_TIME" env-default:"true"`

	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"http://localhost:5173"`
	Report      Report   `yaml:"report"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:5000"`
	Timeout        time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"5s"`
	ExportTimeout  time.Duration `yaml:"export_timeout" env-default:"10s"`
}

type Report struct {
	// Naming is "en" or "zh".
	Naming      string `yaml:"naming" env:"REPORT_NAMING" env-default:"en"`
	DefaultSort string `yaml:"default_sort" env-default:"date"`
	TotalsRow   bool   `yaml:"totals_row" env-default:"false"`
}

// Load reads the yaml file at path, environment variables override it.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}
