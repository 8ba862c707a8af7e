package config

import (
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverDynamo   = "dynamodb"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverBadger   = "badger"
)

type Config struct {
	UseLocalStore  bool   `env:"IS_LOCAL,default=false"`
	CollectionName string `env:"TABLE_NAME,default=MessageMural" validate:"required"`
	Region         string `env:"AWS_REGION,default=us-east-1" validate:"required"`
	Port           int    `env:"PORT,default=3001" validate:"min=1,max=65535"`

	StoreDriver        string `env:"STORE_DRIVER,default=dynamodb" validate:"oneof=dynamodb postgres redis badger"`
	LocalStoreEndpoint string `env:"LOCAL_STORE_ENDPOINT,default=http://localhost:8000" validate:"omitempty,url"`
	PostgresDSN        string `env:"POSTGRES_DSN" validate:"required_if=StoreDriver postgres"`
	RedisAddr          string `env:"REDIS_ADDR,default=localhost:6379"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	BadgerFilepath     string `env:"BADGER_FILEPATH,default=./data/badger"`

	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	SwaggerEnabled bool   `env:"SWAGGER_ENABLED,default=false"`
}

var validate = validator.New()

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnviron()
}

// FromEnviron decodes and validates the configuration from the environment only.
func FromEnviron() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address of the local server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
