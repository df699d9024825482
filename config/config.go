package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	Kafka
	Redis
	DB
	SMTP
	Fraud
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8090"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup string `env:"KAFKA_ALERT_GROUP_ID" envDefault:"payment-alert-group"`
	PaymentTopic  string `env:"KAFKA_PAYMENT_TOPIC" envDefault:"payment-events"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type DB struct {
	HOST     string `env:"DB_HOST" envDefault:"localhost"`
	USER     string `env:"DB_USER" envDefault:"postgres"`
	PASSWORD string `env:"DB_PASSWORD" envDefault:"postgres"`
	NAME     string `env:"DB_NAME" envDefault:"kakaon"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type SMTP struct {
	Server   string `env:"SMTP_SERVER" envDefault:"localhost"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME" envDefault:""`
	Password string `env:"SMTP_PASSWORD" envDefault:""`
	From     string `env:"SMTP_FROM" envDefault:"alerts@kakaon.local"`
}

type Fraud struct {
	WindowBackend string `env:"FRAUD_WINDOW_BACKEND" envDefault:"redis"`

	DuplicateWindow    time.Duration `env:"FRAUD_DUPLICATE_WINDOW" envDefault:"5m"`
	DuplicateThreshold int           `env:"FRAUD_DUPLICATE_THRESHOLD" envDefault:"2"`

	FrequencyWindow    time.Duration `env:"FRAUD_FREQUENCY_WINDOW" envDefault:"1m"`
	FrequencyThreshold int           `env:"FRAUD_FREQUENCY_THRESHOLD" envDefault:"10"`

	DistantWindow      time.Duration `env:"FRAUD_DISTANT_WINDOW" envDefault:"5m"`
	DistantThresholdKm float64       `env:"FRAUD_DISTANT_THRESHOLD_KM" envDefault:"50"`

	HighValueMultiplier float64 `env:"FRAUD_HIGH_VALUE_MULTIPLIER" envDefault:"10"`

	CancelRateInterval  time.Duration `env:"FRAUD_CANCEL_RATE_INTERVAL" envDefault:"1h"`
	CancelRateThreshold float64       `env:"FRAUD_CANCEL_RATE_THRESHOLD" envDefault:"20"`

	PaymentLookupAttempts int           `env:"FRAUD_PAYMENT_LOOKUP_ATTEMPTS" envDefault:"3"`
	PaymentLookupDelay    time.Duration `env:"FRAUD_PAYMENT_LOOKUP_DELAY" envDefault:"1s"`
}

type PaymentLookupConfig struct {
	MaxAttempts int
	Delay       time.Duration
}

func (f Fraud) GetPaymentLookupConfig() PaymentLookupConfig {
	return PaymentLookupConfig{
		MaxAttempts: f.PaymentLookupAttempts,
		Delay:       f.PaymentLookupDelay,
	}
}
