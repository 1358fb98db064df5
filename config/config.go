package config

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

const (
	StorageModePostgres = "postgres"
	StorageModeLocal    = "local"

	CheckoutModeFull   = "full"
	CheckoutModeSimple = "simple"
)

type Config struct {
	HTTPAddr string

	StorageMode   string
	LocalDataFile string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost string
	RedisPort string

	KafkaBroker       string
	KafkaOrdersTopic  string
	AMQPURL           string
	JaegerEndpoint    string
	Timezone          string
	CheckoutMode      string
	CartTTL           time.Duration
	PollInterval      time.Duration
	AlertDedupeWindow time.Duration

	StorefrontSvcURL string
	AdminSvcURL      string
}

// Load reads an optional .env file and then the process environment.
func Load(defaultAddr string) Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", defaultAddr)
	v.SetDefault("STORAGE_MODE", StorageModePostgres)
	v.SetDefault("LOCAL_DATA_FILE", "./data/pastelaria.json")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "pastelaria")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("KAFKA_BROKER", "")
	v.SetDefault("KAFKA_ORDERS_TOPIC", "orders")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("JAEGER_ENDPOINT", "")
	v.SetDefault("TIMEZONE", "America/Sao_Paulo")
	v.SetDefault("CHECKOUT_MODE", CheckoutModeFull)
	v.SetDefault("CART_TTL", 7*24*time.Hour)
	v.SetDefault("POLL_INTERVAL", 30*time.Second)
	v.SetDefault("ALERT_DEDUPE_WINDOW", 10*time.Second)
	v.SetDefault("STOREFRONT_SVC_URL", "http://localhost:8081")
	v.SetDefault("ADMIN_SVC_URL", "http://localhost:8082")

	return Config{
		HTTPAddr:          v.GetString("HTTP_ADDR"),
		StorageMode:       v.GetString("STORAGE_MODE"),
		LocalDataFile:     v.GetString("LOCAL_DATA_FILE"),
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBName:            v.GetString("DB_NAME"),
		DBUser:            v.GetString("DB_USER"),
		DBPassword:        v.GetString("DB_PASSWORD"),
		RedisHost:         v.GetString("REDIS_HOST"),
		RedisPort:         v.GetString("REDIS_PORT"),
		KafkaBroker:       v.GetString("KAFKA_BROKER"),
		KafkaOrdersTopic:  v.GetString("KAFKA_ORDERS_TOPIC"),
		AMQPURL:           v.GetString("AMQP_URL"),
		JaegerEndpoint:    v.GetString("JAEGER_ENDPOINT"),
		Timezone:          v.GetString("TIMEZONE"),
		CheckoutMode:      v.GetString("CHECKOUT_MODE"),
		CartTTL:           v.GetDuration("CART_TTL"),
		PollInterval:      v.GetDuration("POLL_INTERVAL"),
		AlertDedupeWindow: v.GetDuration("ALERT_DEDUPE_WINDOW"),
		StorefrontSvcURL:  v.GetString("STOREFRONT_SVC_URL"),
		AdminSvcURL:       v.GetString("ADMIN_SVC_URL"),
	}
}

// Location resolves the configured timezone, falling back to the host zone.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[config] WARNING: unknown timezone %q, using local: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

func (c Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func MustInitPostgres(cfg Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// NewKafkaReader returns nil when no broker is configured.
func NewKafkaReader(cfg Config, groupID string) *kafka.Reader {
	if cfg.KafkaBroker == "" {
		return nil
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaOrdersTopic,
		GroupID: groupID,
	})
}

// NewKafkaWriter returns nil when no broker is configured.
func NewKafkaWriter(cfg Config) *kafka.Writer {
	if cfg.KafkaBroker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.KafkaOrdersTopic,
		Balancer: &kafka.LeastBytes{},
	}
}
