package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
	LLM      LLMConfig      `envPrefix:"LLM_"`
	Admin    AdminConfig    `envPrefix:"ADMIN_"`
	Seed     SeedConfig     `envPrefix:"SEED_"`
}

type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

type DatabaseConfig struct {
	Hosts    []string `env:"HOSTS" envDefault:"localhost:27017"`
	Username string   `env:"USERNAME"`
	Password string   `env:"PASSWORD"`
	AuthDB   string   `env:"AUTH_DB" envDefault:"admin"`
	Database string   `env:"DATABASE" envDefault:"backoffice"`
	Direct   bool     `env:"DIRECT" envDefault:"true"`
	// Watch requires a replica set; snapshots are only re-broadcast on writes
	// made by this process when disabled.
	Watch bool `env:"WATCH" envDefault:"false"`
}

type KafkaConfig struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"backoffice.notifications"`
}

type LLMConfig struct {
	GoogleAIAPIKey string `env:"GOOGLE_AI_API_KEY"`
	Model          string `env:"MODEL" envDefault:"googleai/gemini-2.0-flash"`
}

// AdminConfig holds the fixed back-office credential. Client portal
// credentials live on the client documents.
type AdminConfig struct {
	Email    string `env:"EMAIL" envDefault:"admin@backoffice.local"`
	Password string `env:"PASSWORD" envDefault:"admin"`
}

type SeedConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
