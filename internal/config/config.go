package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Email struct {
		Provider     string `yaml:"provider"` // mock, smtp
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	// Mock - параметры имитации сетевой задержки mock-бэкенда
	Mock struct {
		LatencyMinMS int  `yaml:"latency_min_ms"`
		LatencyMaxMS int  `yaml:"latency_max_ms"`
		Seed         bool `yaml:"seed"` // загружать демо-данные при старте
	} `yaml:"mock"`

	// Session - файл "локального хранилища" клиента ({account, token})
	Session struct {
		FilePath string `yaml:"file_path"`
	} `yaml:"session"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	// .env не обязателен, молча пропускаем если его нет
	_ = godotenv.Load()

	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")
	jwtSecret := os.Getenv("JWT_SECRET")

	if jwtSecret == "" {
		log.Println("Загрузка из config.yaml (режим НЕ-тест)")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Загрузка конфигурации из ПЕРЕМЕННЫХ ОКРУЖЕНИЯ (режим теста)")

	cfg.Server.Env = serverEnv
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.JWT.Secret = jwtSecret
	cfg.JWT.TTL = 60

	cfg.Email.Provider = "mock"
	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "noreply@unijobs.test"

	// В тестах задержка нулевая, данные не сеятся
	cfg.Mock.LatencyMinMS = 0
	cfg.Mock.LatencyMaxMS = 0
	cfg.Mock.Seed = false

	cfg.Session.FilePath = os.Getenv("SESSION_FILE")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "mock"
	}
	if cfg.Session.FilePath == "" {
		cfg.Session.FilePath = "./session.json"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
