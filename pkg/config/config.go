package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config — конфигурация приложения (читается через Viper из переменных
// окружения и, опционально, из файла .env).
type Config struct {
	App  AppConfig
	DB   DBConfig
	HTTP HTTPConfig
}

// AppConfig — общие параметры приложения.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig — параметры подключения к PostgreSQL.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN собирает строку подключения для pgx.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// HTTPConfig — параметры HTTP-сервера.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr возвращает адрес прослушивания (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load читает конфигурацию. Переменные окружения имеют приоритет над
// файлом. Ожидаемые имена: APP_ENV, DB_HOST, DB_PORT, DB_NAME и т.д.
func Load() (*Config, error) {
	v := viper.New()

	// Опционально: файл конфигурации .env рядом с бинарём
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // отсутствие файла не ошибка

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "fridge-api"),
		},
		DB: DBConfig{
			Host:     getString(v, "DB_HOST", "postgres"),
			Port:     getInt(v, "DB_PORT", 5432),
			User:     getString(v, "DB_USER", "fridge_user"),
			Password: getString(v, "DB_PASSWORD", "1234"),
			DBName:   getString(v, "DB_NAME", "fridge_db"),
			SSLMode:  getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
