package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Session    Session
	Pagination Pagination
	Templates  Templates
	Prometheus Prometheus
}

type HTTPServer struct {
	Address      string
	Port         int
	ReadTimeout  int
	WriteTimeout int
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type Session struct {
	Secret string
	Name   string
	MaxAge int
}

type Pagination struct {
	PageSize int
}

type Templates struct {
	Dir string
}

type Prometheus struct {
	Address string
	Port    int
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.read_timeout", 10)
	viper.SetDefault("http_server.write_timeout", 10)

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "yatube-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "yatube")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("session.secret", "change-me-in-prod")
	viper.SetDefault("session.name", "yatube-session")
	viper.SetDefault("session.max_age", 1209600)

	viper.SetDefault("pagination.page_size", 10)

	viper.SetDefault("templates.dir", "web/templates")

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9103)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address:      viper.GetString("http_server.address"),
			Port:         viper.GetInt("http_server.port"),
			ReadTimeout:  viper.GetInt("http_server.read_timeout"),
			WriteTimeout: viper.GetInt("http_server.write_timeout"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		Session: Session{
			Secret: viper.GetString("session.secret"),
			Name:   viper.GetString("session.name"),
			MaxAge: viper.GetInt("session.max_age"),
		},
		Pagination: Pagination{
			PageSize: viper.GetInt("pagination.page_size"),
		},
		Templates: Templates{
			Dir: viper.GetString("templates.dir"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
	}

	return config
}
