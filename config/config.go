package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	// Backend
	ServerAddr string
	DBPath     string
	JWTSecret  string

	// Web client
	WebAddr     string
	APIBaseURL  string
	SessionFile string
}

// Init loads the config using Viper and returns it
func Init() *Config {
	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("DB_PATH", "data/badger")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")

	viper.SetDefault("WEB_ADDR", ":3000")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("SESSION_FILE", "data/session.json")

	// Load env variables
	viper.AutomaticEnv()

	// Optional config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	_ = viper.ReadInConfig() // ignore error if no file

	return &Config{
		ServerAddr:  viper.GetString("SERVER_ADDR"),
		DBPath:      viper.GetString("DB_PATH"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		WebAddr:     viper.GetString("WEB_ADDR"),
		APIBaseURL:  viper.GetString("API_BASE_URL"),
		SessionFile: viper.GetString("SESSION_FILE"),
	}
}
