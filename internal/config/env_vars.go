package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar        = "PORT"
	appNameVar        = "APP_NAME"
	folderEnvVar      = "FOLDER"
	apiBaseURLVar     = "API_BASE_URL"
	sessionBackendVar = "SESSION_BACKEND"
	redisAddrVar      = "REDIS_ADDR"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Qiimeet Admin")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, "./data")
}

// GetAPIBaseURL returns the base URL of the Qiimeet REST backend the console
// reads from (e.g. "https://api.qiimeet.com/api").
func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "http://localhost:5000/api")
}

// GetSessionBackend selects where the session record is persisted:
// "bolt" (default) or "redis".
func (EnvVars) GetSessionBackend() string {
	return GetEnv(sessionBackendVar, "bolt")
}

func (EnvVars) GetRedisAddr() string {
	return GetEnv(redisAddrVar, "127.0.0.1:6379")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
