package config

import (
	"os"
	"strconv"
)

type CropwatchConfig struct {
	Port        string
	LogDir      string
	FarmCount   int
	SeriesDays  int
	MonitorCron string
	RandomSeed  int64
}

func New() *CropwatchConfig {
	return &CropwatchConfig{
		Port:        getEnvOrDefault("PORT", "8086"),
		LogDir:      getEnvOrDefault("LOG_DIR", "/cropwatch/log"),
		FarmCount:   getEnvIntOrDefault("FARM_COUNT", 50),
		SeriesDays:  getEnvIntOrDefault("SERIES_DAYS", 60),
		MonitorCron: getEnvOrDefault("MONITOR_CRON", "0 6 * * *"),
		RandomSeed:  int64(getEnvIntOrDefault("RANDOM_SEED", 0)),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
