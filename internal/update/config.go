package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DBPath               string
	RefreshSeconds       int
	DesktopNotifications bool
	CycleTracking        bool
	Gender               string
	CycleStatePath       string
	SchedulerBuffer      int
	SourceSeed           int64
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:               "vitald.db",
		RefreshSeconds:       60,
		DesktopNotifications: false,
		CycleTracking:        false,
		Gender:               "female",
		SchedulerBuffer:      64,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("VITALD_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v, ok := getEnvInt("VITALD_REFRESH_SECONDS"); ok && v > 0 {
		cfg.RefreshSeconds = v
	}
	if v, ok := getEnvBool("VITALD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvBool("VITALD_CYCLE_TRACKING"); ok {
		cfg.CycleTracking = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("VITALD_GENDER"))); v != "" {
		cfg.Gender = v
	}
	if v := strings.TrimSpace(os.Getenv("VITALD_STATE_PATH")); v != "" {
		cfg.CycleStatePath = v
	}
	if v, ok := getEnvInt("VITALD_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v, ok := getEnvInt("VITALD_SOURCE_SEED"); ok && v != 0 {
		cfg.SourceSeed = int64(v)
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
