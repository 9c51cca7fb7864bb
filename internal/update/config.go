package update

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type RuntimeConfig struct {
	StatePath            string
	HistoryDBPath        string
	TickInterval         time.Duration
	AutosaveInterval     time.Duration
	DesktopNotifications bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StatePath:            "timer_state.json",
		HistoryDBPath:        "timer_history.db",
		TickInterval:         200 * time.Millisecond,
		AutosaveInterval:     time.Second,
		DesktopNotifications: false,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TIMERD_STATE_PATH")); v != "" {
		cfg.StatePath = v
	}
	if v := strings.TrimSpace(os.Getenv("TIMERD_HISTORY_DB")); v != "" {
		cfg.HistoryDBPath = v
	}
	if v, ok := getEnvInt("TIMERD_TICK_MS"); ok && v > 0 {
		cfg.TickInterval = time.Duration(v) * time.Millisecond
	}
	if v, ok := getEnvInt("TIMERD_AUTOSAVE_MS"); ok && v > 0 {
		cfg.AutosaveInterval = time.Duration(v) * time.Millisecond
	}
	if v, ok := getEnvBool("TIMERD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
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
