package update

import (
	"testing"
	"time"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.StatePath != "timer_state.json" || cfg.HistoryDBPath != "timer_history.db" {
		t.Fatalf("unexpected path defaults: %+v", cfg)
	}
	if cfg.TickInterval != 200*time.Millisecond || cfg.AutosaveInterval != time.Second {
		t.Fatalf("unexpected interval defaults: %+v", cfg)
	}
	if cfg.DesktopNotifications {
		t.Fatalf("desktop notifications must default off: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("TIMERD_STATE_PATH", "state/custom.json")
	t.Setenv("TIMERD_HISTORY_DB", "state/history.db")
	t.Setenv("TIMERD_TICK_MS", "500")
	t.Setenv("TIMERD_AUTOSAVE_MS", "2000")
	t.Setenv("TIMERD_DESKTOP_NOTIFICATIONS", "true")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.StatePath != "state/custom.json" || cfg.HistoryDBPath != "state/history.db" {
		t.Fatalf("unexpected path overrides: %+v", cfg)
	}
	if cfg.TickInterval != 500*time.Millisecond || cfg.AutosaveInterval != 2*time.Second {
		t.Fatalf("unexpected interval overrides: %+v", cfg)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications true from env")
	}
}

func TestRuntimeConfigIgnoresBadEnv(t *testing.T) {
	t.Setenv("TIMERD_TICK_MS", "fast")
	t.Setenv("TIMERD_AUTOSAVE_MS", "-100")
	t.Setenv("TIMERD_DESKTOP_NOTIFICATIONS", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.TickInterval != 200*time.Millisecond || cfg.AutosaveInterval != time.Second {
		t.Fatalf("bad values must keep defaults: %+v", cfg)
	}
	if cfg.DesktopNotifications {
		t.Fatalf("unparseable bool must keep default: %+v", cfg)
	}
}
