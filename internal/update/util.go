package update

import (
	"os"
	"strings"
)

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func DesktopNotificationsEnabledFromEnv() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("TIMERD_DESKTOP_NOTIFICATIONS")))
	return v == "1" || v == "true" || v == "yes"
}
