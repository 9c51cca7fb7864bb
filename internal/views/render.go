package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Body       string
	ErrorLine  string
	StatusLine string
	Footer     string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	alertBandStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("15")).
			Align(lipgloss.Center)
	alertTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	alertHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

func RenderApp(data AppData) string {
	lines := []string{
		headerStyle.Render(data.Header),
		panelStyle.Render(data.Body),
	}
	if data.ErrorLine != "" {
		lines = append(lines, errorStyle.Render(data.ErrorLine))
	}
	if data.StatusLine != "" {
		lines = append(lines, statusStyle.Render(data.StatusLine))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

type AlertScreenData struct {
	Label      string
	FinishedAt string
	Width      int
	Height     int
}

// RenderAlertScreen fills the whole window with the "time is up" band. It
// replaces the normal view entirely while an alert is presented.
func RenderAlertScreen(data AlertScreenData) string {
	w, h := data.Width, data.Height
	if w <= 0 {
		w = 100
	}
	if h <= 0 {
		h = 30
	}
	band := alertBandStyle.Render(strings.Join([]string{
		alertTitleStyle.Render("Time is up!"),
		"",
		"Label: " + data.Label,
		"Finished at: " + data.FinishedAt,
		"",
		alertHintStyle.Render("Press ESC / Enter to dismiss"),
	}, "\n"))
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, band, lipgloss.WithWhitespaceBackground(lipgloss.Color("235")))
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
