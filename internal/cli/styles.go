package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent expresso-themed terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8B4513", Dark: "#B5651D"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

// kvPair is a key/value line in a rendered card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned key/value pairs.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	var lines []string
	for _, p := range pairs {
		key := cliMuted.Render(fmt.Sprintf("%-*s", width, p.key))
		lines = append(lines, fmt.Sprintf("%s  %s", key, p.value))
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a bordered card with a check-marked title and
// optional detail blocks.
func renderSuccessCard(title string, details ...string) string {
	body := cliSuccess.Render("✓ ") + lipgloss.NewStyle().Bold(true).Render(title)
	for _, d := range details {
		if d != "" {
			body += "\n\n" + d
		}
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
	return card.Render(body)
}

// banner is the expresso wordmark printed before the wizard.
const banner = `
  _____  ___ __  _ __ ___  ___ ___  ___
 / _ \ \/ / '_ \| '__/ _ \/ __/ __|/ _ \
|  __/>  <| |_) | | |  __/\__ \__ \ (_) |
 \___/_/\_\ .__/|_|  \___||___/___/\___/
          |_|`

// PrintBanner renders the wordmark and version line.
func PrintBanner(out io.Writer, version string) {
	_, _ = fmt.Fprintln(out, cliPrimary.Render(banner))
	_, _ = fmt.Fprintln(out, cliMuted.Render(fmt.Sprintf("  expresso %s", version)))
	_, _ = fmt.Fprintln(out)
}

// PrintWelcomeMessage prints the pre-wizard greeting.
func PrintWelcomeMessage(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Answer a few questions and expresso will scaffold an Express project for you.")
	_, _ = fmt.Fprintln(out, cliMuted.Render("Press Ctrl+C at any time to cancel."))
	_, _ = fmt.Fprintln(out)
}
