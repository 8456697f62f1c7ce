// Package ui renders the styled console output shown when the dashboard
// starts up. The browser-facing rendering lives in internal/render; this
// package only touches the operator's terminal.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// BannerInfo contains the startup information to display.
type BannerInfo struct {
	Version  string        // Version string (e.g., "v0.3.0")
	Addr     string        // Listen address (e.g., ":48109")
	Hosts    []string      // Monitored hosts in display order
	Interval time.Duration // Poll interval
	Command  string        // Status command run on each host
}

// BannerWidth is the width of the banner divider.
const BannerWidth = 50

// RenderBanner renders the startup banner: name, version, the dashboard
// URL, and the monitored host list.
func RenderBanner(info BannerInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorInfo).
		Bold(true)

	versionStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary)

	labelStyle := lipgloss.NewStyle().
		Foreground(ColorMuted)

	dividerStyle := lipgloss.NewStyle().
		Foreground(ColorMuted)

	var output strings.Builder

	output.WriteString(titleStyle.Render("gpufleet"))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(versionStyle.Render(info.Version))
	}
	output.WriteString("\n")

	output.WriteString(labelStyle.Render("dashboard"))
	output.WriteString("  http://localhost" + displayAddr(info.Addr) + "\n")

	output.WriteString(labelStyle.Render("interval"))
	output.WriteString(fmt.Sprintf("   %s\n", info.Interval))

	output.WriteString(labelStyle.Render("command"))
	output.WriteString("    " + info.Command + "\n")

	output.WriteString(dividerStyle.Render(strings.Repeat("━", BannerWidth)))
	output.WriteString("\n")

	hostStyle := lipgloss.NewStyle().Foreground(ColorPrimary)
	symbolStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	for _, h := range info.Hosts {
		output.WriteString("  ")
		output.WriteString(symbolStyle.Render(SymbolActive))
		output.WriteString(" ")
		output.WriteString(hostStyle.Render(h))
		output.WriteString("\n")
	}

	return output.String()
}

// PrintBanner prints the startup banner to stdout.
func PrintBanner(info BannerInfo) {
	fmt.Print(RenderBanner(info))
}

// displayAddr normalizes a listen address for display. ":48109" is shown
// as-is; a host-qualified address keeps its host part.
func displayAddr(addr string) string {
	if addr == "" {
		return ""
	}
	if strings.HasPrefix(addr, ":") {
		return addr
	}
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return ":" + addr
}
