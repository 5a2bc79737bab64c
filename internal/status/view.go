package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// WrotePrefix starts the first line of Render's output.
const WrotePrefix = "Wrote cheatsheet to:"

// Render renders the run summary. The first line always names the written file.
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(WrotePrefix) + " " + valueStyle.Render(data.Path) + "\n")

	fields := []string{
		field("Format", data.Format),
		field("Names", fmt.Sprintf("%d", data.Names)),
		field("Groups", fmt.Sprintf("%d", data.Groups)),
		field("Size", humanize.Bytes(uint64(data.FileSize))),
	}
	b.WriteString("   " + strings.Join(fields, subtleStyle.Render(" · ")) + "\n")

	if len(data.Keys) > 0 {
		b.WriteString("   " + keyStyle.Render("Keys: ") + subtleStyle.Render(strings.Join(data.Keys, " ")) + "\n")
	}

	config := "built-in defaults"
	if data.ConfigPath != "" {
		config = data.ConfigPath
	}
	b.WriteString("   " + keyStyle.Render("Config: ") + subtleStyle.Render(config))

	if data.Timing != "" {
		b.WriteString("\n   " + keyStyle.Render("Timing: ") + subtleStyle.Render(data.Timing))
	}

	return b.String()
}

func field(key, value string) string {
	return keyStyle.Render(key+": ") + valueStyle.Render(value)
}
