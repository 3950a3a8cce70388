package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	colorpkg "github.com/opencode-ai/themer/color"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// swatch renders a small colored block next to the hex form, or just the
// hex form when color output is disabled.
func swatch(c colorpkg.Color) string {
	if noColor {
		return c.Hex()
	}
	rgb := fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	block := lipgloss.NewStyle().Background(lipgloss.Color(rgb)).Render("  ")
	return fmt.Sprintf("%s %s", block, c.Hex())
}
