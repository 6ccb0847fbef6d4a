package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/githubnext/timeout-lint/pkg/logger"
	"github.com/githubnext/timeout-lint/pkg/styles"
)

var tableLog = logger.New("console:table")

// TableConfig describes a table to render.
type TableConfig struct {
	Title     string
	Headers   []string
	Rows      [][]string
	ShowTotal bool
	TotalRow  []string
}

// RenderTable renders cfg as a bordered table. An empty config renders as
// the empty string.
func RenderTable(cfg TableConfig) string {
	if len(cfg.Headers) == 0 {
		tableLog.Print("No headers, skipping table")
		return ""
	}
	tableLog.Printf("Rendering table: title=%q, columns=%d, rows=%d", cfg.Title, len(cfg.Headers), len(cfg.Rows))

	rows := cfg.Rows
	if cfg.ShowTotal && len(cfg.TotalRow) > 0 {
		rows = append(append([][]string(nil), rows...), cfg.TotalRow)
	}
	totalIndex := -1
	if cfg.ShowTotal && len(cfg.TotalRow) > 0 {
		totalIndex = len(rows) - 1
	}

	styled := isTTY()
	t := table.New().
		Headers(cfg.Headers...).
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if !styled {
				return lipgloss.NewStyle().Padding(0, 1)
			}
			if row == table.HeaderRow || row == totalIndex {
				return styles.TableHeader
			}
			return styles.TableCell
		})
	if styled {
		t = t.BorderStyle(styles.TableBorder)
	}

	var output strings.Builder
	if cfg.Title != "" {
		output.WriteString(applyStyle(styles.TableTitle, cfg.Title))
		output.WriteString("\n")
	}
	output.WriteString(t.String())
	output.WriteString("\n")
	return output.String()
}
