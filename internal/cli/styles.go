package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/journl/internal/models"
)

var (
	Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Italic(true)

	rangeColors = map[models.PercentageRange]lipgloss.Color{
		models.RangePoor:      lipgloss.Color("196"),
		models.RangeNeedsWork: lipgloss.Color("214"),
		models.RangeGood:      lipgloss.Color("220"),
		models.RangeGreat:     lipgloss.Color("42"),
	}
)

// RangeStyle colours text by percentage range.
func RangeStyle(r models.PercentageRange) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(rangeColors[r])
}

// Percentage renders pct in its range colour with the range label.
func Percentage(pct int) string {
	r := models.RangeOf(pct)
	return RangeStyle(r).Render(fmt.Sprintf("%d%% (%s)", pct, r.Label()))
}

// Bar draws a width-cell progress bar for pct.
func Bar(pct, width int) string {
	pct = max(0, min(100, pct))
	filled := pct * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return RangeStyle(models.RangeOf(pct)).Render(bar)
}

// HeatCell renders one heatmap square.
func HeatCell(pct int, hasHabits bool) string {
	if !hasHabits {
		return Muted.Render("·")
	}
	return RangeStyle(models.RangeOf(pct)).Render("■")
}
