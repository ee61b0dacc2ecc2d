package cli

import (
	"strconv"
	"strings"

	"github.com/NomadCrew/tripboard/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Theme colors
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	overBudgetStyle = cellStyle.Foreground(ColorRed)
)

var statusStyles = map[types.TripStatus]lipgloss.Style{
	types.TripStatusPlanned:   cellStyle.Foreground(ColorBlue),
	types.TripStatusActive:    cellStyle.Foreground(ColorGreen),
	types.TripStatusCompleted: cellStyle.Foreground(ColorTextMuted),
}

var boardHeaders = []string{"Trip", "Cities", "Dates", "Length", "Status", "Budget", "Spent", "Used", "Done"}

const (
	colStatus = 4
	colUsed   = 7
	maxCities = 3
)

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(60).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// BoardRows turns cards into table rows in board order.
func BoardRows(cards []types.TripCard) [][]string {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{
			c.Title,
			FormatCities(c.Cities, maxCities),
			FormatDateRange(c.StartDate, c.EndDate),
			FormatDays(c.DurationDays),
			string(c.Status),
			FormatAmount(c.TotalBudget),
			FormatAmount(c.Spent),
			strconv.Itoa(c.BudgetPercentage) + "%",
			strconv.Itoa(c.CompletionPercentage) + "%",
		})
	}
	return rows
}

// RenderTrips renders cards as a bordered table. Over-budget usage is
// highlighted.
func RenderTrips(cards []types.TripCard) string {
	if len(cards) == 0 {
		return labelStyle.Render("  No trips match the current filters.")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(boardHeaders...).
		Rows(BoardRows(cards)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= len(cards) {
				return cellStyle
			}
			card := cards[row]
			switch col {
			case colStatus:
				if style, ok := statusStyles[card.Status]; ok {
					return style
				}
			case colUsed:
				if card.OverBudget {
					return overBudgetStyle
				}
			}
			return cellStyle
		})

	return t.String()
}

// RenderStats renders the stats panel on one line.
func RenderStats(stats types.TripStats) string {
	parts := []string{
		stat("Total trips", strconv.Itoa(stats.TotalTrips)),
		stat("Active", strconv.Itoa(stats.ActiveTrips)),
		stat("Total budget", FormatAmount(stats.TotalBudget)),
		stat("Cities visited", strconv.Itoa(stats.CitiesVisited)),
	}
	return "  " + strings.Join(parts, labelStyle.Render("  ·  "))
}

func stat(label, value string) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(value)
}

// RenderBoard renders the stats line, the trip table and a match count.
func RenderBoard(board types.TripBoard) string {
	var b strings.Builder
	b.WriteString(RenderStats(board.Stats))
	b.WriteString("\n\n")
	b.WriteString(RenderTrips(board.Trips))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  Showing " + strconv.Itoa(board.MatchingTrips) + " of " + strconv.Itoa(board.Stats.TotalTrips) + " trips"))
	if !board.RemoteAvailable {
		b.WriteString(labelStyle.Render(" (trip source unavailable, samples only)"))
	}
	b.WriteString("\n")
	return b.String()
}
