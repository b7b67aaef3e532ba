package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shift-shift/internal/core"
)

// MenuTheme holds the styles of the lobby, the scoreboard and the game
// screen cells.
type MenuTheme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Info        lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Panel       lipgloss.Style
	Empty       lipgloss.Style
	TableHeader lipgloss.Style
	TableActive lipgloss.Style

	Cells map[core.Color]lipgloss.Style
}

// DefaultMenuTheme returns the office-terminal look.
func DefaultMenuTheme() MenuTheme {
	return MenuTheme{
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Info:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),

		Cells: cellPalette(map[core.Color]string{
			core.ColorRed:           "1",
			core.ColorGreen:         "2",
			core.ColorYellow:        "3",
			core.ColorBlue:          "4",
			core.ColorMagenta:       "5",
			core.ColorCyan:          "6",
			core.ColorWhite:         "7",
			core.ColorBrightRed:     "9",
			core.ColorBrightGreen:   "10",
			core.ColorBrightYellow:  "11",
			core.ColorBrightBlue:    "12",
			core.ColorBrightMagenta: "13",
			core.ColorBrightCyan:    "14",
			core.ColorBrightWhite:   "15",
			core.ColorOrange:        "208",
			core.ColorGray:          "245",
			core.ColorDim:           "238",
		}),
	}
}

func cellPalette(ansi map[core.Color]string) map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansi {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// cell returns the style for a screen color, plain for unknown ones.
func (t MenuTheme) cell(c core.Color) lipgloss.Style {
	if style, ok := t.Cells[c]; ok {
		return style
	}
	return t.Cells[core.ColorDefault]
}

var menuTheme = DefaultMenuTheme()

// RenderScreen converts a Screen buffer to a styled string. Each run of
// same-colored cells on a row is styled once.
func RenderScreen(s *core.Screen) string {
	var sb, run strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(menuTheme.cell(color).Render(run.String()))
		}
	}
	return sb.String()
}
