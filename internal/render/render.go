// Package render formats boards for terminal output.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bot2048/internal/board"
)

// cellWidth is the width of each right-aligned value.
const cellWidth = 5

// tileStyles is indexed by exponent: 0 is an empty cell, 11 is 2048.
// Exponents past the table reuse the last entry.
var tileStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true),
}

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("245")).
	Padding(0, 1)

// Text renders the board as face values in row-major order, four per line.
func Text(b board.Board) string {
	var sb strings.Builder
	for row := range board.Size {
		for col := range board.Size {
			fmt.Fprintf(&sb, "%*d", cellWidth, b.ExplicitValue(row, col))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Styled renders the board inside a rounded frame with a colour per tile.
func Styled(b board.Board) string {
	lines := make([]string, 0, board.Size)
	for row := range board.Size {
		var sb strings.Builder
		for col := range board.Size {
			v := b.ExplicitValue(row, col)
			cell := fmt.Sprintf("%*s", cellWidth, strconv.Itoa(v))
			if v == 0 {
				cell = fmt.Sprintf("%*s", cellWidth, ".")
			}
			sb.WriteString(styleFor(b.Exponent(row, col)).Render(cell))
		}
		lines = append(lines, sb.String())
	}
	return frameStyle.Render(strings.Join(lines, "\n"))
}

// Grid picks Styled when color is true and Text otherwise.
func Grid(b board.Board, color bool) string {
	if color {
		return Styled(b)
	}
	return Text(b)
}

func styleFor(exp uint8) lipgloss.Style {
	if int(exp) >= len(tileStyles) {
		return tileStyles[len(tileStyles)-1]
	}
	return tileStyles[exp]
}
