package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/jumpgrid/gridgraph"
	"github.com/katalvlaran/jumpgrid/jps"
)

// Map glyphs.
const (
	glyphWall     = '#'
	glyphPath     = '*'
	glyphWaypoint = 'o'
	glyphStart    = 'S'
	glyphEnd      = 'E'
)

var (
	colorWall  = lipgloss.Color("240") // Dim gray
	colorPath  = lipgloss.Color("36")  // Teal
	colorPoint = lipgloss.Color("220") // Amber
	colorEnd   = lipgloss.Color("35")  // Green

	styleWall     = lipgloss.NewStyle().Foreground(colorWall)
	stylePath     = lipgloss.NewStyle().Foreground(colorPath)
	styleWaypoint = lipgloss.NewStyle().Foreground(colorPoint).Bold(true)
	styleEndpoint = lipgloss.NewStyle().Foreground(colorEnd).Bold(true)
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorPath)
	styleDim      = lipgloss.NewStyle().Foreground(colorWall)
)

// renderMap draws g with the interpolated path overlaid. Weighted cells keep
// their digit. With styled=false the output is plain ASCII.
func renderMap(g *gridgraph.Grid, path jps.Path, styled bool) string {
	rows := g.Rows()
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		cells[y] = []rune(row)
	}
	for _, c := range path.Cells() {
		cells[c.Y][c.X] = glyphPath
	}
	for _, c := range path {
		cells[c.Y][c.X] = glyphWaypoint
	}
	if len(path) > 0 {
		first, last := path[0], path[len(path)-1]
		cells[first.Y][first.X] = glyphStart
		cells[last.Y][last.X] = glyphEnd
	}

	var sb strings.Builder
	for y, row := range cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range row {
			sb.WriteString(paint(r, styled))
		}
	}

	return sb.String()
}

func paint(r rune, styled bool) string {
	s := string(r)
	if !styled {
		return s
	}
	switch r {
	case glyphWall:
		return styleWall.Render(s)
	case glyphPath:
		return stylePath.Render(s)
	case glyphWaypoint:
		return styleWaypoint.Render(s)
	case glyphStart, glyphEnd:
		return styleEndpoint.Render(s)
	}

	return s
}

func title(s string, styled bool) string {
	if !styled {
		return s
	}

	return styleTitle.Render(s)
}

func dim(s string, styled bool) string {
	if !styled {
		return s
	}

	return styleDim.Render(s)
}
