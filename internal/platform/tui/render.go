package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/minofall/minofall/internal/mino"
)

// shapeStyles maps each tetromino to its display color.
var shapeStyles = map[mino.Shape]lipgloss.Style{
	mino.ShapeJ: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	mino.ShapeL: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	mino.ShapeS: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	mino.ShapeZ: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	mino.ShapeT: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	mino.ShapeI: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	mino.ShapeO: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(16)
	ghostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// boardCell is one rendered cell of the visible field.
type boardCell struct {
	shape mino.Shape
	ghost bool
}

// boardGrid folds the field, the drop shadow and the active tile into
// a visible grid, bottom-up like the engine's rows.
func boardGrid(p *mino.Playground) [mino.FieldHeight][mino.Columns]boardCell {
	var grid [mino.FieldHeight][mino.Columns]boardCell

	field := p.Field()
	for y := range mino.FieldHeight {
		cells := field.RowCells(y, 0)
		for x, v := range cells {
			grid[y][x].shape = mino.Shape(v)
		}
	}

	tile := p.CurrentTile()
	if tile == nil {
		return grid
	}
	shape := mino.ShapeOf(tile)

	paint := func(st mino.Placement, ghost bool) {
		for _, px := range tile.Pixels(st.Dir) {
			x := st.X + int(px.At.X)
			y := st.Y + int(px.At.Y)
			if y < 0 || y >= mino.FieldHeight || x < 0 || x >= mino.Columns {
				continue
			}
			if ghost && grid[y][x].shape != 0 {
				continue
			}
			grid[y][x] = boardCell{shape: shape, ghost: ghost}
		}
	}
	paint(p.ShadowPlacement(), true)
	paint(p.CurrentPlacement(), false)

	return grid
}

// renderBoard draws the playing field, top row first, two runes per
// cell.
func renderBoard(p *mino.Playground) string {
	grid := boardGrid(p)

	var sb strings.Builder
	for y := mino.FieldHeight - 1; y >= 0; y-- {
		for x := range mino.Columns {
			cell := grid[y][x]
			switch {
			case cell.shape == 0:
				sb.WriteString("  ")
			case cell.ghost:
				sb.WriteString(ghostStyle.Render("░░"))
			default:
				sb.WriteString(shapeStyles[cell.shape].Render("██"))
			}
		}
		if y > 0 {
			sb.WriteRune('\n')
		}
	}
	return boardStyle.Render(sb.String())
}

// renderMiniTile draws a tile cropped to its spawn bounding box, for
// the hold and preview boxes.
func renderMiniTile(t *mino.Tile) string {
	if t == nil {
		return dimStyle.Render("--")
	}

	min, max := t.BoundingBox(mino.DirSpawn)
	w := int(max.X-min.X) + 1
	h := int(max.Y-min.Y) + 1
	cells := make([][]bool, h)
	for i := range cells {
		cells[i] = make([]bool, w)
	}
	for _, px := range t.Pixels(mino.DirSpawn) {
		cells[int(px.At.Y-min.Y)][int(px.At.X-min.X)] = true
	}

	style := shapeStyles[mino.ShapeOf(t)]
	var sb strings.Builder
	for y := h - 1; y >= 0; y-- {
		for x := range w {
			if cells[y][x] {
				sb.WriteString(style.Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
		if y > 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// renderSidePanel draws the hold slot, the preview queue and the
// session statistics.
func renderSidePanel(m GameModel) string {
	p := m.playground

	var hold strings.Builder
	hold.WriteString(titleStyle.Render("HOLD"))
	hold.WriteRune('\n')
	hold.WriteString(renderMiniTile(p.HeldTile()))
	if !p.SwapEnabled() && p.HeldTile() != nil {
		hold.WriteRune('\n')
		hold.WriteString(dimStyle.Render("locked"))
	}

	var next strings.Builder
	next.WriteString(titleStyle.Render("NEXT"))
	for i := range p.NumPreviews() {
		next.WriteRune('\n')
		next.WriteString(renderMiniTile(p.Preview(i)))
		next.WriteRune('\n')
	}

	var stats strings.Builder
	stats.WriteString(titleStyle.Render("STATS"))
	stats.WriteRune('\n')
	fmt.Fprintf(&stats, "lines  %d\n", m.stats.lines)
	fmt.Fprintf(&stats, "pieces %d\n", m.stats.pieces)
	fmt.Fprintf(&stats, "spins  %d\n", m.stats.spins)
	fmt.Fprintf(&stats, "best   %d", m.bestLines)

	return lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(hold.String()),
		panelStyle.Render(next.String()),
		panelStyle.Render(stats.String()),
	)
}

// renderSession composes the whole screen for one game session.
func renderSession(m GameModel) string {
	main := lipgloss.JoinHorizontal(lipgloss.Top,
		renderBoard(m.playground),
		" ",
		renderSidePanel(m),
	)

	var footer string
	if m.stats.gameOver {
		footer = titleStyle.Render(gameOverLabel(m.playground.State())) +
			dimStyle.Render("  r restart / q quit")
	} else {
		footer = dimStyle.Render("←→ move  ↓ soft  space hard  z/x spin  a 180  c hold  q quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, footer)
}

func gameOverLabel(s mino.State) string {
	switch s {
	case mino.TopOut:
		return "TOP OUT"
	case mino.Exhausted:
		return "OUT OF TILES"
	case mino.Completed:
		return "FINISHED"
	default:
		return "GAME OVER"
	}
}
