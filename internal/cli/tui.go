package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

const (
	panelWidth = 44
	fastStep   = 10
)

// =============================================================================
// MapModel - Interactive grid viewer
// =============================================================================

// MapModel is the bubbletea model that browses a tile store. The map is
// centered on the cursor; every cell shows the glyph of its top feature.
type MapModel struct {
	Store  *geotiles.Store
	Cursor geotiles.GridCoord
	Width  int
	Height int
}

// NewMapModel creates a viewer centered on (lat, lon).
func NewMapModel(store *geotiles.Store, lat, lon float64) MapModel {
	return MapModel{
		Store:  store,
		Cursor: geotiles.CoordFromLatLon(lat, lon),
		Width:  80,
		Height: 24,
	}
}

func (m MapModel) Init() tea.Cmd {
	return nil
}

func (m MapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.Cursor.Y++
		case "down", "j":
			m.Cursor.Y--
		case "left", "h":
			m.Cursor.X--
		case "right", "l":
			m.Cursor.X++
		case "K":
			m.Cursor.Y += fastStep
		case "J":
			m.Cursor.Y -= fastStep
		case "H":
			m.Cursor.X -= fastStep
		case "L":
			m.Cursor.X += fastStep
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m, nil
}

// mapSize returns the number of columns and rows available for the grid.
func (m MapModel) mapSize() (cols, rows int) {
	cols = m.Width - panelWidth - 1
	rows = m.Height - 2
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func (m MapModel) View() string {
	cols, rows := m.mapSize()
	min := geotiles.GridCoord{X: m.Cursor.X - int32(cols/2), Y: m.Cursor.Y - int32(rows-1-rows/2)}
	max := geotiles.GridCoord{X: min.X + int32(cols) - 1, Y: m.Cursor.Y + int32(rows/2)}

	// One read lock for the whole frame.
	tops := make(map[geotiles.GridCoord]geotiles.Category)
	var cursorCell []*geotiles.Feature
	m.Store.Window(min, max, func(c geotiles.GridCoord, cell []*geotiles.Feature) {
		tops[c] = cell[0].Category()
		if c == m.Cursor {
			cursorCell = append([]*geotiles.Feature(nil), cell...)
		}
	})

	var grid strings.Builder
	for y := max.Y; y >= min.Y; y-- {
		for x := min.X; x <= max.X; x++ {
			c := geotiles.GridCoord{X: x, Y: y}
			top, ok := tops[c]
			switch {
			case c == m.Cursor && ok:
				grid.WriteString(styleCursor.Render(glyphOf(top).Symbol))
			case c == m.Cursor:
				grid.WriteString(styleCursor.Render(iconEmpty))
			case ok:
				grid.WriteString(renderGlyph(top))
			default:
				grid.WriteString(styleDim.Render(iconEmpty))
			}
		}
		if y > min.Y {
			grid.WriteString("\n")
		}
	}

	lat, lon := m.Cursor.LatLon()
	var panel strings.Builder
	panel.WriteString(styleTitle.Render("Cell " + m.Cursor.String()))
	panel.WriteString("\n")
	panel.WriteString(styleDim.Render(fmt.Sprintf("%.5f, %.5f", lat, lon)))
	panel.WriteString("\n\n")
	panel.WriteString(describeCell(cursorCell))

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		grid.String(),
		" ",
		stylePanel.Width(panelWidth-4).Render(panel.String())))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("←↓↑→/hjkl move  HJKL fast  q quit"))
	return b.String()
}
