package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shutter/internal/pexels"
	"github.com/five82/shutter/internal/prefs"
	"github.com/five82/shutter/internal/state"
)

// renderGallery renders the search controls and the result area.
func (m Model) renderGallery() string {
	controls := m.renderControls()
	height := m.contentHeight()

	var results string
	switch m.snapshot.Phase {
	case state.PhaseLoading:
		results = m.renderPlaceholders()
	case state.PhaseError:
		results = m.renderMessage()
	case state.PhaseLoaded:
		results = m.renderGrid(height)
	default:
		// Idle: only the search controls.
	}

	body := lipgloss.JoinVertical(lipgloss.Left, controls, results)
	return lipgloss.NewStyle().Width(m.width).Height(height + 2).MaxHeight(height + 2).Render(body)
}

// renderControls renders the search input and column selector.
func (m Model) renderControls() string {
	styles := m.theme.Styles()

	inputBorder := m.theme.Border
	if m.inputFocused {
		inputBorder = m.theme.BorderFocus
	}
	input := lipgloss.NewStyle().
		Foreground(lipgloss.Color(inputBorder)).
		Render("▏") + m.input.View()

	var cols []string
	for n := prefs.MinColumns; n <= prefs.MaxColumns; n++ {
		label := strconv.Itoa(n)
		if n == m.columns {
			cols = append(cols, styles.Selected.Bold(true).Render(" "+label+" "))
		} else {
			cols = append(cols, styles.MutedText.Background(lipgloss.Color(m.theme.SurfaceAlt)).Render(" "+label+" "))
		}
	}
	selector := styles.MutedText.Render("Columns ") + strings.Join(cols, "")

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, input) + "\n" +
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, selector)
}

// renderMessage renders the error or empty-result message.
func (m Model) renderMessage() string {
	styles := m.theme.Styles()
	msg := m.snapshot.Message
	if msg == "" {
		msg = pexels.GenericErrorMessage
	}
	return "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.DangerText.Render(msg))
}

// placeholderCount is the page size of the search in flight.
func (m Model) placeholderCount() int {
	if m.snapshot.PageSize > 0 {
		return m.snapshot.PageSize
	}
	return m.columns
}

// renderPlaceholders renders one pulsing stand-in tile per expected result.
func (m Model) renderPlaceholders() string {
	width := m.tileWidth()
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Placeholder))
	inner := strings.Repeat(fill.Render(strings.Repeat("░", max(width-2, 1)))+"\n", TileHeight-3)
	inner += fill.Render(strings.Repeat("░", max(width-2, 1)))

	tiles := make([]string, m.placeholderCount())
	for i := range tiles {
		tiles[i] = m.tileBox(inner, width, m.tileBorderColor(false, true))
	}
	spin := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		m.spinner.View()+m.theme.Styles().MutedText.Render(" Searching..."))
	return spin + "\n" + m.layoutRows(tiles)
}

// renderGrid renders the visible rows of result tiles, scrolled so the
// selected tile stays on screen.
func (m Model) renderGrid(height int) string {
	photos := m.snapshot.Results
	if len(photos) == 0 {
		return ""
	}
	width := m.tileWidth()
	tiles := make([]string, len(photos))
	for i, p := range photos {
		tiles[i] = m.renderTile(p, width, i == m.selected)
	}

	cols := max(m.columns, 1)
	visibleRows := max(height/TileHeight, 1)
	selRow := m.selected / cols
	firstRow := max(selRow-visibleRows+1, 0)
	start := firstRow * cols
	end := min(start+visibleRows*cols, len(tiles))
	return m.layoutRows(tiles[start:end])
}

// renderTile renders one photo tile: id, alt text and photographer.
func (m Model) renderTile(p pexels.Photo, width int, selected bool) string {
	styles := m.theme.Styles()
	inner := max(width-2, 1)

	id := styles.FaintText.Render(truncate(fmt.Sprintf("#%d", p.ID), inner))
	alt := strings.TrimSpace(p.Alt)
	if alt == "" {
		alt = "Untitled"
	}
	altLine := styles.Text.Render(truncate(alt, inner))
	by := styles.MutedText.Render(truncate("by "+p.PhotographerLabel(), inner))
	if selected {
		altLine = styles.AccentText.Bold(true).Render(truncate(alt, inner))
	}

	return m.tileBox(id+"\n"+altLine+"\n"+by, width, m.tileBorderColor(selected, false))
}

// tileBorderColor picks the border for a result or placeholder tile.
func (m Model) tileBorderColor(selected, placeholder bool) string {
	switch {
	case selected:
		return m.theme.BorderFocus
	case placeholder:
		return m.theme.BorderMuted
	default:
		return m.theme.Border
	}
}

func (m Model) tileBox(content string, width int, border string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(max(width-2, 1)).
		Height(TileHeight - 2).
		MaxHeight(TileHeight).
		Render(content)
}

// tileWidth splits the screen width evenly between the columns.
func (m Model) tileWidth() int {
	cols := max(m.columns, 1)
	usable := m.width - TileGap*(cols-1)
	return max(usable/cols, 6)
}

// layoutRows arranges tiles left to right, m.columns per row.
func (m Model) layoutRows(tiles []string) string {
	cols := max(m.columns, 1)
	gap := strings.Repeat(" ", TileGap)

	var rows []string
	for start := 0; start < len(tiles); start += cols {
		end := min(start+cols, len(tiles))
		var parts []string
		for i, t := range tiles[start:end] {
			if i > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, t)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(rows, "\n")
}
