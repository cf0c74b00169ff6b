package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/shutter/internal/preview"
)

// updateDetailViewport rebuilds the detail content for the current route.
func (m *Model) updateDetailViewport() {
	if !m.ready || m.currentView != ViewDetail {
		return
	}
	m.detailViewport.SetContent(m.renderDetailContent())
}

func (m *Model) renderDetailContent() string {
	styles := m.theme.Styles()
	photo, ok := m.lookupDetail()
	if !ok {
		return m.renderNotFound()
	}

	labelWidth := 14
	label := func(s string) string {
		return styles.MutedText.Render(padRight(s, labelWidth))
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Photo Details"))
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("  #%d", photo.ID)))
	b.WriteString("\n\n")

	b.WriteString(m.previewBlock())
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render("Photographer"))
	b.WriteString("\n")
	b.WriteString(label("Name"))
	b.WriteString(styles.Text.Render(photo.PhotographerLabel()))
	b.WriteString("\n")
	if photo.PhotographerURL != "" {
		b.WriteString(label("Profile"))
		b.WriteString(termenv.Hyperlink(photo.PhotographerURL, "View Photographer's Profile"))
		b.WriteString("\n")
		b.WriteString(label(""))
		b.WriteString(styles.FaintText.Render(truncate(photo.PhotographerURL, max(m.width-labelWidth-2, 10))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.AccentText.Bold(true).Render("Image Details"))
	b.WriteString("\n")
	b.WriteString(label("Resolution"))
	b.WriteString(styles.Text.Render(photo.Resolution()))
	b.WriteString("\n")
	if alt := strings.TrimSpace(photo.Alt); alt != "" {
		b.WriteString(label("Description"))
		b.WriteString(styles.Text.Render(truncate(alt, max(m.width-labelWidth-2, 10))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Bold(true)
	b.WriteString(keyStyle.Render("d"))
	b.WriteString(styles.Text.Render(" Download Original Image"))
	if m.detailStatus != "" {
		b.WriteString("  ")
		if strings.HasPrefix(m.detailStatus, "Download failed") {
			b.WriteString(styles.DangerText.Render(m.detailStatus))
		} else {
			b.WriteString(styles.SuccessText.Render(m.detailStatus))
		}
	}
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("esc"))
	b.WriteString(styles.Text.Render(" Back to Gallery"))
	return b.String()
}

// previewBlock returns the half-block rendering of the photo, reusing the
// cached rendering while the width is unchanged.
func (m *Model) previewBlock() string {
	styles := m.theme.Styles()
	switch {
	case m.photos == nil:
		return styles.FaintText.Render("Preview unavailable")
	case m.preview.err != nil:
		return styles.DangerText.Render("Preview failed: " + m.preview.err.Error())
	case m.preview.img == nil || m.preview.id != m.detailID:
		return styles.MutedText.Render("Loading preview...")
	}

	cols := max(min(m.width-2, 120), 1)
	if m.preview.rendered == "" || m.preview.cols != cols {
		m.preview.rendered = preview.Render(m.preview.img, cols, PreviewMaxRows)
		m.preview.cols = cols
	}
	return m.preview.rendered
}

func (m *Model) renderNotFound() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Bold(true)
	msg := styles.DangerText.Render("Photo not found!") + "\n\n" +
		keyStyle.Render("esc") + styles.Text.Render(" Back to Gallery")
	return lipgloss.Place(max(m.width, 1), m.contentHeight(), lipgloss.Center, lipgloss.Center, msg)
}
