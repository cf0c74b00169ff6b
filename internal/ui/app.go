// Package ui provides the Bubble Tea gallery browser.
package ui

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shutter/internal/pexels"
	"github.com/five82/shutter/internal/prefs"
	"github.com/five82/shutter/internal/state"
)

// View represents the active route.
type View int

const (
	// ViewGallery is the search UI plus results.
	ViewGallery View = iota
	// ViewDetail shows one photo, resolved by id from the last results.
	ViewDetail
)

// SearchController is the part of search.Controller the UI drives.
type SearchController interface {
	SetQuery(query string)
	SetColumns(n int) (int, error)
	Columns() int
	Snapshot() state.Snapshot
	Updates() <-chan struct{}
}

// PhotoFetcher loads previews and saves originals. Implemented by *pexels.Client.
type PhotoFetcher interface {
	FetchImage(ctx context.Context, url string) (image.Image, error)
	Download(ctx context.Context, photo pexels.Photo, dir string) (string, error)
}

// Options configures the UI.
type Options struct {
	Context     context.Context
	Controller  SearchController
	Photos      PhotoFetcher // nil disables previews and downloads
	DownloadDir string
	DarkMode    bool
	// InitialPhotoID opens the detail route directly at startup. With no
	// results in memory the lookup misses and the NotFound view is shown.
	InitialPhotoID string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	controller  SearchController
	photos      PhotoFetcher
	downloadDir string
	keys        keyMap

	// UI state
	theme       Theme
	darkMode    bool
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Gallery state
	input        textinput.Model
	inputFocused bool
	spinner      spinner.Model
	snapshot     state.Snapshot
	columns      int
	selected     int
	notice       string // transient gallery status line

	// Detail state
	detailID       string
	detailViewport viewport.Model
	preview        previewState
	detailStatus   string
}

// previewState caches the decoded preview for the photo on screen.
type previewState struct {
	id       string
	img      image.Image
	err      error
	rendered string
	cols     int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.Placeholder = "Search for Photos"
	input.Prompt = "/ "
	input.CharLimit = 120
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	columns := prefs.DefaultColumns
	var snap state.Snapshot
	if opts.Controller != nil {
		columns = opts.Controller.Columns()
		snap = opts.Controller.Snapshot()
	}

	m := Model{
		ctx:          ctx,
		controller:   opts.Controller,
		photos:       opts.Photos,
		downloadDir:  opts.DownloadDir,
		keys:         DefaultKeyMap(),
		theme:        ThemeFor(opts.DarkMode),
		darkMode:     opts.DarkMode,
		currentView:  ViewGallery,
		input:        input,
		inputFocused: true,
		spinner:      spin,
		snapshot:     snap,
		columns:      columns,
	}
	if id := strings.TrimSpace(opts.InitialPhotoID); id != "" {
		m.currentView = ViewDetail
		m.detailID = id
		m.input.Blur()
		m.inputFocused = false
	}
	m.applyInputStyles()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		textinput.Blink,
		m.spinner.Tick,
	}
	if m.controller != nil {
		cmds = append(cmds, waitForUpdateCmd(m.controller))
	}
	if cmd := m.loadPreviewCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(m.width, m.contentHeight())
		}
		m.ready = true
		m.input.Width = min(60, max(m.width-20, 10))
		m.detailViewport.Width = m.width
		m.detailViewport.Height = m.contentHeight()
		m.preview.rendered = ""
		m.updateDetailViewport()
		return m, nil

	case searchUpdateMsg:
		m.snapshot = state.Snapshot(msg)
		m.clampSelection()
		m.updateDetailViewport()
		var cmds []tea.Cmd
		if m.controller != nil {
			cmds = append(cmds, waitForUpdateCmd(m.controller))
		}
		if cmd := m.loadPreviewCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case previewMsg:
		if msg.id != m.detailID {
			return m, nil
		}
		m.preview = previewState{id: msg.id, img: msg.img, err: msg.err}
		m.updateDetailViewport()
		return m, nil

	case downloadMsg:
		if msg.err != nil {
			m.detailStatus = "Download failed: " + msg.err.Error()
		} else {
			m.detailStatus = "Saved " + msg.path
		}
		m.updateDetailViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.inputFocused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.currentView == ViewDetail {
		return m.handleDetailKey(msg)
	}
	if m.inputFocused {
		return m.handleSearchInputKey(msg)
	}
	return m.handleGalleryKey(msg)
}

// handleSearchInputKey feeds the text input and forwards edits to the
// controller, which owns debouncing and the empty-query guard.
func (m Model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.LeaveSearch) {
		m.input.Blur()
		m.inputFocused = false
		m.applyInputStyles()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before && m.controller != nil {
		m.controller.SetQuery(after)
	}
	return m, cmd
}

// handleGalleryKey processes keys while browsing results.
func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.ToggleDark):
		m.toggleDarkMode()
	case key.Matches(msg, m.keys.FocusSearch):
		m.inputFocused = true
		m.applyInputStyles()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-m.columns)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(m.columns)
	case key.Matches(msg, m.keys.FewerCols):
		m.setColumns(m.columns - 1)
	case key.Matches(msg, m.keys.MoreCols):
		m.setColumns(m.columns + 1)
	case key.Matches(msg, m.keys.SetCols):
		m.setColumns(int(msg.String()[0] - '0'))
	}
	return m, nil
}

// handleDetailKey processes keys on the detail route.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.ToggleDark):
		m.toggleDarkMode()
		m.updateDetailViewport()
	case key.Matches(msg, m.keys.Back):
		m.showGallery()
	case key.Matches(msg, m.keys.Download):
		return m, m.downloadCmd()
	case key.Matches(msg, m.keys.ScrollUp):
		m.detailViewport.LineUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.detailViewport.LineDown(1)
	}
	return m, nil
}

// openSelected navigates to the detail route for the selected tile.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if m.snapshot.Phase != state.PhaseLoaded || len(m.snapshot.Results) == 0 {
		return m, nil
	}
	photo := m.snapshot.Results[m.selected]
	m.showDetail(photo.IDString())
	return m, m.loadPreviewCmd()
}

func (m *Model) showDetail(id string) {
	m.currentView = ViewDetail
	m.detailID = id
	m.detailStatus = ""
	if m.preview.id != id {
		m.preview = previewState{}
	}
	m.detailViewport.GotoTop()
	m.updateDetailViewport()
}

func (m *Model) showGallery() {
	m.currentView = ViewGallery
	m.detailStatus = ""
}

func (m *Model) toggleDarkMode() {
	m.darkMode = !m.darkMode
	m.theme = ThemeFor(m.darkMode)
	m.applyInputStyles()
}

// applyInputStyles colours the search input for the theme, highlighting it
// while it has focus.
func (m *Model) applyInputStyles() {
	base := lipgloss.NewStyle()
	if m.inputFocused {
		base = base.Background(lipgloss.Color(m.theme.FocusBg))
	}
	m.input.PromptStyle = base.Foreground(lipgloss.Color(m.theme.Accent))
	m.input.TextStyle = base.Foreground(lipgloss.Color(m.theme.Text))
	m.input.PlaceholderStyle = base.Foreground(lipgloss.Color(m.theme.Faint))
	m.input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
}

func (m *Model) setColumns(n int) {
	if m.controller == nil {
		m.columns = prefs.ClampColumns(n)
		return
	}
	got, err := m.controller.SetColumns(n)
	m.columns = got
	m.notice = ""
	if err != nil {
		m.notice = "Could not save layout preference"
	}
	m.clampSelection()
}

func (m *Model) moveSelection(delta int) {
	n := len(m.snapshot.Results)
	if n == 0 || m.snapshot.Phase != state.PhaseLoaded {
		return
	}
	next := m.selected + delta
	if next < 0 || next >= n {
		return
	}
	m.selected = next
}

func (m *Model) clampSelection() {
	n := len(m.snapshot.Results)
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = min(max(m.selected, 0), n-1)
}

// lookupDetail resolves the detail route against the current results.
func (m Model) lookupDetail() (pexels.Photo, bool) {
	return state.Find(m.detailID, m.snapshot.Results)
}

// contentHeight is the space left for results or detail content.
func (m Model) contentHeight() int {
	return max(m.height-chromeHeight, 1)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.currentView {
	case ViewDetail:
		b.WriteString(m.detailViewport.View())
	default:
		b.WriteString(m.renderGallery())
	}

	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

// Messages

type searchUpdateMsg state.Snapshot

type previewMsg struct {
	id  string
	img image.Image
	err error
}

type downloadMsg struct {
	id   string
	path string
	err  error
}

// Commands

// waitForUpdateCmd blocks until the controller signals a change and returns
// the fresh snapshot. Update re-issues it after every delivery.
func waitForUpdateCmd(c SearchController) tea.Cmd {
	updates := c.Updates()
	return func() tea.Msg {
		<-updates
		return searchUpdateMsg(c.Snapshot())
	}
}

func (m Model) loadPreviewCmd() tea.Cmd {
	if m.photos == nil || m.currentView != ViewDetail {
		return nil
	}
	photo, ok := m.lookupDetail()
	if !ok || photo.Src.Medium == "" {
		return nil
	}
	if m.preview.id == photo.IDString() && (m.preview.img != nil || m.preview.err != nil) {
		return nil
	}
	ctx, fetcher, id, url := m.ctx, m.photos, photo.IDString(), photo.Src.Medium
	return func() tea.Msg {
		img, err := fetcher.FetchImage(ctx, url)
		return previewMsg{id: id, img: img, err: err}
	}
}

func (m Model) downloadCmd() tea.Cmd {
	if m.photos == nil {
		return nil
	}
	photo, ok := m.lookupDetail()
	if !ok {
		return nil
	}
	ctx, fetcher, dir := m.ctx, m.photos, m.downloadDir
	return func() tea.Msg {
		path, err := fetcher.Download(ctx, photo, dir)
		return downloadMsg{id: photo.IDString(), path: path, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if err != nil && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
