package tacboard

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"tacboard/analyze"
	"tacboard/builderpanel"
	"tacboard/catalog"
	"tacboard/draft"
	nt "tacboard/entity"
	"tacboard/librarypanel"
	"tacboard/message"
	"tacboard/metriclib"
	"tacboard/metricspanel"
	"tacboard/suggest"
)

const footerHeight = 2

// Tab indicates which tab is currently displayed.
type Tab int

const (
	MetricsTab Tab = iota
	BuilderTab
	LibraryTab
)

var tabNames = []string{"Metrics", "Builder", "Library"}

// Model is the bubbletea model for the workbench TUI.
type Model struct {
	logger      nt.Logger
	ctx         context.Context
	errorString string

	CurrentTab Tab

	MetricsPanel metricspanel.Panel
	BuilderPanel builderpanel.Panel
	LibraryPanel librarypanel.Panel

	Width  int
	Height int
}

// NewModel wires the three tabs from config: catalog and library come
// from their configured files when set, built-ins otherwise.
func NewModel(ctx context.Context, cfg Config, lgr nt.Logger) (model Model, err error) {

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return
		}
	}

	entries := metriclib.Library()
	if cfg.LibraryPath != "" {
		entries, err = metriclib.LoadLibrary(cfg.LibraryPath)
		if err != nil {
			return
		}
	}

	model = Model{
		logger:       lgr,
		ctx:          ctx,
		CurrentTab:   MetricsTab,
		MetricsPanel: metricspanel.New(metriclib.Predefined(), analyze.New(cfg.AnalyzeDelay())),
		BuilderPanel: builderpanel.New(draft.New(cat), suggest.New(cfg.SuggestDelay())),
		LibraryPanel: librarypanel.New(entries),
	}

	return
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.ImportMsg:
		// Library import lands in the builder
		var cmd tea.Cmd
		m.BuilderPanel, cmd = m.BuilderPanel.Update(msg)
		m.CurrentTab = BuilderTab
		return m, cmd

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = ""
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			// Typing tabs keep "q"
			if m.CurrentTab != BuilderTab {
				return m, tea.Quit
			}

		case "ctrl+n":
			m.CurrentTab = (m.CurrentTab + 1) % Tab(len(tabNames))
			return m, nil

		case "ctrl+p":
			m.CurrentTab = (m.CurrentTab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			return m, nil
		}

		return m.updateCurrent(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		adjusted := tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: msg.Height - footerHeight,
		}
		var cmd1, cmd2, cmd3 tea.Cmd
		m.MetricsPanel, cmd1 = m.MetricsPanel.Update(adjusted)
		m.BuilderPanel, cmd2 = m.BuilderPanel.Update(adjusted)
		m.LibraryPanel, cmd3 = m.LibraryPanel.Update(adjusted)
		return m, tea.Sequence(cmd1, cmd2, cmd3)
	}

	// Timer completions and the rest are broadcast: generation checks
	// in the engines keep stale ones from landing
	var cmd1, cmd2, cmd3 tea.Cmd
	m.MetricsPanel, cmd1 = m.MetricsPanel.Update(msg)
	m.BuilderPanel, cmd2 = m.BuilderPanel.Update(msg)
	m.LibraryPanel, cmd3 = m.LibraryPanel.Update(msg)
	return m, tea.Sequence(cmd1, cmd2, cmd3)
}

// updateCurrent routes a key to the active tab only.
func (m Model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {

	var cmd tea.Cmd
	switch m.CurrentTab {
	case MetricsTab:
		m.MetricsPanel, cmd = m.MetricsPanel.Update(msg)
	case BuilderTab:
		m.BuilderPanel, cmd = m.BuilderPanel.Update(msg)
	case LibraryTab:
		m.LibraryPanel, cmd = m.LibraryPanel.Update(msg)
	}
	return m, cmd
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var screenContent string
	switch m.CurrentTab {
	case MetricsTab:
		screenContent = m.MetricsPanel.Render()
	case BuilderTab:
		screenContent = m.BuilderPanel.Render()
	case LibraryTab:
		screenContent = m.LibraryPanel.Render()
	}

	header := RenderTabs(int(m.CurrentTab), m.Width)
	screenLayer := lipgloss.NewLayer("screen", header+"\n"+screenContent)

	footerContent := RenderFooter(m.status(), m.Width)
	if m.errorString != "" {
		footerContent = m.errorString
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

func (m Model) status() string {
	switch {
	case m.MetricsPanel.Analyzing():
		return "analyzing"
	case m.BuilderPanel.Pending():
		return "translating"
	default:
		return "ready"
	}
}
