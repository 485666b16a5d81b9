package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/boat-runner/internal/replay"
	"github.com/vovakirdan/boat-runner/internal/storage"
)

// Replay browser layout constants
const (
	minWidthForDetails = 90  // Minimum width to show the details panel
	detailsWidth       = 28  // Width of the details panel
	maxReplays         = 100 // Max replays to load
)

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Verify key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Verify, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Verify, k.Delete, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Verify: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "verify"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplaysModel is the Bubble Tea model for the replay browser.
type ReplaysModel struct {
	store       *storage.Store
	replays     []storage.Replay
	stats       storage.Stats
	table       table.Model
	help        help.Model
	keys        ReplaysKeyMap
	message     string // result of the last verify/delete
	width       int
	height      int
	quitting    bool
	showDetails bool
}

// NewReplaysModel creates a replay browser over the store.
func NewReplaysModel(store *storage.Store, width, height int) ReplaysModel {
	h := help.New()
	h.ShowAll = false

	m := ReplaysModel{
		store:       store,
		keys:        DefaultReplaysKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showDetails: width >= minWidthForDetails,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Runs", Width: 5},
		{Title: "Best", Width: 8},
		{Title: "Date", Width: 13},
	}

	tableWidth := m.width - 4
	if m.showDetails {
		tableWidth -= detailsWidth + 3
	}
	// Give spare width to the player column.
	if spare := tableWidth - 54; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("25")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads replays and stats from the store.
func (m *ReplaysModel) load() {
	m.replays = nil
	if m.store != nil {
		if replays, err := m.store.ListReplays(maxReplays); err == nil {
			m.replays = replays
		} else {
			m.message = err.Error()
		}
		if st, err := m.store.Stats(); err == nil {
			m.stats = st
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded replays.
func (m *ReplaysModel) updateTableRows() {
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Player,
			fmt.Sprintf("%d", r.Runs),
			fmt.Sprintf("%.1f", r.BestDistance),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// selected returns the replay under the cursor.
func (m ReplaysModel) selected() (storage.Replay, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.replays) {
		return storage.Replay{}, false
	}
	return m.replays[i], true
}

// Init initializes the replay browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Verify):
			if r, ok := m.selected(); ok {
				m.message = VerifyReplay(m.store, r.ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.selected(); ok {
				if err := m.store.DeleteReplay(r.ID); err != nil {
					m.message = err.Error()
				} else {
					m.message = fmt.Sprintf("replay %d deleted", r.ID)
				}
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showDetails = m.width >= minWidthForDetails
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// VerifyReplay reruns a stored replay and reports whether it reproduces
// the stored summary.
func VerifyReplay(store *storage.Store, id int64) string {
	row, err := store.LoadReplay(id)
	if err != nil {
		return err.Error()
	}
	rec, err := replay.FromStorage(row)
	if err != nil {
		return err.Error()
	}
	sum, err := replay.Play(rec)
	if err != nil {
		return err.Error()
	}
	if !sum.Matches(row.Ticks, row.Runs, row.Crashes, row.BestDistance) {
		return fmt.Sprintf("replay %d diverged: best %.1f, stored %.1f", id, sum.BestDistance, row.BestDistance)
	}
	return fmt.Sprintf("replay %d verified: %d ticks, %d runs, best %.1f", id, sum.Ticks, sum.Runs, sum.BestDistance)
}

// View renders the replay browser.
func (m ReplaysModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("BOAT RUNNER REPLAYS", m.width)))
	b.WriteString("\n\n")

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := panelStyle.Render(m.renderTableContent())
	if m.showDetails {
		details := panelStyle.Width(detailsWidth).Render(m.renderDetails())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", details))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	b.WriteString("\n")
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	if m.message != "" {
		b.WriteString(statusStyle.Render(m.message))
	} else {
		b.WriteString(statusStyle.Render(statsLine(m.stats)))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ReplaysModel) renderTableContent() string {
	if len(m.replays) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No replays recorded yet.\nEvery session you play is saved here.")
	}
	return m.table.View()
}

// renderDetails renders the selected replay's metadata.
func (m ReplaysModel) renderDetails() string {
	r, ok := m.selected()
	if !ok {
		return "Nothing selected"
	}

	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = "default"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Replay %d\n", r.ID)
	b.WriteString(strings.Repeat("-", detailsWidth-4))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Seed       %d\n", r.Seed)
	fmt.Fprintf(&b, "Difficulty %s\n", difficulty)
	fmt.Fprintf(&b, "Ticks      %d\n", r.Ticks)
	fmt.Fprintf(&b, "Runs       %d\n", r.Runs)
	fmt.Fprintf(&b, "Crashes    %d\n", r.Crashes)
	fmt.Fprintf(&b, "Best       %.1f\n", r.BestDistance)
	return b.String()
}

// statsLine summarizes the store without ranking sessions.
func statsLine(st storage.Stats) string {
	line := fmt.Sprintf("%d replays, %d ticks recorded", st.Count, st.TotalTicks)
	if !st.LastPlayed.IsZero() {
		line += ", last played " + st.LastPlayed.Format("Jan 02 15:04")
	}
	return line
}

// IsQuitting returns true if the user closed the browser.
func (m ReplaysModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text so it is centered within width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	pad := (width - textWidth) / 2
	return strings.Repeat(" ", pad) + text
}

// RunReplays runs the replay browser.
func RunReplays(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewReplaysModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
