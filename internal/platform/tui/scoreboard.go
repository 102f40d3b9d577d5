package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/lanerunner/internal/games/lanes"
	"github.com/vovakirdan/lanerunner/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 40
	maxRuns       = 100
)

// BoardView selects which runs the leaderboard lists.
type BoardView int

const (
	BoardTop BoardView = iota
	BoardRecent
)

func (v BoardView) String() string {
	if v == BoardRecent {
		return "Recent"
	}
	return "Top"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h"),
			key.WithHelp("tab", "top/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "m", "b", "backspace"),
			key.WithHelp("esc/m", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Leaderboard lists recorded runs in a table.
type Leaderboard struct {
	store     *storage.Store
	view      BoardView
	runs      []storage.RunEntry
	best      int
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewLeaderboard creates a leaderboard sized for the terminal.
func NewLeaderboard(store *storage.Store, width, height int) Leaderboard {
	h := help.New()
	h.ShowAll = false

	b := Leaderboard{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	b.table = b.createTable()
	b.Reload()
	return b
}

// createTable creates a new table with appropriate columns.
func (b *Leaderboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "When", Width: 16},
	}

	tableWidth := b.width - 4 // Margins
	if tableWidth > tableMinWidth {
		columns[2].Width = min(tableWidth-20, 24)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(b.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Reload fetches runs for the current view.
func (b *Leaderboard) Reload() {
	b.runs = nil
	b.best = 0
	if b.store != nil {
		var runs []storage.RunEntry
		var err error
		if b.view == BoardRecent {
			runs, err = b.store.RecentRuns(lanes.ID, maxRuns)
		} else {
			runs, err = b.store.TopRuns(lanes.ID, maxRuns)
		}
		if err == nil {
			b.runs = runs
		}
		if best, err := b.store.BestRun(lanes.ID); err == nil {
			b.best = best
		}
	}
	b.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (b *Leaderboard) updateTableRows() {
	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		when := "-"
		if !r.CreatedAt.IsZero() {
			when = humanize.Time(r.CreatedAt)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(r.Score)),
			when,
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

// Resize adapts the table to a new terminal size.
func (b *Leaderboard) Resize(width, height int) {
	b.width = width
	b.height = height
	b.table = b.createTable()
	b.updateTableRows()
	b.help.Width = width
}

// Init implements tea.Model.
func (b Leaderboard) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (b Leaderboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			b.quitting = true
			return b, tea.Quit

		case key.Matches(msg, b.keys.Back):
			b.goingBack = true
			return b, tea.Quit

		case key.Matches(msg, b.keys.Switch):
			b.view = 1 - b.view
			b.Reload()
			return b, nil

		case key.Matches(msg, b.keys.Up), key.Matches(msg, b.keys.Down):
			b.table, cmd = b.table.Update(msg)
			return b, cmd
		}

	case tea.WindowSizeMsg:
		b.Resize(msg.Width, msg.Height)
		return b, nil
	}

	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// Scroll passes navigation keys to the table without handling back or quit.
func (b *Leaderboard) Scroll(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, b.keys.Switch):
		b.view = 1 - b.view
		b.Reload()
	case key.Matches(msg, b.keys.Up), key.Matches(msg, b.keys.Down):
		b.table, _ = b.table.Update(msg)
	}
}

// View renders the leaderboard.
func (b Leaderboard) View() string {
	if b.quitting || b.goingBack {
		return ""
	}

	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("LEADERBOARD - %s (%s)", lanes.Title, b.view)
	sb.WriteString(titleStyle.Render(centerText(title, b.width)))
	sb.WriteString("\n")
	if b.best > 0 {
		sb.WriteString(centerText("Best run: "+humanize.Comma(int64(b.best)), b.width))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	sb.WriteString(centerText(tableStyle.Render(b.renderTableContent()), b.width))

	sb.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	sb.WriteString(helpStyle.Render(b.help.View(b.keys)))

	return sb.String()
}

// renderTableContent renders the table or empty message.
func (b Leaderboard) renderTableContent() string {
	if len(b.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFinish a run to get on the board!")
	}

	return b.table.View()
}

// Runs returns the runs currently listed.
func (b Leaderboard) Runs() []storage.RunEntry {
	return b.runs
}

// IsGoingBack returns true if the user pressed back.
func (b Leaderboard) IsGoingBack() bool {
	return b.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (b Leaderboard) IsQuitting() bool {
	return b.quitting
}

// centerText centers every line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		pad := (width - lipgloss.Width(l)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + l
		}
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard runs the leaderboard as a standalone program.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewLeaderboard(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
