// Package tui implements the interactive terminal UI: a dashboard, a
// three-lane task board, and the synced roster with live catalog
// search.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ember-forge/warband/internal/config"
	"github.com/ember-forge/warband/internal/models"
	"github.com/ember-forge/warband/internal/roster"
	"github.com/ember-forge/warband/internal/store"
	"github.com/ember-forge/warband/internal/telemetry"
	"github.com/ember-forge/warband/pkg/version"
)

// ViewType identifies the current view.
type ViewType int

const (
	ViewDashboard ViewType = iota
	ViewBoard
	ViewRoster
	ViewHelp
)

func (v ViewType) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewBoard:
		return "board"
	case ViewRoster:
		return "roster"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Messages delivered by background commands.
type (
	rosterLoadedMsg struct {
		entries []models.RosterEntry
		err     error
	}
	searchResultMsg roster.SearchResult
)

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	store     *store.Store
	adapter   *roster.Adapter
	searcher  *roster.Searcher
	cfg       *config.Config
	telemetry telemetry.Client

	keymap Keymap
	styles Styles

	currentView  ViewType
	previousView ViewType

	// Dashboard state
	milestoneCursor int

	// Board state
	laneIndex int
	taskIndex int

	// Roster state
	rosterEntries  []models.RosterEntry
	rosterCursor   int
	rosterLoading  bool
	searching      bool
	searchInput    textinput.Model
	searchRecords  []models.CatalogRecord
	searchHints    []string
	searchCursor   int
	spin           spinner.Model

	width    int
	height   int
	status   string
	notice   string
	quitting bool
}

// Run starts the TUI. The adapter may be nil when no roster backend
// could be opened; the roster view then shows a notice instead.
func Run(s *store.Store, adapter *roster.Adapter, cfg *config.Config, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New()
	}

	m := newModel(s, adapter, cfg, tc)
	tc.TrackAppStarted("tui", len(s.Characters()))

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newModel(s *store.Store, adapter *roster.Adapter, cfg *config.Config, tc telemetry.Client) Model {
	input := textinput.New()
	input.Placeholder = "character name"
	input.CharLimit = 64
	input.Width = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	theme := DarkTheme()
	if !s.Settings().DarkMode {
		// The snapshot drives the palette so the choice survives
		// restarts.
		theme = LightTheme()
	}

	m := Model{
		store:       s,
		adapter:     adapter,
		cfg:         cfg,
		telemetry:   tc,
		keymap:      DefaultKeymap(),
		styles:      NewStyles(theme),
		searchInput: input,
		spin:        sp,
	}
	if adapter != nil {
		m.searcher = roster.NewSearcher(adapter, 0)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case rosterLoadedMsg:
		m.rosterLoading = false
		if msg.err != nil {
			m.status = msg.err.Error()
			m.telemetry.TrackErrorDisplayed("roster", m.currentView.String())
			return m, nil
		}
		m.rosterEntries = msg.entries
		if m.rosterCursor >= len(m.rosterEntries) {
			m.rosterCursor = max(0, len(m.rosterEntries)-1)
		}
		m.telemetry.TrackRosterSynced(len(msg.entries))
		return m, nil

	case searchResultMsg:
		m.searchRecords = msg.Records
		m.searchHints = msg.Suggestions
		m.searchCursor = 0
		if msg.Err != nil {
			m.status = msg.Err.Error()
		}
		m.telemetry.TrackSearchPerformed(msg.Query, len(msg.Records))
		return m, m.waitSearch()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search mode captures all typing except esc/enter.
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		if m.searcher != nil {
			m.searcher.Stop()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		if m.currentView != ViewHelp {
			m.previousView = m.currentView
			m.currentView = ViewHelp
			m.telemetry.TrackViewNavigated("help", m.previousView.String())
		}
		return m, nil

	case key.Matches(msg, m.keymap.Back):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
		}
		m.status = ""
		m.notice = ""
		return m, nil

	case key.Matches(msg, m.keymap.Tab):
		previous := m.currentView
		switch m.currentView {
		case ViewDashboard:
			m.currentView = ViewBoard
		case ViewBoard:
			m.currentView = ViewRoster
		default:
			m.currentView = ViewDashboard
		}
		m.telemetry.TrackViewNavigated(m.currentView.String(), previous.String())
		if m.currentView == ViewRoster && m.adapter != nil && len(m.rosterEntries) == 0 {
			m.rosterLoading = true
			return m, m.fetchRoster()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Export):
		data, err := m.store.Export()
		if err != nil {
			m.status = "could not export your data, please try again"
			return m, nil
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			m.status = "could not copy to the clipboard"
			return m, nil
		}
		m.notice = "export copied to clipboard"
		m.telemetry.TrackDataExported(len(m.store.Characters()))
		return m, nil

	case key.Matches(msg, m.keymap.DarkMode):
		enabled := m.store.ToggleDarkMode()
		m.telemetry.TrackSettingsChanged("dark_mode")
		if enabled {
			m.styles = NewStyles(DarkTheme())
		} else {
			m.styles = NewStyles(LightTheme())
		}
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		return m.handleDashboardKey(msg)
	case ViewBoard:
		return m.handleBoardKey(msg)
	case ViewRoster:
		return m.handleRosterKey(msg)
	}
	return m, nil
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	milestones := m.store.Milestones()
	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.milestoneCursor > 0 {
			m.milestoneCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.milestoneCursor < len(milestones)-1 {
			m.milestoneCursor++
		}
	case key.Matches(msg, m.keymap.Nudge):
		if m.milestoneCursor < len(milestones) {
			id := milestones[m.milestoneCursor].ID
			m.store.NudgeMilestone(id)
			for _, ms := range m.store.Milestones() {
				if ms.ID == id {
					m.telemetry.TrackMilestoneNudged(ms.Progress)
				}
			}
		}
	}
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lanes := models.ValidStatuses()
	tasks := m.laneTasks(lanes[m.laneIndex])

	switch {
	case key.Matches(msg, m.keymap.Left):
		if m.laneIndex > 0 {
			m.laneIndex--
			m.taskIndex = 0
		}
	case key.Matches(msg, m.keymap.Right):
		if m.laneIndex < len(lanes)-1 {
			m.laneIndex++
			m.taskIndex = 0
		}
	case key.Matches(msg, m.keymap.Up):
		if m.taskIndex > 0 {
			m.taskIndex--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.taskIndex < len(tasks)-1 {
			m.taskIndex++
		}
	case key.Matches(msg, m.keymap.Select):
		// Advance the selected task one lane to the right.
		if m.taskIndex < len(tasks) && m.laneIndex < len(lanes)-1 {
			next := lanes[m.laneIndex+1]
			m.store.MoveTask(tasks[m.taskIndex].ID, next)
			m.telemetry.TrackTaskMoved(next)
			m.taskIndex = 0
		}
	case key.Matches(msg, m.keymap.Delete):
		if m.taskIndex < len(tasks) {
			m.store.DeleteTask(tasks[m.taskIndex].ID)
			m.taskIndex = 0
		}
	}
	return m, nil
}

func (m Model) handleRosterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adapter == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		m.searchInput.SetValue("")
		m.searchRecords = nil
		m.searchHints = nil
		m.searchInput.Focus()
		return m, m.waitSearch()

	case key.Matches(msg, m.keymap.Refresh):
		m.rosterLoading = true
		return m, m.fetchRoster()

	case key.Matches(msg, m.keymap.Up):
		if m.rosterCursor > 0 {
			m.rosterCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.rosterCursor < len(m.rosterEntries)-1 {
			m.rosterCursor++
		}
	case key.Matches(msg, m.keymap.Delete):
		if m.rosterCursor < len(m.rosterEntries) {
			id := m.rosterEntries[m.rosterCursor].CharacterID
			m.rosterLoading = true
			return m, m.deleteRosterEntry(id)
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.searching = false
		m.searchInput.Blur()
		m.searcher.Stop()
		return m, nil

	case key.Matches(msg, m.keymap.Select):
		if m.searchCursor < len(m.searchRecords) {
			record := m.searchRecords[m.searchCursor]
			m.searching = false
			m.searchInput.Blur()
			m.rosterLoading = true
			return m, m.addRosterEntry(record.ID)
		}
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		if m.searchCursor > 0 {
			m.searchCursor--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.searchCursor < len(m.searchRecords)-1 {
			m.searchCursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searcher.Search(context.Background(), strings.TrimSpace(m.searchInput.Value()))
	return m, cmd
}

// laneTasks returns the tasks in one board lane, in store order.
func (m Model) laneTasks(lane string) []models.Task {
	var tasks []models.Task
	for _, task := range m.store.Tasks() {
		if task.Status == lane {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// Background commands.

func (m Model) fetchRoster() tea.Cmd {
	adapter := m.adapter
	return func() tea.Msg {
		entries, err := adapter.FetchRoster(context.Background())
		return rosterLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) addRosterEntry(catalogID string) tea.Cmd {
	adapter := m.adapter
	return func() tea.Msg {
		entries, err := adapter.AddCharacter(context.Background(), roster.AddInput{
			CatalogID: catalogID,
			Level:     models.MinLevel,
		})
		return rosterLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) deleteRosterEntry(catalogID string) tea.Cmd {
	adapter := m.adapter
	return func() tea.Msg {
		entries, err := adapter.DeleteCharacter(context.Background(), catalogID)
		return rosterLoadedMsg{entries: entries, err: err}
	}
}

// waitSearch blocks on the debounced searcher's result channel.
func (m Model) waitSearch() tea.Cmd {
	searcher := m.searcher
	return func() tea.Msg {
		result, ok := <-searcher.Results()
		if !ok {
			return nil
		}
		return searchResultMsg(result)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.currentView {
	case ViewDashboard:
		body = m.viewDashboard()
	case ViewBoard:
		body = m.viewBoard()
	case ViewRoster:
		body = m.viewRoster()
	case ViewHelp:
		body = m.viewHelp()
	}

	sections := []string{m.viewHeader(), body}
	if m.status != "" {
		sections = append(sections, m.styles.StatusError.Render(m.status))
	}
	if m.notice != "" {
		sections = append(sections, m.styles.StatusOK.Render(m.notice))
	}
	sections = append(sections, m.styles.Footer.Render(m.keymap.QuickHelpText()))
	return strings.Join(sections, "\n")
}

func (m Model) viewHeader() string {
	title := m.styles.Header.Render("WARBAND " + version.Short())

	var tabs []string
	for _, view := range []ViewType{ViewDashboard, ViewBoard, ViewRoster} {
		style := m.styles.TabIdle
		if view == m.currentView {
			style = m.styles.TabActive
		}
		tabs = append(tabs, style.Render(view.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, strings.Join(tabs, ""))
}

func (m Model) viewDashboard() string {
	stats := m.store.Stats()
	var b strings.Builder

	b.WriteString(m.styles.Bold.Render("Collection") + "\n")
	b.WriteString(fmt.Sprintf("  %s %d tracked, %d six-star\n",
		m.styles.Muted.Render("characters:"), stats.TotalCharacters, stats.TotalSixStar))

	b.WriteString("\n" + m.styles.Bold.Render("Characters") + "\n")
	for _, c := range m.store.Characters() {
		b.WriteString(fmt.Sprintf("  %s %s lvl %d\n",
			RarityStyle(c.Rarity).Render(fmt.Sprintf("%-24s", c.Name)),
			m.styles.Muted.Render(fmt.Sprintf("%-16s", c.Faction)),
			c.Level))
	}

	b.WriteString("\n" + m.styles.Bold.Render("Milestones") + "\n")
	for i, ms := range m.store.Milestones() {
		cursor := "  "
		style := m.styles.Normal
		if i == m.milestoneCursor {
			cursor = "> "
			style = m.styles.ItemSelected
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			cursor,
			style.Render(fmt.Sprintf("%-32s", ms.Name)),
			progressBar(ms.Progress)))
	}
	b.WriteString("\n" + m.styles.Muted.Render("press + to bump the selected milestone"))
	return b.String()
}

// progressBar renders a ten-segment progress bar.
func progressBar(progress int) string {
	filled := progress / 10
	return fmt.Sprintf("[%s%s] %3d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", 10-filled),
		progress)
}

func (m Model) viewBoard() string {
	lanes := models.ValidStatuses()
	columns := make([]string, 0, len(lanes))

	for laneIdx, lane := range lanes {
		var b strings.Builder
		b.WriteString(m.styles.LaneHeading.Render(strings.ToUpper(lane)) + "\n")

		for taskIdx, task := range m.laneTasks(lane) {
			style := m.styles.Normal
			prefix := "  "
			if laneIdx == m.laneIndex && taskIdx == m.taskIndex {
				style = m.styles.ItemSelected
				prefix = "> "
			}
			line := prefix + task.Title
			if task.Priority == models.PriorityHigh {
				line += " " + m.styles.StatusWarning.Render("!")
			}
			b.WriteString(style.Render(line) + "\n")
		}

		box := m.styles.Box
		if laneIdx == m.laneIndex {
			box = m.styles.SelectedBox
		}
		columns = append(columns, box.Width(28).Render(b.String()))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	hint := m.styles.Muted.Render("enter advances the selected task, x deletes it")
	return board + "\n" + hint
}

func (m Model) viewRoster() string {
	if m.adapter == nil {
		return m.styles.Muted.Render("Roster backend unavailable; see the log for details.")
	}

	var b strings.Builder

	if m.searching {
		b.WriteString(m.styles.Bold.Render("Add from catalog") + "\n")
		b.WriteString(m.searchInput.View() + "\n\n")

		for i, record := range m.searchRecords {
			style := m.styles.Normal
			prefix := "  "
			if i == m.searchCursor {
				style = m.styles.ItemSelected
				prefix = "> "
			}
			b.WriteString(style.Render(fmt.Sprintf("%s%-24s %-16s %s", prefix, record.Name, record.Faction, record.Rarity)) + "\n")
		}
		if len(m.searchRecords) == 0 && len(m.searchHints) > 0 {
			b.WriteString(m.styles.Muted.Render("did you mean: "+strings.Join(m.searchHints, ", ")) + "\n")
		}
		b.WriteString("\n" + m.styles.Muted.Render("enter adds the selection, esc cancels"))
		return b.String()
	}

	if m.rosterLoading {
		return m.spin.View() + " syncing roster..."
	}

	b.WriteString(m.styles.Bold.Render(fmt.Sprintf("Synced roster (%d)", len(m.rosterEntries))) + "\n")
	if m.adapter.Processing() {
		b.WriteString(m.styles.StatusWarning.Render("saving...") + "\n")
	}
	for i, entry := range m.rosterEntries {
		style := m.styles.Normal
		prefix := "  "
		if i == m.rosterCursor {
			style = m.styles.ItemSelected
			prefix = "> "
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s %s lvl %-3d asc %d",
			prefix,
			RarityStyle(entry.Rarity).Render(fmt.Sprintf("%-24s", entry.Name)),
			m.styles.Muted.Render(fmt.Sprintf("%-16s", entry.Faction)),
			entry.Level,
			entry.AscensionLevel)) + "\n")
	}
	if len(m.rosterEntries) == 0 {
		b.WriteString(m.styles.Muted.Render("empty — press / to search the catalog") + "\n")
	}
	return b.String()
}

const helpMarkdown = `# Warband

An offline-first collection companion.

## Views

- **dashboard** — collection stats, characters, and milestones
- **board** — tasks across todo, in-progress, and complete lanes
- **roster** — the synced roster with live catalog search

## Keys

| Key | Action |
|-----|--------|
| tab | switch view |
| ↑/↓ | move |
| ←/→ | switch board lane |
| enter | select / advance task |
| / | search the catalog (roster view) |
| + | bump the selected milestone |
| x | delete |
| r | refresh the roster |
| e | copy a JSON export to the clipboard |
| d | toggle dark mode |
| q | quit |
`

func (m Model) viewHelp() string {
	style := "dark"
	if !m.store.Settings().DarkMode {
		style = "light"
	}
	rendered, err := glamour.Render(helpMarkdown, style)
	if err != nil {
		return helpMarkdown
	}
	return rendered
}
