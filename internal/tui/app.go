// Package tui provides the interactive budget editor.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"
	"github.com/theirongolddev/breakeven/internal/store"
	"github.com/theirongolddev/breakeven/internal/tui/components"
	"github.com/theirongolddev/breakeven/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreChangedMsg carries a store change event into the update loop.
type StoreChangedMsg struct {
	Event store.Event
}

type clearFlashMsg struct{ seq int }

const (
	tabDashboard = 0

	minTerminalWidth = 80
	maxContentWidth  = 160
	minContentHeight = 5

	flashDuration = 2 * time.Second
)

// tabCollections maps line tabs to their collection. Index 0 is the
// dashboard.
var tabCollections = []model.Collection{
	"",
	model.CollectionOperating,
	model.CollectionDirect,
	model.CollectionCollateral,
	model.CollectionServices,
	model.CollectionMarketing,
}

type cursor struct {
	row int
	col int
}

// Options configures a new App.
type Options struct {
	Worksheet string
	Logger    *zap.Logger
	NewID     func() string
}

// App is the root Bubble Tea model.
type App struct {
	store       *store.Store
	events      <-chan store.Event
	unsubscribe func()
	logger      *zap.Logger
	newID       func() string

	// Derived from the latest snapshot
	budget     model.Budget
	projection model.Projection
	version    uint64
	worksheet  string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	cursors   []cursor

	editing bool
	input   textinput.Model

	flash    string
	flashBad bool
	flashSeq int
}

// NewApp builds an editor over st and subscribes to its changes. Call Close
// when the program exits.
func NewApp(st *store.Store, opts Options) App {
	events, unsubscribe := st.Subscribe()
	a := App{
		store:       st,
		events:      events,
		unsubscribe: unsubscribe,
		logger:      opts.Logger,
		newID:       opts.NewID,
		worksheet:   opts.Worksheet,
		cursors:     make([]cursor, len(components.Tabs)),
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	if a.newID == nil {
		a.newID = uuid.NewString
	}
	a.refresh()
	return a
}

// Close drops the store subscription.
func (a App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(tea.EnableMouseCellMotion, waitForChange(a.events))
}

// waitForChange blocks on the store subscription. A closed channel ends the
// loop.
func waitForChange(events <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return StoreChangedMsg{Event: ev}
	}
}

// refresh re-reads the store and recomputes every derived figure.
func (a *App) refresh() {
	a.budget = a.store.Snapshot()
	a.version = a.store.Version()
	a.projection = pipeline.AggregateBudget(a.budget)
	a.clampCursor()
}

func (a App) collection() model.Collection {
	return tabCollections[a.activeTab]
}

func (a App) sheet() (sheet, bool) {
	s, ok := sheets[a.collection()]
	return s, ok
}

// rowCount is the number of selectable rows on the active tab.
func (a App) rowCount() int {
	if a.activeTab == tabDashboard {
		return len(assumptionFields)
	}
	return a.budget.Len(a.collection())
}

func (a *App) clampCursor() {
	c := &a.cursors[a.activeTab]
	if n := a.rowCount(); c.row >= n {
		c.row = n - 1
	}
	if c.row < 0 {
		c.row = 0
	}
}

func (a *App) setFlash(msg string, bad bool) tea.Cmd {
	a.flash = msg
	a.flashBad = bad
	a.flashSeq++
	seq := a.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{seq: seq}
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case StoreChangedMsg:
		a.refresh()
		a.logger.Debug("store changed",
			zap.Uint64("version", msg.Event.Version),
			zap.String("collection", string(msg.Event.Collection)),
			zap.String("op", string(msg.Event.Op)))
		return a, waitForChange(a.events)

	case clearFlashMsg:
		if msg.seq == a.flashSeq {
			a.flash = ""
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.editing {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveRow(-1)
		case tea.MouseButtonWheelDown:
			a.moveRow(1)
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
					a.clampCursor()
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.editing {
			return a.updateInput(msg)
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		return a.updateKey(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = true
		return a, nil
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		a.clampCursor()
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		a.clampCursor()
		return a, nil
	case "j", "down":
		a.moveRow(1)
		return a, nil
	case "k", "up":
		a.moveRow(-1)
		return a, nil
	case "enter":
		return a.startEdit()
	}

	if idx := components.TabIdxByKey(key); idx >= 0 {
		a.activeTab = idx
		a.clampCursor()
		return a, nil
	}

	if a.activeTab == tabDashboard {
		return a, nil
	}
	return a.updateLineKey(key)
}

// updateLineKey handles the keys that only apply to line-item tabs.
func (a App) updateLineKey(key string) (tea.Model, tea.Cmd) {
	sh, _ := a.sheet()
	c := &a.cursors[a.activeTab]

	switch key {
	case "l", "tab":
		c.col = sh.step(c.col, 1)
	case "h", "shift+tab":
		c.col = sh.step(c.col, -1)
	case "a":
		id := a.newID()
		a.store.AddEmpty(sh.collection, id)
		a.refresh()
		c.row = a.rowCount() - 1
		return a, a.setFlash("Added row", false)
	case "x":
		rows := sh.rows(a.budget)
		if len(rows) == 0 {
			return a, nil
		}
		a.store.Remove(sh.collection, rows[c.row].id)
		a.refresh()
		return a, a.setFlash("Deleted row", false)
	}
	return a, nil
}

func (a *App) moveRow(delta int) {
	c := &a.cursors[a.activeTab]
	c.row += delta
	a.clampCursor()
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = ""
	return ti
}

// startEdit opens a text input on the selected cell.
func (a App) startEdit() (tea.Model, tea.Cmd) {
	c := a.cursors[a.activeTab]
	ti := newInput()

	if a.activeTab == tabDashboard {
		f := assumptionFields[c.row]
		ti.Placeholder = f.placeholder
		ti.SetValue(num(f.get(a.budget.Assumptions)))
	} else {
		sh, _ := a.sheet()
		rows := sh.rows(a.budget)
		if len(rows) == 0 || !sh.editable(c.col) {
			return a, nil
		}
		ti.Placeholder = sh.columns[c.col].title
		ti.SetValue(rows[c.row].edit[c.col])
	}

	ti.CursorEnd()
	ti.Focus()
	a.input = ti
	a.editing = true
	return a, textinput.Blink
}

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.editing = false
		return a, a.commitEdit(a.input.Value())
	case "esc":
		a.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// commitEdit writes raw into the selected cell. Numeric cells go through
// the same lenient parse as worksheet files.
func (a *App) commitEdit(raw string) tea.Cmd {
	c := a.cursors[a.activeTab]

	if a.activeTab == tabDashboard {
		f := assumptionFields[c.row]
		a.store.SetAssumptions(f.patch(raw))
		a.refresh()
		return a.setFlash(f.label+" updated", false)
	}

	sh, _ := a.sheet()
	rows := sh.rows(a.budget)
	if c.row >= len(rows) {
		return nil
	}
	if !sh.commit(a.store, rows[c.row].id, c.col, raw) {
		return a.setFlash("Row no longer exists", true)
	}
	a.refresh()
	return a.setFlash(sh.columns[c.col].title+" updated", false)
}

// tabAtX returns the tab under column x, or -1.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1 // separator
	}
	return -1
}

func (a App) contentWidth() int {
	if a.width > maxContentWidth {
		return maxContentWidth
	}
	return a.width
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  breakeven needs at least %d columns.\n",
		a.width, minTerminalWidth)
	h := max(a.height, 5)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)
	status := components.RenderStatusBar(w, components.StatusInfo{
		Worksheet: a.worksheet,
		Version:   a.version,
		Hint:      a.hint(),
		Flash:     a.flash,
		FlashBad:  a.flashBad,
	})

	contentH := a.height - lipgloss.Height(header) - lipgloss.Height(status)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	if a.activeTab == tabDashboard {
		content = a.renderDashboard(cw)
	} else {
		content = a.renderLineTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	out := lipgloss.JoinVertical(lipgloss.Left, header, content, status)
	return lipgloss.Place(w, a.height, lipgloss.Left, lipgloss.Top, out,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) hint() string {
	switch {
	case a.editing:
		return "[enter]save  [esc]cancel"
	case a.activeTab == tabDashboard:
		return "[j/k]select  [enter]edit"
	default:
		return "[a]dd  [x]delete  [enter]edit"
	}
}

func (a App) viewHelp() string {
	t := theme.Active

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	title := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	section := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Info).Background(t.Surface).Bold(true)
	desc := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	groups := []struct {
		name     string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{"1-6", "Jump to tab"},
			{"← →", "Previous / next tab"},
			{"j k", "Move between rows"},
			{"h l tab", "Move between columns"},
		}},
		{"Editing", [][2]string{
			{"enter", "Edit cell / save"},
			{"esc", "Cancel edit"},
			{"a", "Add an empty row"},
			{"x", "Delete the selected row"},
		}},
		{"General", [][2]string{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(title.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, g := range groups {
		b.WriteString("\n" + section.Render(g.name) + "\n")
		for _, kb := range g.bindings {
			fmt.Fprintf(&b, "  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", kb[0])), desc.Render(kb[1]))
		}
	}
	b.WriteString("\n" + dim.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	n := strings.Count(s, "\n") + 1
	if n >= h {
		return s
	}
	return s + strings.Repeat("\n", h-n)
}

// fillLinesWithBackground pads each line to w so gaps between cards carry
// the background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line, lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
