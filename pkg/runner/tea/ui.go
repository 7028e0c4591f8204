// Package teaui hosts the Bubble Tea program for the tracker TUI.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/lifeos/pkg/app"
	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/focus"
	"tableflip.dev/lifeos/pkg/store"
	"tableflip.dev/lifeos/pkg/theme"
	"tableflip.dev/lifeos/pkg/viewmodel"
)

type tab int

const (
	tabDashboard tab = iota
	tabHabits
	tabAssignments
	tabFocus
)

var tabLabels = []string{"Dashboard", "Habits", "Assignments", "Focus"}

type dashLoadedMsg struct {
	dash *viewmodel.Dashboard
}

type errMsg struct {
	err error
}

type tickMsg time.Time

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// Model contains UI state.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc

	tab       tab
	dash      *viewmodel.Dashboard
	cursor    int
	inserting bool
	input     textinput.Model
	status    string

	termWidth  int
	termHeight int
	styles     Styles

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = "> "
	ti.VirtualCursor = true
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
		tab:    tabDashboard,
		input:  ti,
		styles: NewStyles(theme.Light, theme.Get(theme.DefaultPreset())),
	}
	if svc != nil {
		m.applyDash(svc.Dashboard(time.Now()))
	}
	return m
}

// Init loads initial data.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), startWatchCmd(m.ctx, m.svc))
}

func (m *Model) refresh() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		return dashLoadedMsg{dash: svc.Dashboard(time.Now())}
	}
}

func (m *Model) applyDash(d *viewmodel.Dashboard) {
	m.dash = d
	m.styles = NewStyles(d.Theme, d.Palette)
	m.clampCursor()
}

func (m *Model) clampCursor() {
	max := 0
	switch m.tab {
	case tabHabits:
		max = len(m.dash.HabitList) - 1
	case tabAssignments:
		max = len(m.dash.Assignments) - 1
	}
	if m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) setStatus(s string) {
	m.status = s
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.setStatus("ERR: " + msg.err.Error())
	case dashLoadedMsg:
		m.applyDash(msg.dash)
	case tickMsg:
		cmds = append(cmds, m.handleTick(time.Time(msg))...)
	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus("ERR: watch " + msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		cmds = append(cmds, m.refresh())
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
	case tea.KeyPressMsg:
		if m.inserting {
			cmds = append(cmds, m.handleInsertKey(msg)...)
		} else if cmd, quit := m.handleNormalKey(msg); quit {
			return m, cmd
		} else if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleTick(now time.Time) []tea.Cmd {
	var cmds []tea.Cmd
	if m.svc.Focus.State() != focus.Running {
		return nil
	}
	done, err := m.svc.TickFocus(m.ctx, now)
	if err != nil {
		cmds = append(cmds, func() tea.Msg { return errMsg{err} })
	}
	if done {
		m.setStatus(fmt.Sprintf("Focus complete: %dm logged", m.svc.Focus.Minutes()))
		m.svc.Focus.Reset()
		cmds = append(cmds, m.refresh())
		return cmds
	}
	cmds = append(cmds, tickCmd())
	return cmds
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg) []tea.Cmd {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.inserting = false
		m.input.SetValue("")
		m.input.Blur()
		if value == "" {
			return nil
		}
		return []tea.Cmd{m.submitInsert(value)}
	case "esc":
		m.inserting = false
		m.input.SetValue("")
		m.input.Blur()
		return nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return []tea.Cmd{cmd}
	}
}

// submitInsert adds a habit or an assignment depending on the active tab.
// Assignment input is "title | course | 2026-01-30"; course may be empty.
func (m *Model) submitInsert(value string) tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	onAssignments := m.tab == tabAssignments
	return func() tea.Msg {
		var err error
		if onAssignments {
			title, course, due := splitAssignmentInput(value)
			_, err = svc.AddAssignment(ctx, title, course, due)
		} else {
			_, err = svc.AddHabit(ctx, value)
		}
		if err != nil {
			return errMsg{err}
		}
		return dashLoadedMsg{dash: svc.Dashboard(time.Now())}
	}
}

func splitAssignmentInput(value string) (title, course, due string) {
	parts := strings.Split(value, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	title = parts[0]
	switch len(parts) {
	case 1:
		due = calendar.Today(time.Now()).AddDays(7).ISO()
	case 2:
		due = parts[1]
	default:
		course = parts[1]
		due = parts[2]
	}
	return title, course, due
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.stopWatch()
		m.cancel()
		return tea.Quit, true
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % tab(len(tabLabels))
		m.cursor = 0
	case "shift+tab", "left", "h":
		m.tab = (m.tab + tab(len(tabLabels)) - 1) % tab(len(tabLabels))
		m.cursor = 0
	case "1", "2", "3", "4":
		m.tab = tab(int(msg.String()[0] - '1'))
		m.cursor = 0
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "up", "k":
		m.cursor--
		m.clampCursor()
	case "a":
		if m.tab == tabHabits || m.tab == tabAssignments {
			m.inserting = true
			if m.tab == tabHabits {
				m.input.Placeholder = "New habit"
			} else {
				m.input.Placeholder = "Title | Course | 2026-01-30"
			}
			m.input.Focus()
		}
	case "enter", "space":
		return m.toggleSelected(), false
	case "s":
		if m.tab == tabFocus {
			if err := m.svc.Focus.Start(time.Now()); err != nil {
				m.setStatus("ERR: " + err.Error())
				break
			}
			m.setStatus("Focus started")
			return tickCmd(), false
		}
	case "x":
		if m.tab == tabFocus {
			m.svc.Focus.Stop()
			m.setStatus("Focus stopped, nothing logged")
		}
	case "r":
		if m.tab == tabFocus {
			m.svc.Focus.Reset()
		}
	case "+", "=":
		return m.adjustMinutes(5), false
	case "-":
		return m.adjustMinutes(-5), false
	case "t":
		return m.toggleTheme(), false
	case "p":
		return m.cyclePalette(), false
	}
	return nil, false
}

func (m *Model) toggleSelected() tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	switch m.tab {
	case tabHabits:
		if m.cursor >= len(m.dash.HabitList) {
			return nil
		}
		id := m.dash.HabitList[m.cursor].ID
		iso := m.dash.Today.ISO()
		return func() tea.Msg {
			if _, err := svc.ToggleHabitDay(ctx, id, iso); err != nil {
				return errMsg{err}
			}
			return dashLoadedMsg{dash: svc.Dashboard(time.Now())}
		}
	case tabAssignments:
		if m.cursor >= len(m.dash.Assignments) {
			return nil
		}
		id := m.dash.Assignments[m.cursor].ID
		return func() tea.Msg {
			if _, err := svc.ToggleAssignmentDone(ctx, id); err != nil {
				return errMsg{err}
			}
			return dashLoadedMsg{dash: svc.Dashboard(time.Now())}
		}
	}
	return nil
}

func (m *Model) adjustMinutes(delta int) tea.Cmd {
	if m.tab != tabFocus {
		return nil
	}
	next := m.svc.Focus.Minutes() + delta
	if next < 5 {
		next = 5
	}
	if err := m.svc.Focus.SetMinutes(next); err != nil {
		m.setStatus("ERR: " + err.Error())
	}
	return nil
}

func (m *Model) toggleTheme() tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	next := theme.Dark
	if m.dash.Theme == theme.Dark {
		next = theme.Light
	}
	return func() tea.Msg {
		if err := svc.SetTheme(ctx, next); err != nil {
			return errMsg{err}
		}
		return dashLoadedMsg{dash: svc.Dashboard(time.Now())}
	}
}

func (m *Model) cyclePalette() tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	presets := theme.Presets()
	next := presets[0].ID
	for i, p := range presets {
		if p.ID == m.dash.Palette.ID {
			next = presets[(i+1)%len(presets)].ID
			break
		}
	}
	return func() tea.Msg {
		if err := svc.SetPalette(ctx, next); err != nil {
			return errMsg{err}
		}
		return dashLoadedMsg{dash: svc.Dashboard(time.Now())}
	}
}

// View renders the active tab.
func (m *Model) View() string {
	if m.dash == nil {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabDashboard:
		b.WriteString(m.renderDashboard())
	case tabHabits:
		b.WriteString(m.renderHabits())
	case tabAssignments:
		b.WriteString(m.renderAssignments())
	case tabFocus:
		b.WriteString(m.renderFocus())
	}

	if m.inserting {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}

	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.helpLine()))

	return m.styles.Frame.Render(b.String())
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(tabLabels))
	for i, label := range tabLabels {
		style := m.styles.Tab
		if tab(i) == m.tab {
			style = m.styles.TabActive
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderDashboard() string {
	d := m.dash
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(d.DateLine))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
		m.styles.Text.Render("Study "),
		renderBar(d.Study.Ratio, 20, m.styles),
		m.styles.Accent.Render(d.Study.Label),
		m.styles.Faint.Render(d.Study.Hint)))
	b.WriteString(fmt.Sprintf("%s %s %s  %s\n\n",
		m.styles.Text.Render("Habits"),
		renderBar(d.Habits.Ratio, 20, m.styles),
		m.styles.Accent.Render(d.Habits.Label),
		m.styles.Faint.Render(d.Habits.Hint)))

	b.WriteString(m.styles.Faint.Render(fmt.Sprintf(
		"Streak %dd   Overdue %d   This week %d   Open %d",
		d.Streak, d.Overdue, d.Week, d.OpenCount)))
	b.WriteString("\n\n")

	if d.NextUp != nil {
		badge := m.styles.tier(d.NextUp.Tier).Render("[" + d.NextUp.Badge + "]")
		b.WriteString(fmt.Sprintf("%s %s\n%s\n",
			badge,
			m.styles.Title.Render(d.NextUp.Title),
			m.styles.Faint.Render("    "+d.NextUp.Meta)))
	} else {
		b.WriteString(m.styles.Faint.Render("No deadlines yet. Add an assignment to start."))
		b.WriteString("\n")
	}

	if len(d.Sessions) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Title.Render("Recent focus"))
		b.WriteString("\n")
		for _, s := range d.Sessions {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				m.styles.Good.Render(s.Title),
				m.styles.Faint.Render(s.When)))
		}
	}

	return b.String()
}

func (m *Model) renderHabits() string {
	d := m.dash
	if len(d.HabitList) == 0 {
		return m.styles.Faint.Render("No habits yet. Press 'a' to add one.")
	}
	var b strings.Builder
	for i, h := range d.HabitList {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Accent.Render("> ")
		}
		mark := m.styles.Faint.Render("○")
		if h.DoneToday {
			mark = m.styles.Good.Render("●")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, h.Title))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Faint.Render(fmt.Sprintf("%d of %d done today", d.HabitsDone, d.HabitsTotal)))
	return b.String()
}

func (m *Model) renderAssignments() string {
	d := m.dash
	if len(d.Assignments) == 0 {
		return m.styles.Faint.Render("No assignments yet. Press 'a' to add one.")
	}
	var b strings.Builder
	for i, a := range d.Assignments {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Accent.Render("> ")
		}
		badge := m.styles.tier(a.Tier).Render("[" + a.Badge + "]")
		title := a.Title
		if a.Done {
			badge = m.styles.Faint.Render("[Done]")
			title = m.styles.Faint.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", cursor, badge, title, m.styles.Faint.Render(a.Sub)))
	}
	return b.String()
}

func (m *Model) renderFocus() string {
	var b strings.Builder
	now := time.Now()
	clock := focus.FormatClock(m.svc.Focus.Remaining(now))
	b.WriteString(m.styles.Clock.Render(clock))
	b.WriteString("\n\n")
	switch m.svc.Focus.State() {
	case focus.Running:
		b.WriteString(m.styles.Faint.Render("Focusing. 'x' stops without logging."))
	case focus.Completed:
		b.WriteString(m.styles.Good.Render(fmt.Sprintf("Done. %dm logged.", m.svc.Focus.Minutes())))
		b.WriteString("\n")
		b.WriteString(m.styles.Faint.Render("'r' resets the timer."))
	default:
		b.WriteString(m.styles.Faint.Render(fmt.Sprintf("%dm selected. 's' starts, +/- adjusts.", m.svc.Focus.Minutes())))
	}
	return b.String()
}

func (m *Model) helpLine() string {
	if m.inserting {
		return "enter save · esc cancel"
	}
	switch m.tab {
	case tabHabits, tabAssignments:
		return "tab switch · j/k move · enter toggle · a add · t theme · p palette · q quit"
	case tabFocus:
		return "s start · x stop · r reset · +/- minutes · tab switch · q quit"
	default:
		return "tab switch · t theme · p palette · q quit"
	}
}

// renderBar draws a fixed-width progress bar, clamping overflow.
func renderBar(ratio float64, width int, st Styles) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return st.Accent.Render(bar)
}
