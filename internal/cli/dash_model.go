package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/cli/formatter"
	"github.com/alexanderramin/sprintbudget/internal/dates"
	"github.com/alexanderramin/sprintbudget/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── key map ──────────────────────────────────────────────────────────────────

type dashKeyMap struct {
	NextView  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	ClearDay  key.Binding
	Reload    key.Binding
	Quit      key.Binding
}

func defaultDashKeyMap() dashKeyMap {
	return dashKeyMap{
		NextView:  key.NewBinding(key.WithKeys("tab", "v"), key.WithHelp("tab", "view")),
		PrevMonth: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next month")),
		PrevDay:   key.NewBinding(key.WithKeys(","), key.WithHelp(",", "prev day")),
		NextDay:   key.NewBinding(key.WithKeys("."), key.WithHelp(".", "next day")),
		ClearDay:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear day")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.PrevMonth, k.NextMonth, k.PrevDay, k.NextDay, k.Reload, k.Quit}
}

func (k dashKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextView, k.Reload, k.Quit},
		{k.PrevMonth, k.NextMonth},
		{k.PrevDay, k.NextDay, k.ClearDay},
	}
}

func dashViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

// ── messages ─────────────────────────────────────────────────────────────────

// dashLoadedMsg carries a freshly computed plan.
type dashLoadedMsg struct {
	resp *app.PlanResponse
	err  error
}

// ── model ────────────────────────────────────────────────────────────────────

// dashModel is the interactive dashboard: the plan summary above one of the
// three projections, with month paging and a day drill-down.
type dashModel struct {
	app  *App
	ctx  context.Context
	mode domain.ViewMode
	info formatter.CardInfo

	// month is the first day of the calendar month shown, empty until the
	// first load picks up the stored month.
	month string
	day   string

	resp    *app.PlanResponse
	err     error
	loading bool

	keys  dashKeyMap
	help  help.Model
	vp    viewport.Model
	ready bool
	width int
}

func newDashModel(ctx context.Context, a *App) dashModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = dashViewportKeyMap()
	vp.MouseWheelEnabled = true

	mode := domain.ViewMode(a.Config.Display.ViewMode)
	if !domain.ValidViewModes[string(mode)] {
		mode = domain.ViewMonth
	}

	return dashModel{
		app:     a,
		ctx:     ctx,
		mode:    mode,
		info:    cardInfoFrom(a.Config.Display.CardInfo),
		loading: true,
		keys:    defaultDashKeyMap(),
		help:    help.New(),
		vp:      vp,
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.load(false)
}

// load recomputes the plan. With persistMonth the month shown is stored
// first so the next run opens on it.
func (m dashModel) load(persistMonth bool) tea.Cmd {
	a, ctx := m.app, m.ctx
	req := app.PlanRequest{Month: m.month, SelectedDay: m.day}
	return func() tea.Msg {
		if persistMonth && req.Month != "" {
			month := req.Month
			if _, err := a.Settings.Update(ctx, domain.SettingsPatch{MonthShown: &month}); err != nil {
				return dashLoadedMsg{err: err}
			}
		}
		resp, err := a.Plan.Compute(ctx, req)
		return dashLoadedMsg{resp: resp, err: err}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-3, 1)
		m.ready = true
		m.vp.SetContent(m.content())
		return m, nil

	case dashLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.resp = msg.resp
			m.month = dates.ToISO(msg.resp.Month.Month)
		}
		m.vp.SetContent(m.content())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m dashModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextView):
		m.mode = nextViewMode(m.mode)
		m.vp.SetContent(m.content())
		m.vp.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.PrevMonth):
		return m.shiftMonth(-1)

	case key.Matches(msg, m.keys.NextMonth):
		return m.shiftMonth(1)

	case key.Matches(msg, m.keys.PrevDay):
		return m.shiftDay(-1)

	case key.Matches(msg, m.keys.NextDay):
		return m.shiftDay(1)

	case key.Matches(msg, m.keys.ClearDay):
		if m.day == "" {
			return m, nil
		}
		m.day = ""
		m.loading = true
		return m, m.load(false)

	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		return m, m.load(false)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m dashModel) shiftMonth(n int) (tea.Model, tea.Cmd) {
	if m.month == "" {
		return m, nil
	}
	first := dates.ParseISO(m.month)
	m.month = dates.ToISO(first.AddDate(0, n, 0))
	m.day = ""
	m.loading = true
	return m, m.load(true)
}

// shiftDay moves the drill-down day, following it into the next month
// when it leaves the one shown.
func (m dashModel) shiftDay(n int) (tea.Model, tea.Cmd) {
	if m.month == "" {
		return m, nil
	}
	d := dates.ParseISO(m.month)
	if m.day != "" {
		d = dates.AddDays(dates.ParseISO(m.day), n)
	}
	m.day = dates.ToISO(d)

	persist := false
	if first := dates.ToISO(dates.StartOfMonth(d)); first != m.month {
		m.month = first
		persist = true
	}
	m.loading = true
	return m, m.load(persist)
}

func nextViewMode(v domain.ViewMode) domain.ViewMode {
	switch v {
	case domain.ViewMonth:
		return domain.ViewTimeline
	case domain.ViewTimeline:
		return domain.ViewBars
	default:
		return domain.ViewMonth
	}
}

// content is everything below the title bar; it scrolls in the viewport.
func (m dashModel) content() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: " + m.err.Error())
	}
	if m.resp == nil {
		return formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString(formatter.FormatSummary(m.resp))
	b.WriteString("\n\n")
	b.WriteString(renderView(m.resp, m.mode, m.info))
	if m.resp.Day != nil && m.mode == domain.ViewMonth {
		b.WriteString("\n")
		b.WriteString(formatter.FormatDay(*m.resp.Day))
	}
	return b.String()
}

func (m dashModel) View() string {
	title := formatter.StyleHeader.Render("sprintbudget") + "  " + formatter.Dim(string(m.mode)+" view")
	if m.loading {
		title += "  " + formatter.Dim("loading…")
	}

	body := m.content()
	if m.ready {
		body = m.vp.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.help.View(m.keys))
}
