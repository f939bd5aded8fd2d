package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ticker/internal/charlist"
	"github.com/san-kum/ticker/internal/config"
	"github.com/san-kum/ticker/internal/easing"
	"github.com/san-kum/ticker/internal/feed"
	"github.com/san-kum/ticker/internal/logging"
	"github.com/san-kum/ticker/internal/ticker"
)

const historyCapacity = 120

// TickMsg advances the animation by one frame.
type TickMsg time.Time

// FeedMsg pulls the next value from the feed.
type FeedMsg time.Time

// Model is the live ticker view: a feed pushes values into a ticker that is
// redrawn every frame.
type Model struct {
	title     string
	tk        *ticker.Ticker
	src       feed.Source
	frame     ticker.Frame
	interval  time.Duration
	feedEvery time.Duration
	easing    string
	direction charlist.Direction
	theme     Theme
	running   bool
	instant   bool
	showHelp  bool
	progress  []float64
	widths    []float64
	completed int
	keys      keyMap
	help      help.Model
}

// NewModel builds the view for cfg. Completed transitions are counted and
// shown in the stats panel.
func NewModel(title string, cfg *config.Config, src feed.Source) (*Model, error) {
	m := &Model{
		title:     title,
		src:       src,
		interval:  cfg.FrameInterval(),
		feedEvery: cfg.Feed.Interval,
		easing:    cfg.Easing,
		theme:     GetTheme(cfg.Theme),
		instant:   cfg.DisableAnimation,
		running:   true,
		keys:      defaultKeys(),
		help:      help.New(),
	}
	if m.feedEvery <= 0 {
		m.feedEvery = config.DefaultInterval
	}

	opts, err := cfg.Options(func() { m.completed++ })
	if err != nil {
		return nil, err
	}
	m.direction = opts.Direction
	m.tk = ticker.New(feed.Initial(cfg.Feed), opts)
	m.frame = m.tk.Frame()
	return m, nil
}

func (m *Model) frameTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) feedTick() tea.Cmd {
	return tea.Tick(m.feedEvery, func(t time.Time) tea.Msg { return FeedMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.frameTick(), m.feedTick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.running = !m.running
		case key.Matches(msg, m.keys.Next):
			m.push(time.Now())
		case key.Matches(msg, m.keys.Easing):
			m.cycleEasing()
		case key.Matches(msg, m.keys.Direction):
			m.cycleDirection()
		case key.Matches(msg, m.keys.Instant):
			m.instant = !m.instant
			m.tk.SetDisableAnimation(m.instant)
		case key.Matches(msg, m.keys.Theme):
			m.theme = NextTheme(m.theme.Name)
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case FeedMsg:
		if m.running {
			m.push(time.Time(msg))
		}
		return m, m.feedTick()
	case TickMsg:
		m.step(time.Time(msg))
		return m, m.frameTick()
	}
	return m, nil
}

func (m *Model) push(now time.Time) {
	if m.src == nil {
		return
	}
	value := m.src.Next()
	if m.tk.SetValue(value, now) {
		m.progress = m.progress[:0]
		logging.Logger().Debug("feed value", "value", value)
	}
}

func (m *Model) step(now time.Time) {
	animating := m.tk.Animating()
	m.frame = m.tk.Tick(now)
	if animating {
		m.progress = appendCapped(m.progress, m.frame.Progress)
	}
	m.widths = appendCapped(m.widths, m.frame.Width())
}

func appendCapped(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > historyCapacity {
		s = s[len(s)-historyCapacity:]
	}
	return s
}

func (m *Model) cycleEasing() {
	names := easing.Names()
	next := names[0]
	for i, n := range names {
		if n == m.easing {
			next = names[(i+1)%len(names)]
			break
		}
	}
	fn, err := easing.Lookup(next)
	if err != nil {
		return
	}
	m.easing = next
	m.tk.SetEasing(fn)
}

func (m *Model) cycleDirection() {
	dirs := charlist.Directions()
	for i, d := range dirs {
		if d == m.direction {
			m.direction = dirs[(i+1)%len(dirs)]
			break
		}
	}
	m.tk.SetDirection(m.direction)
}

// Frame returns the most recently drawn frame.
func (m *Model) Frame() ticker.Frame { return m.frame }

// Completed is the number of transitions that ran to the end.
func (m *Model) Completed() int { return m.completed }

func (m *Model) View() string {
	th := m.theme
	title := headerStyle.Foreground(th.Secondary).Render(strings.ToUpper(m.title))
	digits := panelStyle.BorderForeground(th.Muted).Render(Render(m.frame, th))

	var s strings.Builder
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.instant {
		status += " · INSTANT"
	}
	value := valueStyle.Foreground(th.Text)
	moving := 0
	for _, c := range m.tk.Columns() {
		if !c.Idle() {
			moving++
		}
	}
	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(th.Warning).Render(status) + "\n\n")
	s.WriteString(labelStyle.Render("Value") + value.Render(m.frame.Text) + "\n")
	s.WriteString(labelStyle.Render("Easing") + value.Render(m.easing) + "\n")
	s.WriteString(labelStyle.Render("Direction") + value.Render(m.direction.String()) + "\n")
	s.WriteString(labelStyle.Render("Moving") + value.Render(fmt.Sprintf("%d/%d", moving, len(m.tk.Columns()))) + "\n")
	s.WriteString(labelStyle.Render("Progress") + ProgressBar(m.frame.Progress, 20, th) +
		value.Render(fmt.Sprintf(" %3.0f%%", m.frame.Progress*100)) + "\n")
	s.WriteString(labelStyle.Render("Width") + value.Render(Sparkline(m.widths, 20)) +
		value.Render(fmt.Sprintf(" %.2fem", m.frame.Width())) + "\n")
	s.WriteString(labelStyle.Render("Done") + value.Render(fmt.Sprintf("%d", m.completed)) + "\n")

	if len(m.progress) > 1 {
		chart := asciigraph.Plot(m.progress, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Progress"))
		s.WriteString(graphStyle.Foreground(th.Primary).Render(chart) + "\n")
	}
	s.WriteString(helpStyle.Render(m.help.View(m.keys)))

	stats := lipgloss.NewStyle().Padding(0, 2).Render(s.String())
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, digits, stats))
}

// Run starts the full-screen program and blocks until the user quits.
func Run(title string, cfg *config.Config, src feed.Source) error {
	m, err := NewModel(title, cfg, src)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
