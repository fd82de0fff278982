package cookmode

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/GitHubUser106/magic-meal/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	instructionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d4d4d8"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Strikethrough(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	timerRunStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	timerFiredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true)

	timerPausedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#71717a")).
				Italic(true)

	finishStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)
)

// timerState tracks the single per-step countdown.
type timerState int

const (
	timerNone timerState = iota // current step has no parseable duration
	timerReady
	timerRunning
	timerPaused
	timerFired
	timerDismissed
)

type tickMsg time.Time

// Model is the cook-mode walkthrough for one recipe. Navigation never
// touches durable state; quitting mid-recipe loses nothing but the
// checklist marks.
type Model struct {
	recipe domain.Recipe
	log    *zap.SugaredLogger

	step     int
	done     []bool
	finished bool

	timer     timerState
	duration  time.Duration
	remaining time.Duration
	bar       progress.Model

	width int
}

// New builds the walkthrough model positioned at the first step.
func New(recipe domain.Recipe, log *zap.SugaredLogger) Model {
	m := Model{
		recipe: recipe,
		log:    log,
		done:   make([]bool, len(recipe.Steps)),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		width:  80,
	}
	m.resetTimer()
	return m
}

// Run starts the walkthrough as a full Bubble Tea program and blocks
// until the user quits or finishes.
func Run(recipe domain.Recipe, log *zap.SugaredLogger) error {
	p := tea.NewProgram(New(recipe, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running cook mode: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ringBell writes the terminal bell so a backgrounded terminal still
// signals expiry.
func ringBell() tea.Msg {
	fmt.Print("\a")
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 8; w > 10 {
			m.bar.Width = w
		}
		return m, nil

	case tickMsg:
		if m.timer == timerRunning {
			m.remaining -= time.Second
			if m.remaining <= 0 {
				m.remaining = 0
				m.timer = timerFired
				m.log.Debugw("step timer fired", "recipe", m.recipe.ID, "step", m.step+1)
				return m, tea.Batch(tickCmd(), ringBell)
			}
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "right", "n", "enter":
		if m.finished || len(m.recipe.Steps) == 0 {
			return m, tea.Quit
		}
		if m.step == len(m.recipe.Steps)-1 {
			m.finished = true
			return m, nil
		}
		m.step++
		m.resetTimer()
		return m, nil

	case "left", "b":
		if m.finished {
			m.finished = false
			return m, nil
		}
		if m.step > 0 {
			m.step--
			m.resetTimer()
		}
		return m, nil

	case " ", "x":
		if !m.finished && m.step < len(m.done) {
			m.done[m.step] = !m.done[m.step]
		}
		return m, nil

	case "t":
		switch m.timer {
		case timerReady, timerPaused:
			m.timer = timerRunning
		case timerRunning:
			m.timer = timerPaused
		}
		return m, nil

	case "d", "esc":
		if m.timer == timerFired {
			m.timer = timerDismissed
		}
		return m, nil
	}
	return m, nil
}

// resetTimer re-derives the countdown from the current step's text.
func (m *Model) resetTimer() {
	m.duration = 0
	m.remaining = 0
	m.timer = timerNone
	if m.step < len(m.recipe.Steps) {
		if d := ParseStepTimer(m.recipe.Steps[m.step]); d > 0 {
			m.duration = d
			m.remaining = d
			m.timer = timerReady
		}
	}
}

func (m Model) View() string {
	if m.finished {
		return m.finishView()
	}
	if len(m.recipe.Steps) == 0 {
		return hintStyle.Render("  This recipe has no written steps.\n  q quit")
	}

	var b strings.Builder

	header := fmt.Sprintf("%s %s — step %d/%d",
		m.recipe.Emoji, m.recipe.Name, m.step+1, len(m.recipe.Steps))
	b.WriteString(headerStyle.Render("  " + header))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("  " + m.progressDots()))
	b.WriteString("\n\n")

	text := m.recipe.Steps[m.step]
	if m.done[m.step] {
		b.WriteString(doneStyle.Render("  ✓ " + text))
	} else {
		b.WriteString(instructionStyle.Render("  " + text))
	}
	b.WriteString("\n\n")

	if line := m.timerLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n\n")
	}

	b.WriteString(hintStyle.Render("  " + m.keyHints()))
	return b.String()
}

// progressDots renders one glyph per step: done, current, or upcoming.
func (m Model) progressDots() string {
	var b strings.Builder
	for i := range m.recipe.Steps {
		switch {
		case i == m.step:
			b.WriteString("●")
		case m.done[i]:
			b.WriteString("✓")
		default:
			b.WriteString("·")
		}
		if i < len(m.recipe.Steps)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (m Model) timerLine() string {
	switch m.timer {
	case timerReady:
		return hintStyle.Render(fmt.Sprintf("  timer ready: %s (press t)", fmtCountdown(m.duration)))
	case timerRunning:
		elapsed := 0.0
		if m.duration > 0 {
			elapsed = 1 - m.remaining.Seconds()/m.duration.Seconds()
		}
		return timerRunStyle.Render("  ⏱ "+fmtCountdown(m.remaining)) + "\n  " + m.bar.ViewAs(elapsed)
	case timerPaused:
		return timerPausedStyle.Render("  ⏱ " + fmtCountdown(m.remaining) + " (paused)")
	case timerFired:
		return timerFiredStyle.Render("  ⏱ TIME'S UP — press d to dismiss")
	}
	return ""
}

func (m Model) keyHints() string {
	hints := []string{"n next", "b back", "space done"}
	switch m.timer {
	case timerReady:
		hints = append(hints, "t start timer")
	case timerRunning:
		hints = append(hints, "t pause")
	case timerPaused:
		hints = append(hints, "t resume")
	case timerFired:
		hints = append(hints, "d dismiss")
	}
	hints = append(hints, "q quit")
	return strings.Join(hints, "  ·  ")
}

func (m Model) finishView() string {
	marked := 0
	for _, d := range m.done {
		if d {
			marked++
		}
	}
	var b strings.Builder
	b.WriteString(finishStyle.Render(fmt.Sprintf("  %s %s — done!", m.recipe.Emoji, m.recipe.Name)))
	b.WriteString("\n\n")
	b.WriteString(instructionStyle.Render(fmt.Sprintf("  %d of %d steps checked off. Enjoy your meal.", marked, len(m.done))))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("  enter quit  ·  b back to steps"))
	return b.String()
}

func fmtCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	min := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%02ds", min, sec)
}
