package cookmode

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GitHubUser106/magic-meal/internal/domain"
	"github.com/GitHubUser106/magic-meal/internal/logging"
)

func TestParseStepTimer(t *testing.T) {
	cases := []struct {
		text string
		want time.Duration
	}{
		{"Cook for 8 minutes until golden", 8 * time.Minute},
		{"Simmer 8-10 minutes", 8 * time.Minute},
		{"Simmer 8 – 10 mins", 8 * time.Minute},
		{"Microwave 1 minute", time.Minute},
		{"Bake for 25 min, flipping halfway", 25 * time.Minute},
		{"Stir for 30 more seconds", 0},
		{"Season to taste", 0},
		{"", 0},
		// First number wins even with two spans in one step.
		{"Boil 3 minutes, then rest 10 minutes", 3 * time.Minute},
	}
	for _, tc := range cases {
		if got := ParseStepTimer(tc.text); got != tc.want {
			t.Errorf("ParseStepTimer(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func testRecipe() domain.Recipe {
	return domain.Recipe{
		ID:    "test-recipe",
		Name:  "Test Recipe",
		Emoji: "🍳",
		Steps: []string{
			"Chop everything",
			"Cook for 5 minutes",
			"Plate and serve",
		},
	}
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m tea.Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func TestNavigationBounds(t *testing.T) {
	m := New(testRecipe(), logging.Nop())

	// Back at the first step stays put.
	m = step(t, m, key("b"))
	if m.step != 0 {
		t.Fatalf("step = %d after back at start, want 0", m.step)
	}

	m = step(t, m, key("n"))
	m = step(t, m, key("n"))
	if m.step != 2 {
		t.Fatalf("step = %d, want 2", m.step)
	}

	// Next at the last step reaches the finish screen, not a phantom step.
	m = step(t, m, key("n"))
	if !m.finished {
		t.Fatal("expected finish screen after last step")
	}
	if m.step != 2 {
		t.Fatalf("step = %d on finish, want 2", m.step)
	}

	// Back leaves the finish screen.
	m = step(t, m, key("b"))
	if m.finished {
		t.Fatal("still finished after back")
	}
}

func TestToggleDone(t *testing.T) {
	m := New(testRecipe(), logging.Nop())

	m = step(t, m, key(" "))
	if !m.done[0] {
		t.Fatal("step not marked done")
	}
	m = step(t, m, key(" "))
	if m.done[0] {
		t.Fatal("toggle did not clear done mark")
	}

	// Marks survive navigation.
	m = step(t, m, key(" "))
	m = step(t, m, key("n"))
	m = step(t, m, key("b"))
	if !m.done[0] {
		t.Fatal("done mark lost after navigating away and back")
	}
}

func TestTimerDerivedFromStepText(t *testing.T) {
	m := New(testRecipe(), logging.Nop())

	if m.timer != timerNone {
		t.Fatalf("timer = %v on step without duration, want none", m.timer)
	}

	m = step(t, m, key("n"))
	if m.timer != timerReady {
		t.Fatalf("timer = %v on timed step, want ready", m.timer)
	}
	if m.duration != 5*time.Minute {
		t.Fatalf("duration = %v, want 5m", m.duration)
	}

	// Leaving the step resets the countdown.
	m = step(t, m, key("t"))
	m = step(t, m, tickMsg(time.Now()))
	m = step(t, m, key("n"))
	m = step(t, m, key("b"))
	if m.remaining != 5*time.Minute {
		t.Fatalf("remaining = %v after revisit, want full 5m", m.remaining)
	}
	if m.timer != timerReady {
		t.Fatalf("timer = %v after revisit, want ready", m.timer)
	}
}

func TestTimerCountdownAndFire(t *testing.T) {
	m := New(testRecipe(), logging.Nop())
	m = step(t, m, key("n"))
	m = step(t, m, key("t"))
	if m.timer != timerRunning {
		t.Fatalf("timer = %v after start, want running", m.timer)
	}

	m = step(t, m, tickMsg(time.Now()))
	if want := 5*time.Minute - time.Second; m.remaining != want {
		t.Fatalf("remaining = %v after one tick, want %v", m.remaining, want)
	}

	// Pause freezes the countdown.
	m = step(t, m, key("t"))
	m = step(t, m, tickMsg(time.Now()))
	if want := 5*time.Minute - time.Second; m.remaining != want {
		t.Fatalf("remaining = %v while paused, want %v", m.remaining, want)
	}

	// Resume and run it down to expiry.
	m = step(t, m, key("t"))
	m.remaining = time.Second
	m = step(t, m, tickMsg(time.Now()))
	if m.timer != timerFired {
		t.Fatalf("timer = %v at zero, want fired", m.timer)
	}

	// Ticks past expiry do not go negative.
	m = step(t, m, tickMsg(time.Now()))
	if m.remaining != 0 {
		t.Fatalf("remaining = %v after fire, want 0", m.remaining)
	}

	m = step(t, m, key("d"))
	if m.timer != timerDismissed {
		t.Fatalf("timer = %v after dismiss, want dismissed", m.timer)
	}
}
