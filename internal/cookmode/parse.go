// Package cookmode implements the step-by-step cooking walkthrough: a
// Bubble Tea program that pages through a recipe's instructions with a
// per-step checklist and an optional countdown timer parsed from the
// step text.
package cookmode

import (
	"regexp"
	"strconv"
	"time"
)

// stepTimerPattern matches "8 min", "8-10 minutes", "12 mins" and so on.
// For a range the first number wins.
var stepTimerPattern = regexp.MustCompile(`(\d+)(?:\s*[-–]\s*\d+)?\s*min(?:ute)?s?`)

// ParseStepTimer extracts a countdown duration from instruction text.
// Returns 0 when the step mentions no minute span. Seconds-only phrasing
// ("30 more seconds") is deliberately not matched; those steps are too
// short to be worth a timer.
func ParseStepTimer(text string) time.Duration {
	m := stepTimerPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Minute
}
