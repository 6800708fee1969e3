//go:build !windows

// ABOUTME: E2E tests for the survey, selector interrupt, line-mode fallback and cursor demo
// ABOUTME: Drives the real binary through a PTY and checks the rendered screen

package e2e

import (
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arrowDown = "\x1b[B"

func TestSurvey_CompletesWithCleanLines(t *testing.T) {
	skipShort(t)

	s := start(t)
	defer s.close()

	s.expect(t, "What is your name?")
	s.sendLine(t, "")
	s.expect(t, "(required)")
	s.sendLine(t, "Alice")
	s.expect(t, "Hello, Alice!")

	s.expect(t, "(Y/n)")
	s.sendLine(t, "")
	s.expect(t, "You like cheese!")

	s.sendLine(t, "abc")
	s.expect(t, "(not an integer)")
	s.sendLine(t, "42")
	s.expect(t, "You are 42 years old.")

	s.sendLine(t, "1.8")
	s.expect(t, "(use arrow keys to select)")
	s.sendKeys(t, arrowDown, "\r")
	s.expect(t, "You are 1.8 feet tall.")

	s.expect(t, "BubbleSort")
	s.sendKeys(t, arrowDown, arrowDown, "\r")
	s.expect(t, "You selected BubbleSort.")
	s.expect(t, "Good bye!")

	assert.Equal(t, 0, s.waitExit(t, 5*time.Second))

	screen := s.text()
	assert.Contains(t, screen, "? What is your name? Alice\n")
	assert.Contains(t, screen, "? How old are you? 42\n")
	assert.Contains(t, screen, "? ..and what unit was that? feet\n")
	assert.Contains(t, screen, "? Pick a sorting algorithm BubbleSort\n")
	assert.NotContains(t, screen, "(required)")
	assert.NotContains(t, screen, "(not an integer)")
	assert.NotContains(t, screen, "QuickSort")
}

func TestSelector_CtrlCExitsWith130(t *testing.T) {
	skipShort(t)

	s := start(t)
	defer s.close()

	s.expect(t, "What is your name?")
	s.sendLine(t, "Bob")
	s.expect(t, "(Y/n)")
	s.sendLine(t, "n")
	s.expect(t, "What is wrong with cheese?!")
	s.sendLine(t, "30")
	s.expect(t, "How tall are you?")
	s.sendLine(t, "6")
	s.expect(t, "(use arrow keys to select)")

	s.sendKeys(t, "\x03")
	assert.Equal(t, 130, s.waitExit(t, 5*time.Second))
	assert.NotContains(t, s.text(), "metres")
}

func TestNoColor_FallsBackToNumberedMenu(t *testing.T) {
	skipShort(t)

	s := start(t, "-no-color")
	defer s.close()

	s.expect(t, "What is your name?")
	s.sendLine(t, "Carol")
	s.expect(t, "(Y/n)")
	s.sendLine(t, "y")
	s.expect(t, "/ You like cheese!")
	s.sendLine(t, "7")
	s.expect(t, "How tall are you?")
	s.sendLine(t, "1.2")

	s.expect(t, "[2] feet")
	s.sendLine(t, "2")
	s.expect(t, "You are 1.2 feet tall.")

	s.expect(t, "[4] InsertionSort")
	s.sendLine(t, "InsertionSort")
	s.expect(t, "You selected InsertionSort.")

	assert.Equal(t, 0, s.waitExit(t, 5*time.Second))
	assert.NotContains(t, s.text(), "\x1b")
}

func TestCursorDemo_RestoresSavedPositions(t *testing.T) {
	skipShort(t)

	s := start(t, "-cursor-demo")
	defer s.close()

	s.expect(t, "test the console cursor APIs")
	s.expect(t, "erasemekeepme")
	s.sendKeys(t, "x", "x", "x")
	s.expect(t, "Bye!")
	s.expect(t, "What is your name?")

	lines := s.lines()
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, []string{"keepme", "eraseme", "eraseme", "erasemekeepme", "keepme", "- Bye!"}, lines[1:7])
}

func TestVersionFlag(t *testing.T) {
	skipShort(t)

	out, err := exec.Command(binPath, "-version").CombinedOutput()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "promptkit dev"))
}
