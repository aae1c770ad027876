package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
)

type tickMsg time.Time

type revealedMsg struct{}

// countdownModel is the bubbletea model for the quest start countdown
type countdownModel struct {
	reveal    *usecase.Reveal
	now       func() time.Time
	remaining time.Duration
	revealed  bool
	quit      bool
}

func newCountdownModel(reveal *usecase.Reveal, now func() time.Time) countdownModel {
	return countdownModel{
		reveal:    reveal,
		now:       now,
		remaining: reveal.Remaining(now()),
		revealed:  reveal.HasTimePassed(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitForReveal(reveal *usecase.Reveal) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-reveal.Done():
			return revealedMsg{}
		case <-reveal.Stopped():
			return nil
		}
	}
}

// Init is the initial command for bubbletea
func (m countdownModel) Init() tea.Cmd {
	if m.revealed {
		return tea.Quit
	}
	return tea.Batch(tick(), waitForReveal(m.reveal))
}

// Update handles messages and updates the model
func (m countdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quit = true
			return m, tea.Quit
		}
	case tickMsg:
		if m.revealed {
			return m, nil
		}
		m.remaining = m.reveal.Remaining(m.now())
		return m, tick()
	case revealedMsg:
		m.revealed = true
		m.remaining = 0
		return m, tea.Quit
	}
	return m, nil
}

// View renders the UI
func (m countdownModel) View() string {
	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprintf("%s · %s\n\n", m.reveal.Nova.Name, m.reveal.Quest.Metadata.Name))

	if m.revealed {
		b.WriteString(color.New(color.FgGreen, color.Bold).Sprint("Go to quest"))
		b.WriteString("  ")
		b.WriteString(color.New(color.FgCyan, color.Underline).Sprint(m.reveal.QuestURL))
		b.WriteString("\n")
		return b.String()
	}
	if m.quit {
		return b.String()
	}

	c := domain.NewCountdown(m.remaining)
	b.WriteString(fmt.Sprintf("Quest starts in  %s\n\n", color.New(color.FgYellow, color.Bold).Sprint(c.String())))
	b.WriteString(color.New(color.Faint).Sprint("q: quit\n"))

	return b.String()
}

// RunCountdown shows a live countdown until reveal fires or the user quits.
// It reports whether the reveal fired.
func RunCountdown(reveal *usecase.Reveal, now func() time.Time) (bool, error) {
	p := tea.NewProgram(newCountdownModel(reveal, now))

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("countdown failed: %w", err)
	}

	m := finalModel.(countdownModel)
	return m.revealed, nil
}
