package cli

import (
	"context"
	"testing"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualScheduler struct {
	fn func()
}

func (s *manualScheduler) AfterFunc(_ time.Duration, fn func()) func() {
	s.fn = fn
	return func() {}
}

func startReveal(t *testing.T, now time.Time, start time.Time) (*usecase.Reveal, *manualScheduler) {
	t.Helper()
	sched := &manualScheduler{}
	uc := usecase.NewWatchQuestStart(&config.RuntimeConfig{ShowcaseURL: "https://showcase.test"}, nil, sched, func() time.Time { return now })
	nova := &models.Nova{Name: "Builders", DaoAddress: common.HexToAddress(testDao)}
	quest := &models.Quest{QuestID: 1, StartDate: models.NewDate(start), Metadata: models.QuestMetadata{Name: "Build"}}
	reveal := uc.Start(context.Background(), usecase.WatchParams{Nova: nova, Quest: quest, Highlighted: true})
	t.Cleanup(reveal.Stop)
	return reveal, sched
}

func TestCountdownModel_TicksAndReveals(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reveal, sched := startReveal(t, now, now.Add(90*time.Second))

	clock := now
	m := newCountdownModel(reveal, func() time.Time { return clock })
	assert.False(t, m.revealed)
	assert.Equal(t, 90*time.Second, m.remaining)
	assert.Contains(t, m.View(), "00d 00h 01m 30s")

	clock = now.Add(30 * time.Second)
	updated, cmd := m.Update(tickMsg(clock))
	m = updated.(countdownModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, time.Minute, m.remaining)

	require.NotNil(t, sched.fn)
	sched.fn()
	updated, _ = m.Update(revealedMsg{})
	m = updated.(countdownModel)
	assert.True(t, m.revealed)
	assert.Contains(t, m.View(), "Go to quest")
	assert.Contains(t, m.View(), reveal.QuestURL)
}

func TestCountdownModel_AlreadyStarted(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reveal, _ := startReveal(t, now, now.Add(-time.Minute))

	m := newCountdownModel(reveal, func() time.Time { return now })
	assert.True(t, m.revealed)
	assert.NotNil(t, m.Init())
}

func TestCountdownModel_Quit(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reveal, _ := startReveal(t, now, now.Add(time.Hour))

	m := newCountdownModel(reveal, func() time.Time { return now })
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(countdownModel)
	assert.True(t, m.quit)
	assert.NotNil(t, cmd)
	assert.False(t, m.revealed)
}

func TestWaitForReveal_ReturnsOnStop(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reveal, _ := startReveal(t, now, now.Add(time.Hour))

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- waitForReveal(reveal)() }()

	reveal.Stop()
	select {
	case msg := <-msgs:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("waitForReveal still blocked after Stop")
	}
}

func TestWaitForReveal_ReturnsOnReveal(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	reveal, sched := startReveal(t, now, now.Add(time.Hour))

	require.NotNil(t, sched.fn)
	sched.fn()
	assert.Equal(t, revealedMsg{}, waitForReveal(reveal)())
}
