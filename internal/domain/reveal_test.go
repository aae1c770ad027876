package domain

import (
	"testing"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestRevealDelay(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	delay, passed := RevealDelay(now, now.Add(10*time.Second))
	assert.Equal(t, 10*time.Second, delay)
	assert.False(t, passed)

	delay, passed = RevealDelay(now, now)
	assert.Zero(t, delay)
	assert.True(t, passed)

	delay, passed = RevealDelay(now, now.Add(-time.Hour))
	assert.Zero(t, delay)
	assert.True(t, passed)
}

func TestNewCountdown(t *testing.T) {
	c := NewCountdown(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 900*time.Millisecond)
	assert.Equal(t, Countdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, c)
	assert.Equal(t, "02d 03h 04m 05s", c.String())

	assert.Equal(t, Countdown{}, NewCountdown(-time.Minute))
}

func TestCanSubmitTask(t *testing.T) {
	assert.True(t, CanSubmitTask(Eligibility{HasAppliedForQuest: true, HasQuestStarted: true}))
	assert.False(t, CanSubmitTask(Eligibility{HasAppliedForQuest: true}))
	assert.False(t, CanSubmitTask(Eligibility{HasQuestStarted: true}))
}

func TestQuestURL(t *testing.T) {
	nova := &models.Nova{
		DaoAddress:             common.HexToAddress("0x4444444444444444444444444444444444444444"),
		OnboardingQuestAddress: common.HexToAddress("0x3333333333333333333333333333333333333333"),
	}
	url := QuestURL("https://showcase.example", nova, 4)
	assert.Equal(t,
		"https://showcase.example/quest?questId=4&onboardingQuestAddress=0x3333333333333333333333333333333333333333&daoAddress=0x4444444444444444444444444444444444444444",
		url)
}
