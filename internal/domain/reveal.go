package domain

import (
	"fmt"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
)

// RevealDelay returns how long until start, computed once from now.
// passed is true when start is not in the future.
func RevealDelay(now, start time.Time) (delay time.Duration, passed bool) {
	delay = start.Sub(now)
	if delay <= 0 {
		return 0, true
	}
	return delay, false
}

// Countdown splits a remaining duration into display units
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// NewCountdown breaks d down into days, hours, minutes and seconds.
// Negative durations count as zero.
func NewCountdown(d time.Duration) Countdown {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return Countdown{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

func (c Countdown) String() string {
	return fmt.Sprintf("%02dd %02dh %02dm %02ds", c.Days, c.Hours, c.Minutes, c.Seconds)
}

// CanSubmitTask reports whether tasks of the quest accept submissions from the account:
// the account applied to this quest and the quest has started.
func CanSubmitTask(e Eligibility) bool {
	return e.HasAppliedForQuest && e.HasQuestStarted
}

// QuestURL is the web address of a quest on the showcase site
func QuestURL(baseURL string, nova *models.Nova, questID int) string {
	return fmt.Sprintf("%s/quest?questId=%d&onboardingQuestAddress=%s&daoAddress=%s",
		baseURL, questID, nova.OnboardingQuestAddress.Hex(), nova.DaoAddress.Hex())
}
