package domain

import (
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

const millisecondsInDay = 24 * 60 * 60 * 1000

// FractionToDuration converts a (possibly fractional) number of days to a duration,
// truncated to whole milliseconds.
func FractionToDuration(days float64) time.Duration {
	return time.Duration(days*millisecondsInDay) * time.Millisecond
}

// EligibilityInput is everything the eligibility derivation depends on
type EligibilityInput struct {
	Now                     time.Time
	Nova                    *models.Nova
	Quest                   *models.Quest
	MemberPhaseOneStartDate time.Time
	Applied                 *models.AppliedQuest
	IsOwner                 bool
}

// Eligibility is the derived view of whether an account can act on a quest
type Eligibility struct {
	HasQuestStarted          bool `json:"hasQuestStarted" yaml:"hasQuestStarted"`
	HasQuestEnded            bool `json:"hasQuestEnded" yaml:"hasQuestEnded"`
	HasMemberPhaseOneStarted bool `json:"hasMemberPhaseOneStarted" yaml:"hasMemberPhaseOneStarted"`
	CanApplyForAQuest        bool `json:"canApplyForAQuest" yaml:"canApplyForAQuest"`
	HasAppliedForQuest       bool `json:"hasAppliedForQuest" yaml:"hasAppliedForQuest"`
}

// IsOwner reports whether account administers the nova.
// The zero address never owns anything.
func IsOwner(account common.Address, nova *models.Nova) bool {
	if nova == nil || account == (common.Address{}) {
		return false
	}
	return nova.Admin == account
}

// HasQuestStarted reports whether now is strictly after the quest start
func HasQuestStarted(now time.Time, quest *models.Quest) bool {
	if !quest.HasStartDate() {
		return false
	}
	return now.After(quest.Start())
}

// QuestEndDate returns the start date shifted by the quest duration
func QuestEndDate(quest *models.Quest) time.Time {
	if !quest.HasStartDate() {
		return time.Time{}
	}
	return quest.Start().Add(FractionToDuration(quest.DurationInDays))
}

// HasQuestEnded reports whether now is strictly after start + duration
func HasQuestEnded(now time.Time, quest *models.Quest) bool {
	if !quest.HasStartDate() {
		return false
	}
	return now.After(QuestEndDate(quest))
}

// EvaluateEligibility derives the eligibility flags for one quest.
// CanApplyForAQuest intentionally ignores HasQuestStarted.
func EvaluateEligibility(in EligibilityInput) Eligibility {
	e := Eligibility{
		HasQuestStarted:          HasQuestStarted(in.Now, in.Quest),
		HasQuestEnded:            HasQuestEnded(in.Now, in.Quest),
		HasMemberPhaseOneStarted: in.Now.After(in.MemberPhaseOneStartDate),
	}

	e.CanApplyForAQuest = !in.IsOwner &&
		in.Applied == nil &&
		e.HasMemberPhaseOneStarted &&
		!e.HasQuestEnded

	if in.Nova != nil && in.Quest != nil {
		e.HasAppliedForQuest = in.Applied.Matches(in.Nova.OnboardingQuestAddress, in.Quest.QuestID)
	}

	return e
}
