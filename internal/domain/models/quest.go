package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Quest is a time-bounded onboarding campaign offering a role
type Quest struct {
	QuestID        int           `json:"questId" yaml:"questId"`
	StartDate      *Date         `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	DurationInDays float64       `json:"durationInDays" yaml:"durationInDays"`
	Active         bool          `json:"active" yaml:"active"`
	Role           int           `json:"role" yaml:"role"`
	TasksCount     int           `json:"tasksCount" yaml:"tasksCount"`
	Metadata       QuestMetadata `json:"metadata" yaml:"metadata"`
}

// QuestMetadata is the off-chain description of a quest
type QuestMetadata struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// HasStartDate reports whether the quest carries a start date
func (q *Quest) HasStartDate() bool {
	return q != nil && q.StartDate != nil && !q.StartDate.IsZero()
}

// Start returns the quest start time, zero when absent
func (q *Quest) Start() time.Time {
	if !q.HasStartDate() {
		return time.Time{}
	}
	return q.StartDate.Time
}

// QuestApplication is a quest augmented with the addresses needed to apply for it
type QuestApplication struct {
	Quest
	OnboardingQuestAddress common.Address `json:"onboardingQuestAddress" yaml:"onboardingQuestAddress"`
	DaoAddress             common.Address `json:"daoAddress" yaml:"daoAddress"`
}

// NewQuestApplication augments quest with the nova's addresses
func NewQuestApplication(nova *Nova, quest Quest) *QuestApplication {
	return &QuestApplication{
		Quest:                  quest,
		OnboardingQuestAddress: nova.OnboardingQuestAddress,
		DaoAddress:             nova.DaoAddress,
	}
}

// CacheKey names a cache entry kept by the remote cache API
type CacheKey string

const (
	// CacheKeyUserPhases holds the quest an account has currently applied to
	CacheKeyUserPhases CacheKey = "UserPhases"
)

// AppliedQuest is the cached record of the quest an account has applied to.
// At most one exists per account.
type AppliedQuest struct {
	OnboardingQuestAddress common.Address `json:"onboardingQuestAddress" yaml:"onboardingQuestAddress"`
	QuestID                int            `json:"questId" yaml:"questId"`
	DaoAddress             common.Address `json:"daoAddress,omitempty" yaml:"daoAddress,omitempty"`
}

// Matches reports whether the entry refers to quest questID of the given onboarding contract
func (a *AppliedQuest) Matches(onboardingQuestAddress common.Address, questID int) bool {
	return a != nil && a.OnboardingQuestAddress == onboardingQuestAddress && a.QuestID == questID
}

// MemberPhases holds the global rollout gates
type MemberPhases struct {
	PhaseOneStartDate time.Time `json:"phaseOneStartDate" yaml:"phaseOneStartDate"`
}
