package domain

import (
	"testing"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

var (
	testAdmin      = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testAccount    = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testOnboarding = common.HexToAddress("0x3333333333333333333333333333333333333333")
	testDao        = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

func testNova() *models.Nova {
	return &models.Nova{
		Name:                   "Test Nova",
		Admin:                  testAdmin,
		DaoAddress:             testDao,
		OnboardingQuestAddress: testOnboarding,
	}
}

func mustDate(t *testing.T, value string) *models.Date {
	t.Helper()
	parsed, err := models.ParseDate(value)
	if err != nil {
		t.Fatalf("parse %s: %v", value, err)
	}
	return models.NewDate(parsed)
}

func TestEvaluateEligibility_NoStartDate(t *testing.T) {
	nova := testNova()
	quest := &models.Quest{QuestID: 1, DurationInDays: 5}

	for _, now := range []time.Time{
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
	} {
		e := EvaluateEligibility(EligibilityInput{
			Now:   now,
			Nova:  nova,
			Quest: quest,
		})
		assert.False(t, e.HasQuestStarted, "now=%s", now)
		assert.False(t, e.HasQuestEnded, "now=%s", now)
	}
}

func TestEvaluateEligibility_QuestWindow(t *testing.T) {
	nova := testNova()
	quest := &models.Quest{
		QuestID:        1,
		StartDate:      mustDate(t, "2024-03-01T12:00:00Z"),
		DurationInDays: 2.5,
	}
	phase := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		now         time.Time
		wantStarted bool
		wantEnded   bool
	}{
		{
			name: "before start",
			now:  time.Date(2024, 3, 1, 11, 59, 59, 0, time.UTC),
		},
		{
			name: "exactly at start is not started",
			now:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:        "inside window",
			now:         time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			wantStarted: true,
		},
		{
			name:        "fractional day counted",
			now:         time.Date(2024, 3, 3, 23, 59, 59, 0, time.UTC),
			wantStarted: true,
		},
		{
			name:        "exactly at end is not ended",
			now:         time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			wantStarted: true,
		},
		{
			name:        "after end",
			now:         time.Date(2024, 3, 4, 0, 0, 0, int(time.Millisecond), time.UTC),
			wantStarted: true,
			wantEnded:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EvaluateEligibility(EligibilityInput{
				Now:                     tt.now,
				Nova:                    nova,
				Quest:                   quest,
				MemberPhaseOneStartDate: phase,
			})
			assert.Equal(t, tt.wantStarted, e.HasQuestStarted)
			assert.Equal(t, tt.wantEnded, e.HasQuestEnded)
			assert.True(t, e.HasMemberPhaseOneStarted)
			assert.Equal(t, !tt.wantEnded, e.CanApplyForAQuest)
		})
	}
}

func TestEvaluateEligibility_CanApply(t *testing.T) {
	nova := testNova()
	quest := &models.Quest{
		QuestID:        7,
		StartDate:      mustDate(t, "2024-03-01"),
		DurationInDays: 5,
	}
	now := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	phaseStarted := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	phaseFuture := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		phase   time.Time
		applied *models.AppliedQuest
		owner   bool
		want    bool
	}{
		{name: "all gates open", phase: phaseStarted, want: true},
		{name: "owner can not apply", phase: phaseStarted, owner: true, want: false},
		{name: "member phase not started", phase: phaseFuture, want: false},
		{
			name:  "cache entry for this quest",
			phase: phaseStarted,
			applied: &models.AppliedQuest{
				OnboardingQuestAddress: testOnboarding,
				QuestID:                7,
			},
			want: false,
		},
		{
			name:  "cache entry for another quest",
			phase: phaseStarted,
			applied: &models.AppliedQuest{
				OnboardingQuestAddress: testOnboarding,
				QuestID:                8,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EvaluateEligibility(EligibilityInput{
				Now:                     now,
				Nova:                    nova,
				Quest:                   quest,
				MemberPhaseOneStartDate: tt.phase,
				Applied:                 tt.applied,
				IsOwner:                 tt.owner,
			})
			assert.Equal(t, tt.want, e.CanApplyForAQuest)
		})
	}
}

func TestEvaluateEligibility_NotStartedQuestIsAppliable(t *testing.T) {
	quest := &models.Quest{
		QuestID:        1,
		StartDate:      mustDate(t, "2030-01-01"),
		DurationInDays: 5,
	}

	e := EvaluateEligibility(EligibilityInput{
		Now:                     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Nova:                    testNova(),
		Quest:                   quest,
		MemberPhaseOneStartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.False(t, e.HasQuestStarted)
	assert.False(t, e.HasQuestEnded)
	assert.True(t, e.CanApplyForAQuest)
}

func TestEvaluateEligibility_HasApplied(t *testing.T) {
	nova := testNova()
	quest := &models.Quest{QuestID: 3}

	tests := []struct {
		name    string
		applied *models.AppliedQuest
		want    bool
	}{
		{name: "no entry", applied: nil, want: false},
		{
			name:    "matching entry",
			applied: &models.AppliedQuest{OnboardingQuestAddress: testOnboarding, QuestID: 3},
			want:    true,
		},
		{
			name:    "different quest id",
			applied: &models.AppliedQuest{OnboardingQuestAddress: testOnboarding, QuestID: 4},
			want:    false,
		},
		{
			name:    "different onboarding contract",
			applied: &models.AppliedQuest{OnboardingQuestAddress: testDao, QuestID: 3},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EvaluateEligibility(EligibilityInput{
				Now:     time.Now(),
				Nova:    nova,
				Quest:   quest,
				Applied: tt.applied,
			})
			assert.Equal(t, tt.want, e.HasAppliedForQuest)
		})
	}
}

func TestIsOwner(t *testing.T) {
	nova := testNova()

	assert.True(t, IsOwner(testAdmin, nova))
	assert.False(t, IsOwner(testAccount, nova))
	assert.False(t, IsOwner(common.Address{}, nova))
	assert.False(t, IsOwner(testAdmin, nil))

	// Mixed-case spellings parse to the same address
	mixed := common.HexToAddress("0xAbCdEf0000000000000000000000000000000001")
	lower := common.HexToAddress("0xabcdef0000000000000000000000000000000001")
	nova.Admin = mixed
	assert.True(t, IsOwner(lower, nova))
}

func TestFractionToDuration(t *testing.T) {
	assert.Equal(t, 24*time.Hour, FractionToDuration(1))
	assert.Equal(t, 12*time.Hour, FractionToDuration(0.5))
	assert.Equal(t, 36*time.Hour, FractionToDuration(1.5))
	assert.Equal(t, time.Duration(0), FractionToDuration(0))
}
