package domain

import (
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
)

// AffordanceKind is the action offered for a quest
type AffordanceKind string

const (
	AffordanceWithdraw AffordanceKind = "withdraw"
	AffordanceApply    AffordanceKind = "apply"
	AffordanceBlocked  AffordanceKind = "blocked"
)

// Tooltips explaining a blocked apply
const (
	TooltipQuestEnded       = "Quest has ended"
	TooltipQuestNotStarted  = "Quest hasn't started yet"
	TooltipPhaseNotStarted  = "Member phase hasn't started yet."
	TooltipAppliedElsewhere = "Already applied to another quest"
)

// ApplyingState is the in-flight apply, if any
type ApplyingState struct {
	Active bool
	Quest  *models.QuestApplication
}

// Affordance is what the quest card offers the user
type Affordance struct {
	Kind     AffordanceKind `json:"kind" yaml:"kind"`
	Label    string         `json:"label" yaml:"label"`
	Enabled  bool           `json:"enabled" yaml:"enabled"`
	Loading  bool           `json:"loading" yaml:"loading"`
	Disabled bool           `json:"disabled" yaml:"disabled"`
	Tooltip  string         `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// SelectAffordance picks one of the three mutually exclusive affordances.
// Withdraw beats Apply beats Blocked.
func SelectAffordance(e Eligibility, applying ApplyingState, withdrawing bool, nova *models.Nova, quest *models.Quest) Affordance {
	switch {
	case e.HasAppliedForQuest:
		return Affordance{
			Kind:     AffordanceWithdraw,
			Label:    "Withdraw",
			Enabled:  !withdrawing,
			Loading:  withdrawing,
			Disabled: withdrawing,
		}
	case e.CanApplyForAQuest:
		return Affordance{
			Kind:     AffordanceApply,
			Label:    "Apply",
			Enabled:  !applying.Active,
			Loading:  applying.Active && IsApplyingFor(applying, nova, quest),
			Disabled: applying.Active,
		}
	default:
		return Affordance{
			Kind:     AffordanceBlocked,
			Label:    "Apply",
			Disabled: true,
			Tooltip:  BlockedReason(e),
		}
	}
}

// IsApplyingFor reports whether the in-flight apply targets this quest of this nova
func IsApplyingFor(applying ApplyingState, nova *models.Nova, quest *models.Quest) bool {
	if applying.Quest == nil || nova == nil || quest == nil {
		return false
	}
	return applying.Quest.QuestID == quest.QuestID && applying.Quest.DaoAddress == nova.DaoAddress
}

// BlockedReason picks the tooltip of a blocked apply.
// A quest that has not started is reported before a member phase that has not started.
func BlockedReason(e Eligibility) string {
	switch {
	case e.HasQuestEnded:
		return TooltipQuestEnded
	case !e.HasQuestStarted:
		return TooltipQuestNotStarted
	case !e.HasMemberPhaseOneStarted:
		return TooltipPhaseNotStarted
	default:
		return TooltipAppliedElsewhere
	}
}
