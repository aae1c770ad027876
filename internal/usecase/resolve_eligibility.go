package usecase

import (
	"context"
	"fmt"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

// QuestEligibility is the evaluated view of one quest for the configured account
type QuestEligibility struct {
	Account     common.Address
	Applied     *models.AppliedQuest
	IsOwner     bool
	Eligibility domain.Eligibility
}

// EligibilityResolver gathers the inputs of the eligibility evaluation
type EligibilityResolver struct {
	cfg    *config.RuntimeConfig
	phases PhasesCache
	now    Clock
}

// NewEligibilityResolver creates a new EligibilityResolver
func NewEligibilityResolver(cfg *config.RuntimeConfig, phases PhasesCache, now Clock) *EligibilityResolver {
	return &EligibilityResolver{
		cfg:    cfg,
		phases: phases,
		now:    now,
	}
}

// AppliedQuest returns the applied-quest entry of the configured account.
// Without an account there is nothing to look up.
func (r *EligibilityResolver) AppliedQuest(ctx context.Context) (*models.AppliedQuest, error) {
	if !r.cfg.HasAccount() {
		return nil, nil
	}
	applied, err := r.phases.GetAppliedQuest(ctx, r.cfg.Account)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied quest: %w", err)
	}
	return applied, nil
}

// Resolve evaluates quest of nova for the configured account
func (r *EligibilityResolver) Resolve(ctx context.Context, nova *models.Nova, quest *models.Quest) (*QuestEligibility, error) {
	applied, err := r.AppliedQuest(ctx)
	if err != nil {
		return nil, err
	}
	return r.evaluate(nova, quest, applied), nil
}

func (r *EligibilityResolver) evaluate(nova *models.Nova, quest *models.Quest, applied *models.AppliedQuest) *QuestEligibility {
	isOwner := domain.IsOwner(r.cfg.Account, nova)
	return &QuestEligibility{
		Account: r.cfg.Account,
		Applied: applied,
		IsOwner: isOwner,
		Eligibility: domain.EvaluateEligibility(domain.EligibilityInput{
			Now:                     r.now(),
			Nova:                    nova,
			Quest:                   quest,
			MemberPhaseOneStartDate: r.cfg.MemberPhases.PhaseOneStartDate,
			Applied:                 applied,
			IsOwner:                 isOwner,
		}),
	}
}

// findNovaQuest loads a nova and one of its quests
func findNovaQuest(ctx context.Context, repo NovaRepository, daoAddress common.Address, questID int) (*models.Nova, *models.Quest, error) {
	nova, err := repo.GetNova(ctx, daoAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load nova: %w", err)
	}
	quest, ok := nova.FindQuest(questID)
	if !ok {
		return nil, nil, domain.NotFoundErr{Kind: "quest", Ref: fmt.Sprintf("%d of %s", questID, nova.Name)}
	}
	return nova, quest, nil
}

// findAppliedNovaQuest loads the nova and quest of an applied-quest entry.
// Entries written without a dao address are matched by their onboarding quest address.
func findAppliedNovaQuest(ctx context.Context, repo NovaRepository, applied *models.AppliedQuest) (*models.Nova, *models.Quest, error) {
	if applied.DaoAddress != (common.Address{}) {
		return findNovaQuest(ctx, repo, applied.DaoAddress, applied.QuestID)
	}

	novas, err := repo.ListNovas(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list novas: %w", err)
	}
	nova, ok := lo.Find(novas, func(n *models.Nova) bool {
		return n.OnboardingQuestAddress == applied.OnboardingQuestAddress
	})
	if !ok {
		return nil, nil, domain.NotFoundErr{Kind: "nova", Ref: "with onboarding quest " + applied.OnboardingQuestAddress.Hex()}
	}
	quest, ok := nova.FindQuest(applied.QuestID)
	if !ok {
		return nil, nil, domain.NotFoundErr{Kind: "quest", Ref: fmt.Sprintf("%d of %s", applied.QuestID, nova.Name)}
	}
	return nova, quest, nil
}
