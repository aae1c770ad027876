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

// ShowNovaParams contains parameters for showing a nova
type ShowNovaParams struct {
	DaoAddress   common.Address
	IncludeTasks bool
	ActiveOnly   bool
}

// QuestView is a quest as shown on a nova page
type QuestView struct {
	Quest       *models.Quest
	RoleName    string
	URL         string
	EndDate     *models.Date
	Eligibility domain.Eligibility
	Affordance  domain.Affordance
}

// ShowNovaResult contains the result of showing a nova
type ShowNovaResult struct {
	Nova      *models.Nova
	ImageURL  string
	Account   common.Address
	IsOwner   bool
	Applied   *models.AppliedQuest
	Quests    []QuestView
	Tasks     []*models.NovaTask
	Connected bool
}

// ShowNova shows a nova with its quests evaluated for the configured account
type ShowNova struct {
	cfg      *config.RuntimeConfig
	repo     NovaRepository
	resolver *EligibilityResolver
	apply    *ApplyForQuest
	withdraw *WithdrawFromQuest
	progress ProgressSink
}

// NewShowNova creates a new ShowNova use case
func NewShowNova(
	cfg *config.RuntimeConfig,
	repo NovaRepository,
	resolver *EligibilityResolver,
	apply *ApplyForQuest,
	withdraw *WithdrawFromQuest,
	progress ProgressSink,
) *ShowNova {
	if progress == nil {
		progress = NopProgress{}
	}
	return &ShowNova{
		cfg:      cfg,
		repo:     repo,
		resolver: resolver,
		apply:    apply,
		withdraw: withdraw,
		progress: progress,
	}
}

// Run executes the show nova use case
func (uc *ShowNova) Run(ctx context.Context, params ShowNovaParams) (*ShowNovaResult, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "loading", Message: "Loading nova...", Spinner: true})

	nova, err := uc.repo.GetNova(ctx, params.DaoAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to load nova: %w", err)
	}

	applied, err := uc.resolver.AppliedQuest(ctx)
	if err != nil {
		return nil, err
	}

	result := &ShowNovaResult{
		Nova:      nova,
		ImageURL:  domain.IPFSToHTTP(uc.cfg.IPFSGateway, nova.Image, false),
		Account:   uc.cfg.Account,
		IsOwner:   domain.IsOwner(uc.cfg.Account, nova),
		Applied:   applied,
		Connected: uc.cfg.HasAccount(),
	}

	quests := nova.Properties.Quests
	if params.ActiveOnly {
		quests = nova.ActiveQuests()
	}

	applying := uc.apply.State()
	withdrawing := uc.withdraw.Withdrawing()
	for i := range quests {
		quest := &quests[i]
		eval := uc.resolver.evaluate(nova, quest, applied)
		view := QuestView{
			Quest:       quest,
			RoleName:    nova.RoleName(quest.Role),
			URL:         domain.QuestURL(uc.cfg.ShowcaseURL, nova, quest.QuestID),
			Eligibility: eval.Eligibility,
			Affordance:  domain.SelectAffordance(eval.Eligibility, applying, withdrawing, nova, quest),
		}
		if quest.HasStartDate() {
			view.EndDate = models.NewDate(domain.QuestEndDate(quest))
		}
		result.Quests = append(result.Quests, view)
	}

	if params.IncludeTasks {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "tasks", Message: "Loading community tasks...", Spinner: true})
		tasks, err := uc.repo.ListNovaTasks(ctx, nova.DaoAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to load community tasks: %w", err)
		}
		result.Tasks = lo.Filter(tasks, func(t *models.NovaTask, _ int) bool { return t != nil })
	}

	return result, nil
}
