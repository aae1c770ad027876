package usecase

import (
	"context"
	"fmt"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// StatusResult describes the configured account and its applied quest
type StatusResult struct {
	Account common.Address
	Applied *models.AppliedQuest
	Nova    *models.Nova
	Quest   *models.Quest
	// Eligibility of the applied quest, set when its nova could be loaded
	Eligibility *domain.Eligibility
	Auth        *AuthSession
	LookupErr   error
}

// Status reports the applied quest of the configured account
type Status struct {
	cfg      *config.RuntimeConfig
	repo     NovaRepository
	resolver *EligibilityResolver
	auth     AuthInspector
}

// NewStatus creates a new Status use case
func NewStatus(cfg *config.RuntimeConfig, repo NovaRepository, resolver *EligibilityResolver, auth AuthInspector) *Status {
	return &Status{
		cfg:      cfg,
		repo:     repo,
		resolver: resolver,
		auth:     auth,
	}
}

// Run executes the status use case
func (uc *Status) Run(ctx context.Context) (*StatusResult, error) {
	if !uc.cfg.HasAccount() {
		return nil, domain.ErrAccountRequired
	}

	result := &StatusResult{Account: uc.cfg.Account}

	session, err := uc.auth.Inspect(uc.cfg.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth token: %w", err)
	}
	result.Auth = session

	applied, err := uc.resolver.AppliedQuest(ctx)
	if err != nil {
		return nil, err
	}
	result.Applied = applied
	if applied == nil {
		return result, nil
	}

	// The quest details are informative; the applied entry alone is a valid status
	nova, quest, err := findAppliedNovaQuest(ctx, uc.repo, applied)
	if err != nil {
		result.LookupErr = err
		return result, nil
	}
	if applied.DaoAddress == (common.Address{}) {
		resolved := *applied
		resolved.DaoAddress = nova.DaoAddress
		result.Applied = &resolved
	}
	result.Nova = nova
	result.Quest = quest
	eval := uc.resolver.evaluate(nova, quest, applied)
	result.Eligibility = &eval.Eligibility

	return result, nil
}
