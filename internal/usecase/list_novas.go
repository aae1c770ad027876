package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
)

// ListNovasParams contains parameters for listing novas
type ListNovasParams struct {
	Market    int
	Archetype int
	Search    string
}

// NovaSummary is one row of the nova listing
type NovaSummary struct {
	Nova         *models.Nova
	ActiveQuests int
}

// ListNovasResult contains the result of listing novas
type ListNovasResult struct {
	Novas []NovaSummary
	Total int
}

// ListNovas lists novas ordered by prestige
type ListNovas struct {
	repo     NovaRepository
	progress ProgressSink
}

// NewListNovas creates a new ListNovas use case
func NewListNovas(repo NovaRepository, progress ProgressSink) *ListNovas {
	if progress == nil {
		progress = NopProgress{}
	}
	return &ListNovas{
		repo:     repo,
		progress: progress,
	}
}

// Run executes the list novas use case
func (uc *ListNovas) Run(ctx context.Context, params ListNovasParams) (*ListNovasResult, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "loading", Message: "Loading novas...", Spinner: true})

	novas, err := uc.repo.ListNovas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list novas: %w", err)
	}

	search := strings.ToLower(params.Search)
	var filtered []*models.Nova
	for _, nova := range novas {
		if params.Market != 0 && nova.Properties.Market != params.Market {
			continue
		}
		if params.Archetype != 0 && nova.Properties.Archetype != params.Archetype {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(nova.Name), search) {
			continue
		}
		filtered = append(filtered, nova)
	}

	// Highest prestige first, ties by name
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Properties.Prestige != filtered[j].Properties.Prestige {
			return filtered[i].Properties.Prestige > filtered[j].Properties.Prestige
		}
		return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
	})

	result := &ListNovasResult{Total: len(filtered)}
	for _, nova := range filtered {
		result.Novas = append(result.Novas, NovaSummary{
			Nova:         nova,
			ActiveQuests: len(nova.ActiveQuests()),
		})
	}

	return result, nil
}
