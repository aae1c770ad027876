package api

import (
	"context"
	"fmt"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
)

const tagNovas = "novas"

// NovaRepositoryAdapter reads novas from the API
type NovaRepositoryAdapter struct {
	client *Client
}

// NewNovaRepositoryAdapter creates a new NovaRepositoryAdapter
func NewNovaRepositoryAdapter(client *Client) *NovaRepositoryAdapter {
	return &NovaRepositoryAdapter{client: client}
}

// ListNovas returns every nova
func (r *NovaRepositoryAdapter) ListNovas(ctx context.Context) ([]*models.Nova, error) {
	var result struct {
		Novas []*models.Nova `json:"novas"`
	}
	if err := r.client.getCached(ctx, "/nova/list", nil, &result, tagNovas); err != nil {
		return nil, err
	}
	return result.Novas, nil
}

// GetNova returns the nova of daoAddress
func (r *NovaRepositoryAdapter) GetNova(ctx context.Context, daoAddress common.Address) (*models.Nova, error) {
	var nova models.Nova
	if err := r.client.getCached(ctx, fmt.Sprintf("/nova/%s", daoAddress.Hex()), nil, &nova, tagNovas); err != nil {
		if IsNotFound(err) {
			return nil, domain.NotFoundErr{Kind: "nova", Ref: daoAddress.Hex()}
		}
		return nil, err
	}
	return &nova, nil
}

// ListNovaTasks returns the community tasks of a nova
func (r *NovaRepositoryAdapter) ListNovaTasks(ctx context.Context, daoAddress common.Address) ([]*models.NovaTask, error) {
	var result struct {
		Tasks []*models.NovaTask `json:"tasks"`
	}
	if err := r.client.getCached(ctx, fmt.Sprintf("/nova/%s/tasks", daoAddress.Hex()), nil, &result, tagNovas); err != nil {
		if IsNotFound(err) {
			return nil, domain.NotFoundErr{Kind: "nova", Ref: daoAddress.Hex()}
		}
		return nil, err
	}
	return result.Tasks, nil
}

var _ usecase.NovaRepository = (*NovaRepositoryAdapter)(nil)
